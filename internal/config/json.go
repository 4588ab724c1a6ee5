package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenAudience    string   `json:"token_audience"`
		TokenDuration    Duration `json:"token_duration"`
		TokenLeeway      Duration `json:"token_leeway"`
		TokenAlgorithms  []string `json:"token_algorithms"`
		PasswordHashCost int      `json:"password_hash_cost"`
		LogLevel         string   `json:"log_level"`
		Version          string   `json:"version"`
	} `json:"app,omitempty"`

	Dashboard struct {
		TaxRate        float64 `json:"tax_rate"`
		DeliveryCharge float64 `json:"delivery_charge"`
	} `json:"dashboard,omitempty"`

	Server struct {
		HTTPAddress        string   `json:"http_address"`
		GRPCAddress        string   `json:"grpc_address"`
		RequestTimeout     Duration `json:"request_timeout"`
		MultipartMaxMemory int64    `json:"multipart_max_memory"`
	} `json:"server,omitempty"`

	Session struct {
		CookieName   string   `json:"cookie_name"`
		TTL          Duration `json:"ttl"`
		SecureCookie bool     `json:"secure_cookie"`
	} `json:"session,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			Address   string `json:"address"`
			Password  string `json:"password"`
			DB        int    `json:"db"`
			KeyPrefix string `json:"key_prefix"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		CartCleanupInterval Duration `json:"cart_cleanup_interval"`
		CartRetention       Duration `json:"cart_retention"`
	} `json:"workers,omitempty"`

	AcmeChallengeResult string `json:"acme_challenge_result"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:     jsonCfg.App.TokenSignKey,
			TokenIssuer:      jsonCfg.App.TokenIssuer,
			TokenAudience:    jsonCfg.App.TokenAudience,
			TokenDuration:    time.Duration(jsonCfg.App.TokenDuration),
			TokenLeeway:      time.Duration(jsonCfg.App.TokenLeeway),
			TokenAlgorithms:  jsonCfg.App.TokenAlgorithms,
			PasswordHashCost: jsonCfg.App.PasswordHashCost,
			LogLevel:         jsonCfg.App.LogLevel,
			Version:          jsonCfg.App.Version,
		},
		Dashboard: Dashboard{
			TaxRate:        jsonCfg.Dashboard.TaxRate,
			DeliveryCharge: jsonCfg.Dashboard.DeliveryCharge,
		},
		Server: Server{
			HTTPAddress:        jsonCfg.Server.HTTPAddress,
			GRPCAddress:        jsonCfg.Server.GRPCAddress,
			RequestTimeout:     time.Duration(jsonCfg.Server.RequestTimeout),
			MultipartMaxMemory: jsonCfg.Server.MultipartMaxMemory,
		},
		Session: Session{
			CookieName:   jsonCfg.Session.CookieName,
			TTL:          time.Duration(jsonCfg.Session.TTL),
			SecureCookie: jsonCfg.Session.SecureCookie,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Redis: Redis{
				Address:   jsonCfg.Storage.Redis.Address,
				Password:  jsonCfg.Storage.Redis.Password,
				DB:        jsonCfg.Storage.Redis.DB,
				KeyPrefix: jsonCfg.Storage.Redis.KeyPrefix,
			},
		},
		Workers: Workers{
			CartCleanupInterval: time.Duration(jsonCfg.Workers.CartCleanupInterval),
			CartRetention:       time.Duration(jsonCfg.Workers.CartRetention),
		},
		AcmeChallengeResult: jsonCfg.AcmeChallengeResult,
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
