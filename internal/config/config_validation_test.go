package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "missing sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "zero token duration", mutate: func(c *StructuredConfig) { c.App.TokenDuration = 0 }, wantErr: ErrInvalidAppConfigs},
		{name: "negative leeway", mutate: func(c *StructuredConfig) { c.App.TokenLeeway = -time.Second }, wantErr: ErrInvalidAppConfigs},
		{name: "hmac algorithms", mutate: func(c *StructuredConfig) { c.App.TokenAlgorithms = []string{"HS512", "HS256"} }},
		{name: "asymmetric algorithm", mutate: func(c *StructuredConfig) { c.App.TokenAlgorithms = []string{"RS256"} }, wantErr: ErrInvalidAppConfigs},
		{name: "negative tax rate", mutate: func(c *StructuredConfig) { c.Dashboard.TaxRate = -0.1 }, wantErr: ErrInvalidDashboardConfigs},
		{name: "negative delivery charge", mutate: func(c *StructuredConfig) { c.Dashboard.DeliveryCharge = -1 }, wantErr: ErrInvalidDashboardConfigs},
		{name: "zero dashboard values are valid", mutate: func(c *StructuredConfig) { c.Dashboard = Dashboard{} }},
		{name: "missing http address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "zero request timeout", mutate: func(c *StructuredConfig) { c.Server.RequestTimeout = 0 }, wantErr: ErrInvalidServerConfigs},
		{name: "zero multipart memory", mutate: func(c *StructuredConfig) { c.Server.MultipartMaxMemory = 0 }, wantErr: ErrInvalidServerConfigs},
		{name: "missing cookie name", mutate: func(c *StructuredConfig) { c.Session.CookieName = "" }, wantErr: ErrInvalidSessionConfigs},
		{name: "zero session ttl", mutate: func(c *StructuredConfig) { c.Session.TTL = 0 }, wantErr: ErrInvalidSessionConfigs},
		{name: "missing dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "missing redis address", mutate: func(c *StructuredConfig) { c.Storage.Redis.Address = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "cleanup without retention", mutate: func(c *StructuredConfig) {
			c.Workers = Workers{CartCleanupInterval: time.Minute}
		}, wantErr: ErrInvalidWorkerConfigs},
		{name: "cleanup with retention", mutate: func(c *StructuredConfig) {
			c.Workers = Workers{CartCleanupInterval: time.Minute, CartRetention: time.Hour}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
