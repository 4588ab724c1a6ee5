// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "slices"

// allowedTokenAlgorithms are the HMAC methods a shared sign key can serve.
var allowedTokenAlgorithms = []string{"HS256", "HS384", "HS512"}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// sentinel errors otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 || cfg.App.TokenLeeway < 0 {
		return ErrInvalidAppConfigs
	}
	for _, alg := range cfg.App.TokenAlgorithms {
		if !slices.Contains(allowedTokenAlgorithms, alg) {
			return ErrInvalidAppConfigs
		}
	}

	if cfg.Dashboard.TaxRate < 0 || cfg.Dashboard.DeliveryCharge < 0 {
		return ErrInvalidDashboardConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.MultipartMaxMemory <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Session.CookieName == "" || cfg.Session.TTL <= 0 {
		return ErrInvalidSessionConfigs
	}

	if cfg.Storage.DB.DSN == "" || cfg.Storage.Redis.Address == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.CartCleanupInterval < 0 ||
		(cfg.Workers.CartCleanupInterval > 0 && cfg.Workers.CartRetention <= 0) {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
