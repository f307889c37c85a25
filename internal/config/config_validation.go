// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a joined error listing every
// violated rule otherwise.
func (cfg *StructuredConfig) validate() error {
	var err error

	if cfg.Auth.TokenSignKey == "" {
		err = errors.Join(err, errNoTokenSignKey)
	}
	if cfg.Auth.TokenDuration <= 0 {
		err = errors.Join(err, errNoTokenDuration)
	}
	if cfg.Storage.DB.DSN == "" {
		err = errors.Join(err, errNoDatabaseDSN)
	}
	if cfg.Server.HTTPAddress == "" {
		err = errors.Join(err, errNoServerAddress)
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = DefaultBcryptCost
	}

	return err
}
