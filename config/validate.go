// Copyright (c) 2024 The Charms developers
// Use of this source code is governed by the Open BSV License v5
// that can be found in the LICENSE file.

package config

import (
	"encoding/hex"
	"fmt"
)

// ValidateConfig checks that all configuration values are within acceptable
// ranges and returns the first error encountered, or nil if valid.
func ValidateConfig(cfg Config) error {
	if cfg.DataDir == "" {
		return ErrEmptyDataDir
	}

	if cfg.Network != "mainnet" && cfg.Network != "testnet" && cfg.Network != "regtest" {
		return ErrInvalidNetwork
	}

	raw, err := hex.DecodeString(cfg.SpellVKHash)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidVKHash, err)
	}
	if len(raw) != 32 {
		return fmt.Errorf("%w: got %d bytes", ErrInvalidVKHash, len(raw))
	}

	if cfg.DustValue == 0 {
		return ErrZeroDustValue
	}

	return nil
}
