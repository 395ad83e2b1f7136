// Copyright (c) 2024 The Charms developers
// Use of this source code is governed by the Open BSV License v5
// that can be found in the LICENSE file.

// Package config holds the engine surface configuration: where the record
// database lives, which network the synthetic transactions claim, the spell
// verification key injected into the prover, and the dust value used by the
// builders.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmsorg/libcharms-go/charm"
)

// Config holds all engine configuration values.
type Config struct {
	DataDir     string // record database directory
	Network     string // "mainnet", "testnet" or "regtest"
	SpellVKHash string // 64 hex chars, spell checker verification key hash
	DustValue   uint64 // satoshi value for synthetic charm outputs
}

// DefaultConfig returns the configuration used when no file is present. The
// default verification key hash is the all-zero placeholder; deployments
// override it with the hash of their spell checker binary.
func DefaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		DataDir:     filepath.Join(home, ".charms"),
		Network:     "mainnet",
		SpellVKHash: strings.Repeat("0", 64),
		DustValue:   546,
	}
}

// VKHash decodes the configured verification key hash.
func (c Config) VKHash() ([32]byte, error) {
	h, err := charm.ParseHash(c.SpellVKHash)
	if err != nil {
		return h, fmt.Errorf("%w: %w", ErrInvalidVKHash, err)
	}
	return h, nil
}

// LoadConfig reads a configuration file of key=value lines. Missing keys
// keep their defaults; blank lines and lines starting with '#' are ignored.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, ErrConfigNotFound
		}
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			return cfg, fmt.Errorf("%w: line %d: %q", ErrInvalidConfigLine, lineNo, line)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "datadir":
			cfg.DataDir = value
		case "network":
			cfg.Network = value
		case "spellvkhash":
			cfg.SpellVKHash = value
		case "dustvalue":
			dust, err := strconv.ParseUint(value, 10, 64)
			if err != nil {
				return cfg, fmt.Errorf("%w: line %d: dustvalue: %w", ErrInvalidConfigLine, lineNo, err)
			}
			cfg.DustValue = dust
		default:
			// Unknown keys are ignored so newer config files still load.
		}
	}
	if err := scanner.Err(); err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	return cfg, nil
}

// SaveConfig writes the configuration as key=value lines.
func SaveConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "datadir=%s\n", cfg.DataDir)
	fmt.Fprintf(&b, "network=%s\n", cfg.Network)
	fmt.Fprintf(&b, "spellvkhash=%s\n", cfg.SpellVKHash)
	fmt.Fprintf(&b, "dustvalue=%d\n", cfg.DustValue)

	if err := os.WriteFile(path, []byte(b.String()), 0600); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
