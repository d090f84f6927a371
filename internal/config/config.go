// Package config loads the bounded-buffer limits the lexer, parser, and
// evaluator enforce (spec.md §6/§7) from an optional TOML file, falling
// back to compiled-in defaults when no file is present.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config groups the bounded-buffer limits a running interpreter honors.
type Config struct {
	Limits struct {
		MaxIdentLen     int `toml:"max_ident_len"`
		MaxStatementLen int `toml:"max_statement_len"`
		MaxDeclFields   int `toml:"max_decl_fields"`
		MaxAllocBytes   int `toml:"max_alloc_bytes"`
	} `toml:"limits"`
}

// DefaultConfig returns the compiled-in limits named by spec.md: a
// 64-byte identifier buffer, a 1024-byte statement buffer, 16 fields per
// declaration, and a generous but finite array-allocation ceiling.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Limits.MaxIdentLen = 64
	cfg.Limits.MaxStatementLen = 1024
	cfg.Limits.MaxDeclFields = 16
	cfg.Limits.MaxAllocBytes = 1 << 20

	return cfg
}

// Load reads overrides from path on top of DefaultConfig. A missing file
// is not an error — the defaults stand as-is, matching
// lookbusy1344-arm_emulator's LoadFrom behavior.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file %q", path)
	}

	return cfg, nil
}
