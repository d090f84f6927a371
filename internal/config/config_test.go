package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nilsen/cinterp/internal/config"
)

func TestDefaultConfigMatchesSpecBounds(t *testing.T) {
	cfg := config.DefaultConfig()

	if cfg.Limits.MaxIdentLen != 64 {
		t.Errorf("MaxIdentLen = %d, want 64", cfg.Limits.MaxIdentLen)
	}
	if cfg.Limits.MaxStatementLen != 1024 {
		t.Errorf("MaxStatementLen = %d, want 1024", cfg.Limits.MaxStatementLen)
	}
	if cfg.Limits.MaxDeclFields != 16 {
		t.Errorf("MaxDeclFields = %d, want 16", cfg.Limits.MaxDeclFields)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error for missing file: %v", err)
	}
	if cfg.Limits.MaxIdentLen != 64 {
		t.Errorf("MaxIdentLen = %d, want default 64", cfg.Limits.MaxIdentLen)
	}
}

func TestLoadOverridesLimits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "[limits]\nmax_ident_len = 32\nmax_decl_fields = 8\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Limits.MaxIdentLen != 32 {
		t.Errorf("MaxIdentLen = %d, want 32", cfg.Limits.MaxIdentLen)
	}
	if cfg.Limits.MaxDeclFields != 8 {
		t.Errorf("MaxDeclFields = %d, want 8", cfg.Limits.MaxDeclFields)
	}
	if cfg.Limits.MaxStatementLen != 1024 {
		t.Errorf("MaxStatementLen = %d, want untouched default 1024", cfg.Limits.MaxStatementLen)
	}
}
