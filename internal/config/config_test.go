package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("PLANIT_DB_PATH", "")
	t.Setenv("PLANIT_NO_COLOR", "")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.Storage.DBPath == "" {
		t.Error("expected a default db path")
	}
	if !strings.HasSuffix(cfg.Storage.DBPath, "planit.db") {
		t.Errorf("db path = %q", cfg.Storage.DBPath)
	}
	if !cfg.UI.Color {
		t.Error("color should default to true")
	}
}

func TestLoadFrom_File(t *testing.T) {
	t.Setenv("PLANIT_DB_PATH", "")
	t.Setenv("PLANIT_NO_COLOR", "")

	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[storage]\ndb_path = \"/tmp/custom.db\"\n\n[ui]\ncolor = false\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.Storage.DBPath != "/tmp/custom.db" {
		t.Errorf("db path = %q, want /tmp/custom.db", cfg.Storage.DBPath)
	}
	if cfg.UI.Color {
		t.Error("color should be false from file")
	}
}

func TestLoadFrom_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[storage]\ndb_path = \"/tmp/file.db\"\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	t.Setenv("PLANIT_DB_PATH", "/tmp/env.db")
	t.Setenv("PLANIT_NO_COLOR", "1")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.Storage.DBPath != "/tmp/env.db" {
		t.Errorf("db path = %q, want env override", cfg.Storage.DBPath)
	}
	if cfg.UI.Color {
		t.Error("PLANIT_NO_COLOR=1 should disable color")
	}
}

func TestNoColorFalseValues(t *testing.T) {
	for _, v := range []string{"0", "false", "FALSE"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("PLANIT_DB_PATH", "")
			t.Setenv("PLANIT_NO_COLOR", v)

			cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
			if err != nil {
				t.Fatalf("LoadFrom failed: %v", err)
			}
			if !cfg.UI.Color {
				t.Errorf("PLANIT_NO_COLOR=%q should keep color enabled", v)
			}
		})
	}
}

func TestLoadFrom_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not toml ["), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestExpandPath(t *testing.T) {
	t.Setenv("PLANIT_NO_COLOR", "")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[storage]\ndb_path = \"~/data/planit.db\"\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	t.Setenv("PLANIT_DB_PATH", "")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}
	want := filepath.Join(home, "data", "planit.db")
	if cfg.Storage.DBPath != want {
		t.Errorf("db path = %q, want %q", cfg.Storage.DBPath, want)
	}
}

func TestSaveAndReload(t *testing.T) {
	t.Setenv("PLANIT_DB_PATH", "")
	t.Setenv("PLANIT_NO_COLOR", "")

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.Storage.DBPath = "/tmp/saved.db"
	cfg.UI.Color = false

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.Storage.DBPath != "/tmp/saved.db" || loaded.UI.Color {
		t.Errorf("round-trip mismatch: %+v", loaded)
	}
}
