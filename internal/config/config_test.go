package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("COLORPICKER_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.Theme != "dark" {
		t.Fatalf("theme = %q, want dark", cfg.UI.Theme)
	}
	if cfg.UI.StartColor != "#4f46e5" {
		t.Fatalf("start color = %q", cfg.UI.StartColor)
	}
	if cfg.UI.ThrottleMS != 100 {
		t.Fatalf("throttle = %d, want 100", cfg.UI.ThrottleMS)
	}
	if cfg.Database.Path == "" {
		t.Fatal("database path not defaulted")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[ui]
theme = "light"
start_color = "#112233"
throttle_ms = 50

[database]
path = "/tmp/cp-test.db"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("COLORPICKER_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.Theme != "light" {
		t.Fatalf("theme = %q, want light", cfg.UI.Theme)
	}
	if cfg.UI.StartColor != "#112233" {
		t.Fatalf("start color = %q", cfg.UI.StartColor)
	}
	if cfg.UI.ThrottleMS != 50 {
		t.Fatalf("throttle = %d, want 50", cfg.UI.ThrottleMS)
	}
	if cfg.Database.Path != "/tmp/cp-test.db" {
		t.Fatalf("db path = %q", cfg.Database.Path)
	}
}

func TestSaveRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("COLORPICKER_CONFIG", path)

	want := Config{
		Database: DatabaseConfig{Path: "/tmp/cp-save.db"},
		UI: UIConfig{
			Theme:      "light",
			StartColor: "#aabbcc",
			ThrottleMS: 75,
			FieldWidth: 60,
		},
	}
	if err := Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Fatalf("round trip = %+v, want %+v", got, want)
	}
}

func TestNormalizeClampsBadValues(t *testing.T) {
	c := normalize(Config{UI: UIConfig{Theme: "BLUE", ThrottleMS: 5, FieldWidth: 500}})
	if c.UI.Theme != "dark" {
		t.Fatalf("theme = %q, want dark fallback", c.UI.Theme)
	}
	if c.UI.ThrottleMS != 100 {
		t.Fatalf("throttle = %d, want default 100", c.UI.ThrottleMS)
	}
	if c.UI.FieldWidth != 48 {
		t.Fatalf("field width = %d, want default 48", c.UI.FieldWidth)
	}
}
