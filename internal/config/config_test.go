package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchDefaultConfig(t *testing.T) {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		t.Fatalf("Parse(defaults.yaml) error: %v", err)
	}
	want := DefaultConfig()

	if cfg.Screen != want.Screen {
		t.Errorf("screen = %+v, want %+v", cfg.Screen, want.Screen)
	}
	if cfg.Enemy != want.Enemy {
		t.Errorf("enemy = %+v, want %+v", cfg.Enemy, want.Enemy)
	}
	if cfg.Cloud != want.Cloud {
		t.Errorf("cloud = %+v, want %+v", cfg.Cloud, want.Cloud)
	}
	if cfg.Boss != want.Boss {
		t.Errorf("boss = %+v, want %+v", cfg.Boss, want.Boss)
	}
	if cfg.Text != want.Text {
		t.Errorf("text = %+v, want %+v", cfg.Text, want.Text)
	}
	if cfg.Assets.Player.File != "jet.png" || cfg.Assets.Player.ColorKey == nil || *cfg.Assets.Player.ColorKey != white {
		t.Errorf("player image = %+v, want jet.png keyed white", cfg.Assets.Player)
	}
	if cfg.Assets.Cloud.ColorKey == nil || *cfg.Assets.Cloud.ColorKey != black {
		t.Errorf("cloud image = %+v, want keyed black", cfg.Assets.Cloud)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestTickDuration(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.TickDuration(); got != time.Second/30 {
		t.Errorf("TickDuration = %v, want %v", got, time.Second/30)
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	doc := "boss:\n  health: 3\n  delay: 2s\nenemy:\n  spawn_interval: 100ms\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Boss.Health != 3 || cfg.Boss.Delay != 2*time.Second {
		t.Errorf("boss = %+v, want health 3 delay 2s", cfg.Boss)
	}
	if cfg.Enemy.SpawnInterval != 100*time.Millisecond {
		t.Errorf("enemy spawn interval = %v, want 100ms", cfg.Enemy.SpawnInterval)
	}
	// untouched keys keep their defaults
	if cfg.Screen.Width != 800 || cfg.Bullet.Speed != 10 {
		t.Errorf("defaults lost: screen %d, bullet speed %v", cfg.Screen.Width, cfg.Bullet.Speed)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("boss:\n  health: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "boss health") {
		t.Fatalf("expected boss health validation error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Screen.Width = 0 }},
		{"zero tps", func(c *Config) { c.Screen.TPS = 0 }},
		{"inverted enemy speeds", func(c *Config) { c.Enemy.MinSpeed, c.Enemy.MaxSpeed = 9, 3 }},
		{"inverted boss speeds", func(c *Config) { c.Boss.MinSpeed, c.Boss.MaxSpeed = 9, 3 }},
		{"zero spawn interval", func(c *Config) { c.Cloud.SpawnInterval = 0 }},
		{"inverted margin", func(c *Config) { c.Enemy.SpawnMargin = [2]int{100, 20} }},
		{"negative delay", func(c *Config) { c.Boss.Delay = -time.Second }},
		{"zero bullet speed", func(c *Config) { c.Bullet.Speed = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestAssetPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Assets.Dir = "assets"
	if got := cfg.AssetPath("jet.png"); got != filepath.Join("assets", "jet.png") {
		t.Errorf("AssetPath = %q", got)
	}
	abs := filepath.Join(string(filepath.Separator), "tmp", "x.png")
	if got := cfg.AssetPath(abs); got != abs {
		t.Errorf("absolute AssetPath = %q, want %q", got, abs)
	}
}
