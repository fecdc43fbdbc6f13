// Package config provides the YAML configuration of the game: screen and
// timing, entity tuning, asset names and on-screen texts.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"time"
)

// Config is the full game configuration.
type Config struct {
	Screen ScreenConfig `yaml:"screen"`
	Player PlayerConfig `yaml:"player"`
	Enemy  EnemyConfig  `yaml:"enemy"`
	Cloud  CloudConfig  `yaml:"cloud"`
	Bullet BulletConfig `yaml:"bullet"`
	Boss   BossConfig   `yaml:"boss"`
	Assets AssetsConfig `yaml:"assets"`
	Text   TextConfig   `yaml:"text"`
}

// ScreenConfig defines the logical screen and tick rate.
type ScreenConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	TPS        int    `yaml:"tps"`
	Title      string `yaml:"title"`
	Background RGB    `yaml:"background"`
}

// PlayerConfig tunes the jet.
type PlayerConfig struct {
	Speed float64 `yaml:"speed"`
}

// EnemyConfig tunes missiles.
type EnemyConfig struct {
	MinSpeed      int           `yaml:"min_speed"`
	MaxSpeed      int           `yaml:"max_speed"`
	SpawnInterval time.Duration `yaml:"spawn_interval"`
	SpawnMargin   [2]int        `yaml:"spawn_margin,flow"`
}

// CloudConfig tunes clouds.
type CloudConfig struct {
	Speed         float64       `yaml:"speed"`
	SpawnInterval time.Duration `yaml:"spawn_interval"`
	SpawnMargin   [2]int        `yaml:"spawn_margin,flow"`
}

// BulletConfig tunes bullets.
type BulletConfig struct {
	Speed float64 `yaml:"speed"`
}

// BossConfig tunes the boss.
type BossConfig struct {
	Delay    time.Duration `yaml:"delay"`
	Health   int           `yaml:"health"`
	MinSpeed int           `yaml:"min_speed"`
	MaxSpeed int           `yaml:"max_speed"`
	// health bar geometry
	BarX      float64 `yaml:"bar_x"`
	BarY      float64 `yaml:"bar_y"`
	BarWidth  float64 `yaml:"bar_width"`
	BarHeight float64 `yaml:"bar_height"`
}

// AssetsConfig names every file the game loads, relative to Dir.
type AssetsConfig struct {
	Dir     string `yaml:"dir"`
	Lenient bool   `yaml:"lenient"`

	Player Image `yaml:"player"`
	Enemy  Image `yaml:"enemy"`
	Cloud  Image `yaml:"cloud"`
	Bullet Image `yaml:"bullet"`
	Boss   Image `yaml:"boss"`

	StartBackground   string `yaml:"start_background"`
	VictoryBackground string `yaml:"victory_background"`
	DefeatBackground  string `yaml:"defeat_background"`

	Music     string `yaml:"music"`
	MoveUp    string `yaml:"move_up"`
	MoveDown  string `yaml:"move_down"`
	Collision string `yaml:"collision"`
	Explosion string `yaml:"explosion"`

	// Fallback sizes used in lenient mode when a sprite is missing.
	FallbackSize [2]int `yaml:"fallback_size,flow"`
}

// Image is a sprite file with an optional transparent color key.
type Image struct {
	File     string `yaml:"file"`
	ColorKey *RGB   `yaml:"color_key,omitempty"`
}

// TextConfig holds on-screen messages and their style.
type TextConfig struct {
	Title        string  `yaml:"title"`
	Prompt       string  `yaml:"prompt"`
	Victory      string  `yaml:"victory"`
	Defeat       string  `yaml:"defeat"`
	FontSize     float64 `yaml:"font_size"`
	OutlineWidth float64 `yaml:"outline_width"`
}

// RGB is an opaque color.
type RGB struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// Color converts to an image/color value.
func (c RGB) Color() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// TickDuration is the game time covered by one tick.
func (c Config) TickDuration() time.Duration {
	return time.Second / time.Duration(c.Screen.TPS)
}

// Validate rejects values the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if c.Screen.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.Screen.TPS))
	}
	if c.Enemy.MinSpeed <= 0 || c.Enemy.MaxSpeed < c.Enemy.MinSpeed {
		errs = append(errs, fmt.Errorf("enemy speed range [%d, %d] is invalid", c.Enemy.MinSpeed, c.Enemy.MaxSpeed))
	}
	if c.Boss.MinSpeed <= 0 || c.Boss.MaxSpeed < c.Boss.MinSpeed {
		errs = append(errs, fmt.Errorf("boss speed range [%d, %d] is invalid", c.Boss.MinSpeed, c.Boss.MaxSpeed))
	}
	if c.Enemy.SpawnInterval <= 0 || c.Cloud.SpawnInterval <= 0 {
		errs = append(errs, errors.New("spawn intervals must be positive"))
	}
	if c.Enemy.SpawnMargin[1] < c.Enemy.SpawnMargin[0] || c.Cloud.SpawnMargin[1] < c.Cloud.SpawnMargin[0] {
		errs = append(errs, errors.New("spawn margin must be [min, max]"))
	}
	if c.Boss.Health <= 0 {
		errs = append(errs, fmt.Errorf("boss health must be positive, got %d", c.Boss.Health))
	}
	if c.Boss.Delay < 0 {
		errs = append(errs, fmt.Errorf("boss delay must not be negative, got %s", c.Boss.Delay))
	}
	if c.Player.Speed <= 0 || c.Bullet.Speed <= 0 || c.Cloud.Speed <= 0 {
		errs = append(errs, errors.New("player, bullet and cloud speeds must be positive"))
	}
	return errors.Join(errs...)
}
