package config

import (
	_ "embed"
	"time"
)

//go:embed defaults.yaml
var defaultYAML []byte

var (
	white = RGB{R: 255, G: 255, B: 255}
	black = RGB{}
)

// DefaultConfig returns the built-in configuration. It matches defaults.yaml
// and is used when the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Screen: ScreenConfig{
			Width:      800,
			Height:     600,
			TPS:        30,
			Title:      "Saving 'Merica",
			Background: RGB{R: 169, G: 169, B: 169},
		},
		Player: PlayerConfig{Speed: 5},
		Enemy: EnemyConfig{
			MinSpeed:      5,
			MaxSpeed:      20,
			SpawnInterval: 250 * time.Millisecond,
			SpawnMargin:   [2]int{20, 100},
		},
		Cloud: CloudConfig{
			Speed:         5,
			SpawnInterval: time.Second,
			SpawnMargin:   [2]int{20, 100},
		},
		Bullet: BulletConfig{Speed: 10},
		Boss: BossConfig{
			Delay:     10 * time.Second,
			Health:    10,
			MinSpeed:  3,
			MaxSpeed:  7,
			BarX:      10,
			BarY:      10,
			BarWidth:  200,
			BarHeight: 20,
		},
		Assets: AssetsConfig{
			Dir:               ".",
			Player:            Image{File: "jet.png", ColorKey: &white},
			Enemy:             Image{File: "missile.png", ColorKey: &white},
			Cloud:             Image{File: "cloud.png", ColorKey: &black},
			Bullet:            Image{File: "bullet.png", ColorKey: &black},
			Boss:              Image{File: "boss.png", ColorKey: &black},
			StartBackground:   "start_background.jpg",
			VictoryBackground: "background_image.jpg",
			DefeatBackground:  "lose_background.jpg",
			Music:             "Fortunate Son.mp3",
			MoveUp:            "Rising_putter.ogg",
			MoveDown:          "Falling_putter.ogg",
			Collision:         "Collision.ogg",
			Explosion:         "exposion.mp3",
			FallbackSize:      [2]int{40, 20},
		},
		Text: TextConfig{
			Title:        "Saving 'Merica",
			Prompt:       "Press SPACE to Start",
			Victory:      "You saved America",
			Defeat:       "You were defeated",
			FontSize:     74,
			OutlineWidth: 2,
		},
	}
}
