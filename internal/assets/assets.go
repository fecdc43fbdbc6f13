// Package assets loads the sprites, backgrounds and font the game draws with.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	_ "image/jpeg" // let ebiten load .jpg backgrounds
	_ "image/png"  // let ebiten load .png sprites
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"SavingMerica/internal/config"
	"SavingMerica/internal/world"
)

// Assets holds every image the game draws. Backgrounds may be nil in
// lenient mode; sprites never are.
type Assets struct {
	Player *ebiten.Image
	Enemy  *ebiten.Image
	Cloud  *ebiten.Image
	Bullet *ebiten.Image
	Boss   *ebiten.Image

	StartBackground   *ebiten.Image
	VictoryBackground *ebiten.Image
	DefeatBackground  *ebiten.Image

	Face *text.GoTextFace
}

// fallback sprite colors (lenient mode)
var (
	playerColor = color.RGBA{20, 20, 28, 255}
	enemyColor  = color.RGBA{220, 60, 60, 255}
	cloudColor  = color.RGBA{240, 240, 245, 255}
	bulletColor = color.RGBA{240, 220, 60, 255}
	bossColor   = color.RGBA{120, 30, 160, 255}
)

// Load reads all images and the font. A missing or broken file is an error
// unless cfg.Assets.Lenient is set, in which case a plain rectangle stands in.
func Load(cfg config.Config, logger *log.Logger) (*Assets, error) {
	l := loader{cfg: cfg, logger: logger}
	a := &Assets{
		Player: l.sprite(cfg.Assets.Player, playerColor),
		Enemy:  l.sprite(cfg.Assets.Enemy, enemyColor),
		Cloud:  l.sprite(cfg.Assets.Cloud, cloudColor),
		Bullet: l.sprite(cfg.Assets.Bullet, bulletColor),
		Boss:   l.sprite(cfg.Assets.Boss, bossColor),

		StartBackground:   l.background(cfg.Assets.StartBackground),
		VictoryBackground: l.background(cfg.Assets.VictoryBackground),
		DefeatBackground:  l.background(cfg.Assets.DefeatBackground),
	}
	if err := errors.Join(l.errs...); err != nil {
		return nil, err
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	a.Face = &text.GoTextFace{Source: src, Size: cfg.Text.FontSize}
	return a, nil
}

// Sizes returns the collision size of every entity kind, taken from its sprite.
func (a *Assets) Sizes() world.Sizes {
	size := func(img *ebiten.Image) world.Size {
		b := img.Bounds()
		return world.Size{W: float64(b.Dx()), H: float64(b.Dy())}
	}
	return world.Sizes{
		Player: size(a.Player),
		Enemy:  size(a.Enemy),
		Cloud:  size(a.Cloud),
		Bullet: size(a.Bullet),
		Boss:   size(a.Boss),
	}
}

type loader struct {
	cfg    config.Config
	logger *log.Logger
	errs   []error
}

// fail records err, or logs it and returns true when a fallback may be used.
func (l *loader) fail(err error) bool {
	if !l.cfg.Assets.Lenient {
		l.errs = append(l.errs, err)
		return false
	}
	if errors.Is(err, fs.ErrNotExist) {
		l.logger.Warn("asset missing, using fallback", "error", err)
	} else {
		l.logger.Warn("asset unreadable, using fallback", "error", err)
	}
	return true
}

func (l *loader) sprite(img config.Image, fallback color.Color) *ebiten.Image {
	path := l.cfg.AssetPath(img.File)
	eimg, raw, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		if !l.fail(fmt.Errorf("load image %s: %w", path, err)) {
			return nil
		}
		w, h := l.cfg.Assets.FallbackSize[0], l.cfg.Assets.FallbackSize[1]
		rect := ebiten.NewImage(w, h)
		rect.Fill(fallback)
		return rect
	}
	l.logger.Debug("loaded image", "path", path, "size", raw.Bounds().Size())
	if img.ColorKey == nil {
		return eimg
	}
	eimg.Deallocate()
	return ebiten.NewImageFromImage(applyColorKey(raw, *img.ColorKey))
}

func (l *loader) background(name string) *ebiten.Image {
	path := l.cfg.AssetPath(name)
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		l.fail(fmt.Errorf("load background %s: %w", path, err))
		return nil
	}
	l.logger.Debug("loaded background", "path", path)
	return img
}
