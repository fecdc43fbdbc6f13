package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"SavingMerica/internal/world"
)

var (
	barBack = color.RGBA{255, 0, 0, 255}
	barFill = color.RGBA{0, 255, 0, 255}
)

// Draw renders the active screen.
func (g *Game) Draw(screen *ebiten.Image) {
	switch g.session.State() {
	case world.StateStartMenu:
		g.drawMenu(screen)
	case world.StatePlaying:
		g.drawField(screen)
	case world.StateEnded, world.StateQuit:
		if g.session.Outcome() != world.OutcomeNone {
			g.drawEnd(screen)
		}
	}
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	g.drawBackground(screen, g.assets.StartBackground)
	t := g.cfg.Text
	sw, sh := float64(g.cfg.Screen.Width), float64(g.cfg.Screen.Height)

	tw, _ := g.outlinedSize(t.Title)
	g.drawOutlined(screen, t.Title, sw/2-tw/2, sh/3, color.Black, color.White)
	pw, _ := g.outlinedSize(t.Prompt)
	g.drawOutlined(screen, t.Prompt, sw/2-pw/2, sh/2, color.Black, color.White)
}

func (g *Game) drawField(screen *ebiten.Image) {
	screen.Fill(g.cfg.Screen.Background.Color())
	w := g.session.World()

	for _, e := range w.Entities() {
		g.drawEntity(screen, e)
	}

	if health, full, ok := w.BossHealth(); ok {
		b := g.cfg.Boss
		fill := b.BarWidth * float64(health) / float64(full)
		vector.DrawFilledRect(screen, float32(b.BarX), float32(b.BarY), float32(b.BarWidth), float32(b.BarHeight), barBack, false)
		vector.DrawFilledRect(screen, float32(b.BarX), float32(b.BarY), float32(fill), float32(b.BarHeight), barFill, false)
	}

	// the jet goes on top of everything
	if p := w.Player(); p != nil {
		g.drawEntity(screen, p)
	}
}

func (g *Game) drawEnd(screen *ebiten.Image) {
	bg, msg := g.assets.VictoryBackground, g.cfg.Text.Victory
	if g.session.Outcome() == world.OutcomeDefeat {
		bg, msg = g.assets.DefeatBackground, g.cfg.Text.Defeat
	}
	g.drawBackground(screen, bg)

	sw, sh := float64(g.cfg.Screen.Width), float64(g.cfg.Screen.Height)
	mw, mh := g.outlinedSize(msg)
	g.drawOutlined(screen, msg, sw/2-mw/2, sh/2-mh/2, color.White, color.Black)
}

func (g *Game) drawBackground(screen, bg *ebiten.Image) {
	if bg == nil {
		screen.Fill(g.cfg.Screen.Background.Color())
		return
	}
	screen.DrawImage(bg, &ebiten.DrawImageOptions{})
}

func (g *Game) drawEntity(screen *ebiten.Image, e *world.Entity) {
	var img *ebiten.Image
	switch e.Kind {
	case world.KindPlayer:
		img = g.assets.Player
	case world.KindEnemy:
		img = g.assets.Enemy
	case world.KindCloud:
		img = g.assets.Cloud
	case world.KindBullet:
		img = g.assets.Bullet
	case world.KindBoss:
		img = g.assets.Boss
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(e.Rect.X, e.Rect.Y)
	screen.DrawImage(img, op)
}

// outlinedSize is the footprint of s once drawn with its outline.
func (g *Game) outlinedSize(s string) (float64, float64) {
	w, h := text.Measure(s, g.assets.Face, 0)
	ow := g.cfg.Text.OutlineWidth
	return w + 2*ow, h + 2*ow
}

// drawOutlined draws s with its footprint's top-left at (x, y): eight offset
// copies in the outline color, then the text itself in the middle.
func (g *Game) drawOutlined(dst *ebiten.Image, s string, x, y float64, fg, outline color.Color) {
	ow := g.cfg.Text.OutlineWidth
	offsets := [][2]float64{
		{ow, 0}, {ow, 2 * ow},
		{0, ow}, {2 * ow, ow},
		{0, 0}, {0, 2 * ow},
		{2 * ow, 0}, {2 * ow, 2 * ow},
	}
	for _, off := range offsets {
		g.drawText(dst, s, x+off[0], y+off[1], outline)
	}
	g.drawText(dst, s, x+ow, y+ow, fg)
}

func (g *Game) drawText(dst *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, g.assets.Face, op)
}
