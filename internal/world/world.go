// Package world is the game model: entities, their per-tick update rules,
// spawn timers, the collision pass and the menu/playing/end state machine.
// It draws nothing and plays nothing; the front-end renders its state and
// plays the cues each tick returns.
package world

import (
	"math"
	"math/rand"
	"time"

	"github.com/solarlune/resolv"

	"SavingMerica/internal/config"
	"SavingMerica/internal/geom"
)

// cell size of the resolv broad-phase grid
const cellSize = 64

// Outcome is how a play session ended.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	}
	return "none"
}

// World is the playing field of one session.
type World struct {
	cfg    config.Config
	sizes  Sizes
	rng    *rand.Rand
	bounds geom.Rect
	space  *resolv.Space

	// every live entity in spawn order; the player is first
	entities []*Entity
	player   *Entity
	boss     *Entity

	ticks       int
	enemyFired  int // enemy timer events handled so far
	cloudFired  int
	bossSpawned bool

	cues []Cue
}

// NewWorld builds the field with the player at the top-left corner.
func NewWorld(cfg config.Config, sizes Sizes, rng *rand.Rand) *World {
	w := &World{
		cfg:    cfg,
		sizes:  sizes,
		rng:    rng,
		bounds: geom.Rect{W: float64(cfg.Screen.Width), H: float64(cfg.Screen.Height)},
	}
	spaceW, spaceH := spaceSize(cfg, sizes)
	w.space = resolv.NewSpace(spaceW, spaceH, cellSize, cellSize)
	w.player = w.add(KindPlayer, geom.Rect{W: sizes.Player.W, H: sizes.Player.H})
	return w
}

// spaceSize covers the screen plus the off-screen strip where enemies and
// clouds spawn; resolv ignores shapes outside its grid.
func spaceSize(cfg config.Config, sizes Sizes) (int, int) {
	var maxW, maxH float64
	for _, s := range []Size{sizes.Player, sizes.Enemy, sizes.Cloud, sizes.Bullet, sizes.Boss} {
		maxW = max(maxW, s.W)
		maxH = max(maxH, s.H)
	}
	margin := max(cfg.Enemy.SpawnMargin[1], cfg.Cloud.SpawnMargin[1])
	return cfg.Screen.Width + margin + int(math.Ceil(maxW)), cfg.Screen.Height + int(math.Ceil(maxH))
}

// Player returns the jet, or nil once it was destroyed.
func (w *World) Player() *Entity { return w.player }

// Boss returns the boss, or nil when none is on the field.
func (w *World) Boss() *Entity { return w.boss }

// Entities returns the live entities in spawn order.
func (w *World) Entities() []*Entity { return w.entities }

// Bounds is the screen rectangle.
func (w *World) Bounds() geom.Rect { return w.bounds }

// Ticks is the number of steps taken.
func (w *World) Ticks() int { return w.ticks }

// Elapsed is the game time since the session started.
func (w *World) Elapsed() time.Duration {
	return time.Duration(w.ticks) * time.Second / time.Duration(w.cfg.Screen.TPS)
}

// Count returns how many live entities of kind k exist.
func (w *World) Count(k Kind) int {
	n := 0
	for _, e := range w.entities {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// Step advances the field by one tick. It returns the outcome reached on this
// tick, if any, and the sound cues produced.
func (w *World) Step(in Input) (Outcome, []Cue) {
	w.cues = w.cues[:0]
	w.ticks++

	// pending events: spawn timers and the fire action
	w.fireTimers()
	if in.Fire && w.player != nil {
		w.shoot()
	}

	w.movePlayer(in)

	if !w.bossSpawned && w.boss == nil && w.Elapsed() >= w.cfg.Boss.Delay {
		w.spawnBoss()
	}

	for _, e := range w.entities {
		if e.Kind != KindPlayer {
			w.update(e)
		}
	}
	w.sweep()

	outcome := w.collide()
	w.sweep()
	return outcome, w.cues
}

// fireTimers handles every enemy and cloud timer event due by now.
func (w *World) fireTimers() {
	elapsed := w.Elapsed()
	for due := int(elapsed / w.cfg.Enemy.SpawnInterval); w.enemyFired < due; w.enemyFired++ {
		w.spawnEnemy()
	}
	for due := int(elapsed / w.cfg.Cloud.SpawnInterval); w.cloudFired < due; w.cloudFired++ {
		w.spawnCloud()
	}
}

// add registers a new entity in the collision space and the spawn list.
func (w *World) add(k Kind, r geom.Rect) *Entity {
	sh := resolv.NewRectangleFromTopLeft(r.X, r.Y, r.W, r.H)
	sh.Tags().Set(k.tag())
	w.space.Add(sh)
	e := &Entity{Kind: k, Rect: r, sh: sh}
	w.entities = append(w.entities, e)
	return e
}

func (w *World) kill(e *Entity) {
	if e.dead {
		return
	}
	e.dead = true
	w.space.Remove(e.sh)
	switch e {
	case w.player:
		w.player = nil
	case w.boss:
		w.boss = nil
	}
}

// sweep drops dead entities, keeping spawn order.
func (w *World) sweep() {
	n := 0
	for _, e := range w.entities {
		if !e.dead {
			w.entities[n] = e
			n++
		}
	}
	clear(w.entities[n:])
	w.entities = w.entities[:n]
}

func (w *World) emit(c Cue) { w.cues = append(w.cues, c) }

// randInt returns a uniform integer in [lo, hi].
func (w *World) randInt(lo, hi int) int {
	return lo + w.rng.Intn(hi-lo+1)
}

// offscreenCenter picks a spawn center right of the screen at a random height.
func (w *World) offscreenCenter(margin [2]int) (float64, float64) {
	x := w.randInt(w.cfg.Screen.Width+margin[0], w.cfg.Screen.Width+margin[1])
	y := w.randInt(0, w.cfg.Screen.Height)
	return float64(x), float64(y)
}

func (w *World) spawnEnemy() *Entity {
	size := w.sizes.Enemy
	cx, cy := w.offscreenCenter(w.cfg.Enemy.SpawnMargin)
	e := w.add(KindEnemy, geom.FromCenter(cx, cy, size.W, size.H))
	e.Speed = float64(w.randInt(w.cfg.Enemy.MinSpeed, w.cfg.Enemy.MaxSpeed))
	return e
}

func (w *World) spawnCloud() *Entity {
	size := w.sizes.Cloud
	cx, cy := w.offscreenCenter(w.cfg.Cloud.SpawnMargin)
	e := w.add(KindCloud, geom.FromCenter(cx, cy, size.W, size.H))
	e.Speed = w.cfg.Cloud.Speed
	return e
}

// shoot fires a bullet centered on the jet's nose.
func (w *World) shoot() *Entity {
	_, cy := w.player.Rect.Center()
	size := w.sizes.Bullet
	e := w.add(KindBullet, geom.FromCenter(w.player.Rect.Right(), cy, size.W, size.H))
	e.Speed = w.cfg.Bullet.Speed
	return e
}

// spawnBoss places the boss against the right edge at a random height.
func (w *World) spawnBoss() *Entity {
	size := w.sizes.Boss
	halfH := int(size.H) / 2
	cx := w.bounds.W - math.Floor(size.W/2)
	cy := float64(w.randInt(halfH, max(halfH, w.cfg.Screen.Height-halfH)))
	e := w.add(KindBoss, geom.FromCenter(cx, cy, size.W, size.H))
	e.VX = float64(w.randInt(w.cfg.Boss.MinSpeed, w.cfg.Boss.MaxSpeed))
	e.VY = float64(w.randInt(w.cfg.Boss.MinSpeed, w.cfg.Boss.MaxSpeed))
	e.DirX, e.DirY = 1, 1
	e.Health = w.cfg.Boss.Health
	w.boss = e
	w.bossSpawned = true
	return e
}

// BossHealth reports the boss's health against its starting value.
// ok is false when no boss is on the field.
func (w *World) BossHealth() (health, full int, ok bool) {
	if w.boss == nil {
		return 0, 0, false
	}
	return w.boss.Health, w.cfg.Boss.Health, true
}
