package world

import (
	"github.com/solarlune/resolv"

	"SavingMerica/internal/geom"
)

// Kind tags an Entity with its variant.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindCloud
	KindBullet
	KindBoss
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindCloud:
		return "cloud"
	case KindBullet:
		return "bullet"
	case KindBoss:
		return "boss"
	}
	return "unknown"
}

// tags let resolv filter which shapes to test against
var (
	tagPlayer = resolv.NewTag("player")
	tagEnemy  = resolv.NewTag("enemy")
	tagCloud  = resolv.NewTag("cloud")
	tagBullet = resolv.NewTag("bullet")
	tagBoss   = resolv.NewTag("boss")
)

func (k Kind) tag() resolv.Tags {
	switch k {
	case KindPlayer:
		return tagPlayer
	case KindEnemy:
		return tagEnemy
	case KindCloud:
		return tagCloud
	case KindBullet:
		return tagBullet
	}
	return tagBoss
}

// Entity is one sprite of the playing field. Which fields matter depends on Kind:
// Speed drives enemies, clouds and bullets; VX, VY, DirX, DirY and Health drive the boss.
type Entity struct {
	Kind Kind
	Rect geom.Rect

	Speed float64

	VX, VY     float64
	DirX, DirY float64
	Health     int

	sh   resolv.IShape // collision box
	dead bool
}

// Alive reports whether the entity is still part of the world.
func (e *Entity) Alive() bool { return !e.dead }

// syncShape moves the collision box to the rect. resolv positions shapes by
// their center.
func (e *Entity) syncShape() {
	e.sh.SetPosition(e.Rect.X+e.Rect.W/2, e.Rect.Y+e.Rect.H/2)
}

// Size is the width and height of a sprite.
type Size struct {
	W, H float64
}

// Sizes carries the sprite size of every kind, normally taken from the loaded images.
type Sizes struct {
	Player, Enemy, Cloud, Bullet, Boss Size
}

func (s Sizes) of(k Kind) Size {
	switch k {
	case KindPlayer:
		return s.Player
	case KindEnemy:
		return s.Enemy
	case KindCloud:
		return s.Cloud
	case KindBullet:
		return s.Bullet
	}
	return s.Boss
}
