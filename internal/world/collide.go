package world

import "github.com/solarlune/resolv"

// overlapping returns the live entities tagged with tags whose rect overlaps e,
// in spawn order. resolv narrows the search to nearby cells; the rect test decides.
func (w *World) overlapping(e *Entity, tags resolv.Tags) []*Entity {
	near := make(map[resolv.IShape]bool)
	e.sh.SelectTouchingCells(1).FilterShapes().ByTags(tags).ForEach(func(other resolv.IShape) bool {
		near[other] = true
		return true
	})
	if len(near) == 0 {
		return nil
	}
	var hits []*Entity
	for _, o := range w.entities {
		if o != e && !o.dead && near[o.sh] && o.Rect.Intersects(e.Rect) {
			hits = append(hits, o)
		}
	}
	return hits
}

// collide resolves bullet hits and player crashes for the current tick.
func (w *World) collide() Outcome {
	// bullets against enemies: a bullet takes out the first enemy it touches
	for _, b := range w.entities {
		if b.Kind != KindBullet || b.dead {
			continue
		}
		if hits := w.overlapping(b, tagEnemy); len(hits) > 0 {
			w.kill(hits[0])
			w.kill(b)
			w.emit(CueCollision)
		}
	}

	// bullets against the boss: every touching bullet is consumed, but the
	// boss loses a single point per tick
	if boss := w.boss; boss != nil {
		hits := w.overlapping(boss, tagBullet)
		for _, b := range hits {
			w.kill(b)
		}
		if len(hits) > 0 {
			boss.Health = max(boss.Health-1, 0)
			if boss.Health == 0 {
				w.kill(boss)
				w.emit(CueExplosion)
				return OutcomeVictory
			}
		}
	}

	p := w.player
	if p == nil {
		return OutcomeNone
	}
	crashed := len(w.overlapping(p, tagEnemy)) > 0
	if !crashed && w.boss != nil {
		crashed = len(w.overlapping(p, tagBoss)) > 0
	}
	if crashed {
		w.kill(p)
		w.emit(CueStopMoves)
		w.emit(CueCollision)
		return OutcomeDefeat
	}
	return OutcomeNone
}
