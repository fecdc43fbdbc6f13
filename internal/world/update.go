package world

// movePlayer shifts the jet for every held direction and keeps it on screen.
func (w *World) movePlayer(in Input) {
	p := w.player
	if p == nil {
		return
	}
	d := w.cfg.Player.Speed
	if in.Up {
		p.Rect = p.Rect.Move(0, -d)
		w.emit(CueMoveUp)
	}
	if in.Down {
		p.Rect = p.Rect.Move(0, d)
		w.emit(CueMoveDown)
	}
	if in.Left {
		p.Rect = p.Rect.Move(-d, 0)
	}
	if in.Right {
		p.Rect = p.Rect.Move(d, 0)
	}
	p.Rect = p.Rect.Clamp(w.bounds)
	p.syncShape()
}

// update applies the per-kind movement rule to one entity.
func (w *World) update(e *Entity) {
	switch e.Kind {
	case KindEnemy, KindCloud:
		e.Rect = e.Rect.Move(-e.Speed, 0)
		if e.Rect.Right() < 0 {
			w.kill(e)
			return
		}
	case KindBullet:
		e.Rect = e.Rect.Move(e.Speed, 0)
		if e.Rect.Left() > w.bounds.Right() {
			w.kill(e)
			return
		}
	case KindBoss:
		e.Rect = e.Rect.Move(e.VX*e.DirX, e.VY*e.DirY)
		if e.Rect.Left() <= w.bounds.Left() || e.Rect.Right() >= w.bounds.Right() {
			e.DirX = -e.DirX
		}
		if e.Rect.Top() <= w.bounds.Top() || e.Rect.Bottom() >= w.bounds.Bottom() {
			e.DirY = -e.DirY
		}
		e.Rect = e.Rect.Clamp(w.bounds)
	case KindPlayer:
		return
	}
	e.syncShape()
}
