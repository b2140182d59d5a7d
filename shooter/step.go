package shooter

// Step advances one frame of play. It does nothing off the running screen.
// Collisions use post-movement positions.
func (s *State) Step() {
	if s.Screen != ScreenRunning {
		return
	}
	s.Frame++

	s.movePlayer()
	for _, b := range s.Player.Bullets {
		b.Y -= b.Speed
	}
	for _, e := range s.Enemies {
		e.Y += e.Speed
	}

	s.Collide()
	if s.Screen != ScreenRunning {
		return
	}

	if s.HitTimer > 0 {
		s.HitTimer--
		if s.HitTimer == 0 {
			s.Hit = false
		}
	}

	if !s.opts.KeepOffscreen {
		s.pruneOffscreen()
	}
}

func (s *State) movePlayer() {
	p := s.Player
	if p.Moving.Right {
		p.X += p.Speed
	}
	if p.Moving.Left {
		p.X -= p.Speed
	}
	if p.Moving.Up {
		p.Y -= p.Speed
	}
	if p.Moving.Down {
		p.Y += p.Speed
	}
	p.X = clamp(p.X, 0, s.width-PlayerSize)
	p.Y = clamp(p.Y, 0, s.height-PlayerSize)
}

func (s *State) pruneOffscreen() {
	bullets := s.Player.Bullets[:0]
	for _, b := range s.Player.Bullets {
		if b.Y+BulletHeight >= 0 {
			bullets = append(bullets, b)
		}
	}
	clear(s.Player.Bullets[len(bullets):])
	s.Player.Bullets = bullets

	enemies := s.Enemies[:0]
	for _, e := range s.Enemies {
		if e.Y <= s.height {
			enemies = append(enemies, e)
		}
	}
	clear(s.Enemies[len(enemies):])
	s.Enemies = enemies
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
