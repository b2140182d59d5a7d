package shooter

// Overlap reports whether two axis-aligned boxes intersect. Touching edges do
// not count.
func Overlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && ax+aw > bx && ay < by+bh && ay+ah > by
}

// Collide resolves enemy hits against the player and the player's bullets.
// Enemies are walked newest first. A lethal hit ends the game and skips the
// rest of the frame. Destroyed entities are removed before returning.
func (s *State) Collide() {
	defer s.compact()

	p := s.Player
	for i := len(s.Enemies) - 1; i >= 0; i-- {
		e := s.Enemies[i]
		if e.Dead {
			continue
		}

		if Overlap(e.X, e.Y, EnemySize, EnemySize, p.X, p.Y, PlayerSize, PlayerSize) {
			e.Dead = true
			p.Lives--
			s.Hit = true
			s.HitTimer = HitFlashFrames
			if p.Lives <= 0 {
				p.Lives = 0
				s.log.Info("player destroyed", "session", s.SessionID, "score", s.Score, "level", s.Level)
				s.GameOver()
				return
			}
		}

		// The enemy is still checked against bullets after ramming the
		// player; a bullet already inside it scores the kill. Newest
		// bullets are matched first.
		for j := len(p.Bullets) - 1; j >= 0; j-- {
			b := p.Bullets[j]
			if b.Dead {
				continue
			}
			if Overlap(b.X, b.Y, BulletWidth, BulletHeight, e.X, e.Y, EnemySize, EnemySize) {
				e.Dead = true
				b.Dead = true
				s.Score++
				s.audio.Restart(ChannelDestroy)
				break
			}
		}
	}
}

func (s *State) compact() {
	enemies := s.Enemies[:0]
	for _, e := range s.Enemies {
		if !e.Dead {
			enemies = append(enemies, e)
		}
	}
	clear(s.Enemies[len(enemies):])
	s.Enemies = enemies

	bullets := s.Player.Bullets[:0]
	for _, b := range s.Player.Bullets {
		if !b.Dead {
			bullets = append(bullets, b)
		}
	}
	clear(s.Player.Bullets[len(bullets):])
	s.Player.Bullets = bullets
}
