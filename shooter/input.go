package shooter

// Key is a logical game key. Platform key codes are mapped onto these by the
// front end.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyFire
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyFire:
		return "fire"
	default:
		return "none"
	}
}

// KeyDown handles a key press, including platform repeats.
func (s *State) KeyDown(k Key) {
	if k == KeyFire {
		s.Fire()
		return
	}
	s.setIntent(k, true)
}

// KeyUp handles a key release. Releasing fire does nothing.
func (s *State) KeyUp(k Key) {
	s.setIntent(k, false)
}

func (s *State) setIntent(k Key, held bool) {
	m := &s.Player.Moving
	switch k {
	case KeyUp:
		m.Up = held
	case KeyDown:
		m.Down = held
	case KeyLeft:
		m.Left = held
	case KeyRight:
		m.Right = held
	}
}

// Fire launches one bullet from the player's centre, plus a left and right
// bullet while booster charges remain. It reports whether a shot was fired.
func (s *State) Fire() bool {
	if s.Screen != ScreenRunning {
		return false
	}
	if cd := s.opts.FireCooldown; cd > 0 && s.Frame-s.lastFire < cd {
		return false
	}
	s.lastFire = s.Frame

	p := s.Player
	p.Bullets = append(p.Bullets, newBullet(p, BulletCenterOffset))
	s.audio.Restart(ChannelFire)

	if s.Booster > 0 {
		p.Bullets = append(p.Bullets,
			newBullet(p, BulletLeftOffset),
			newBullet(p, BulletRightOffset),
		)
		s.Booster--
	}
	return true
}

func newBullet(p *Player, offset float64) *Bullet {
	return &Bullet{X: p.X + offset, Y: p.Y, Speed: BulletSpeed}
}
