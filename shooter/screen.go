package shooter

// Screen selects which update and render path is active.
type Screen int

const (
	ScreenStart Screen = iota
	ScreenRunning
	ScreenGameOver
)

func (sc Screen) String() string {
	switch sc {
	case ScreenStart:
		return "start"
	case ScreenRunning:
		return "running"
	case ScreenGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Rect is a clickable region.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies strictly inside r.
func (r Rect) Contains(x, y float64) bool {
	return x > r.X && x < r.X+r.W && y > r.Y && y < r.Y+r.H
}

func (s *State) StartButton() Rect {
	return Rect{X: s.width/2 - 100, Y: s.height/2 - 25, W: 200, H: 50}
}

func (s *State) MuteButton() Rect {
	return Rect{X: s.width - 80, Y: 10, W: 70, H: 30}
}

func (s *State) TryAgainButton() Rect {
	return Rect{X: s.width/2 - 100, Y: s.height/2 + 50, W: 200, H: 50}
}

// Click dispatches a pointer click in canvas coordinates. Clicks outside the
// buttons of the current screen are ignored.
func (s *State) Click(x, y float64) {
	switch s.Screen {
	case ScreenStart:
		if s.StartButton().Contains(x, y) {
			s.setScreen(ScreenRunning)
			s.audio.Play(ChannelMusic)
			return
		}
		if s.MuteButton().Contains(x, y) {
			s.ToggleMute()
		}
	case ScreenGameOver:
		if s.TryAgainButton().Contains(x, y) {
			s.Reset()
			s.setScreen(ScreenStart)
		}
	}
}

// ToggleMute flips the mute flag for every channel at once.
func (s *State) ToggleMute() {
	s.Muted = !s.Muted
	s.audio.SetMuted(s.Muted)
	s.log.Debug("mute toggled", "muted", s.Muted)
}

// GameOver ends the session and stops the music from the top.
func (s *State) GameOver() {
	s.setScreen(ScreenGameOver)
	s.audio.Pause(ChannelMusic)
	s.audio.Rewind(ChannelMusic)
}

func (s *State) setScreen(next Screen) {
	if s.Screen == next {
		return
	}
	s.log.Info("screen", "session", s.SessionID, "from", s.Screen.String(), "to", next.String())
	s.Screen = next
}
