package shooter

import "testing"

func TestClickStart(t *testing.T) {
	s, a := newTestState(t, Options{})

	s.Click(400, 300)

	if s.Screen != ScreenRunning {
		t.Fatalf("screen = %v, want running", s.Screen)
	}
	if a.count("play", ChannelMusic) != 1 {
		t.Fatalf("music plays = %d, want 1", a.count("play", ChannelMusic))
	}
}

func TestClickStartBorderIsOutside(t *testing.T) {
	s, _ := newTestState(t, Options{})
	b := s.StartButton()

	for _, pt := range [][2]float64{
		{b.X, 300}, {b.X + b.W, 300}, {400, b.Y}, {400, b.Y + b.H},
	} {
		s.Click(pt[0], pt[1])
		if s.Screen != ScreenStart {
			t.Fatalf("click at %v started the game", pt)
		}
	}
}

func TestMuteOnlyOnStart(t *testing.T) {
	s, a := newTestState(t, Options{})

	s.Click(760, 25)
	if !s.Muted || !a.muted {
		t.Fatalf("muted state=%v audio=%v, want true", s.Muted, a.muted)
	}
	s.Click(760, 25)
	if s.Muted || a.muted {
		t.Fatalf("muted state=%v audio=%v, want false", s.Muted, a.muted)
	}

	s.Screen = ScreenRunning
	s.Click(760, 25)
	if s.Muted {
		t.Fatal("mute toggled while running")
	}
	s.Screen = ScreenGameOver
	s.Click(760, 25)
	if s.Muted {
		t.Fatal("mute toggled on game over")
	}
}

func TestClicksIgnoredWhileRunning(t *testing.T) {
	s, _ := newRunningState(t, Options{})
	s.Score = 4

	s.Click(400, 300)
	s.Click(400, 375)

	if s.Screen != ScreenRunning || s.Score != 4 {
		t.Fatalf("screen=%v score=%d, want running and 4", s.Screen, s.Score)
	}
}

func TestTryAgainResets(t *testing.T) {
	s, _ := newRunningState(t, Options{})
	s.Player.Lives = 1
	s.Player.X = 10
	s.Player.Bullets = []*Bullet{{X: 1, Y: 1, Speed: 5}}
	s.Enemies = []*Enemy{{X: 10, Y: s.Player.Y}, {X: 500, Y: 10}}
	s.Score = 12
	s.Level = 7
	s.TimeLeft = 3
	s.Booster = 0

	s.Step()
	if s.Screen != ScreenGameOver {
		t.Fatalf("screen = %v, want gameover", s.Screen)
	}
	session := s.SessionID

	s.Click(400, 300) // the start button is not active on game over
	if s.Screen != ScreenGameOver {
		t.Fatalf("screen = %v after start-region click, want gameover", s.Screen)
	}

	s.Click(400, 375)

	if s.Screen != ScreenStart {
		t.Fatalf("screen = %v, want start", s.Screen)
	}
	if s.Player.Lives != 3 || s.Score != 0 || s.Level != 1 || s.TimeLeft != 60 {
		t.Fatalf("lives=%d score=%d level=%d time=%d", s.Player.Lives, s.Score, s.Level, s.TimeLeft)
	}
	if len(s.Enemies) != 0 || len(s.Player.Bullets) != 0 {
		t.Fatalf("enemies=%d bullets=%d, want empty", len(s.Enemies), len(s.Player.Bullets))
	}
	if s.Hit || s.HitTimer != 0 {
		t.Fatalf("hit=%v timer=%d, want cleared", s.Hit, s.HitTimer)
	}
	if s.Player.X != 375 || s.Player.Moving != (Intent{}) {
		t.Fatalf("player not recreated: %+v", s.Player)
	}
	// booster charges carry over into the next session
	if s.Booster != 0 {
		t.Fatalf("booster = %d, want 0", s.Booster)
	}
	if s.SessionID == session {
		t.Fatal("session id not renewed")
	}
}

func TestScreenString(t *testing.T) {
	for sc, want := range map[Screen]string{
		ScreenStart:    "start",
		ScreenRunning:  "running",
		ScreenGameOver: "gameover",
		Screen(9):      "unknown",
	} {
		if got := sc.String(); got != want {
			t.Fatalf("Screen(%d).String() = %q, want %q", sc, got, want)
		}
	}
}
