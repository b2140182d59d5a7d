package shooter

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"
	"time"
)

type audioCall struct {
	op string
	ch Channel
}

type recordingAudio struct {
	calls []audioCall
	muted bool
}

func (a *recordingAudio) Play(ch Channel)    { a.calls = append(a.calls, audioCall{"play", ch}) }
func (a *recordingAudio) Pause(ch Channel)   { a.calls = append(a.calls, audioCall{"pause", ch}) }
func (a *recordingAudio) Rewind(ch Channel)  { a.calls = append(a.calls, audioCall{"rewind", ch}) }
func (a *recordingAudio) Restart(ch Channel) { a.calls = append(a.calls, audioCall{"restart", ch}) }
func (a *recordingAudio) SetMuted(m bool)    { a.muted = m }

func (a *recordingAudio) count(op string, ch Channel) int {
	n := 0
	for _, c := range a.calls {
		if c.op == op && c.ch == ch {
			n++
		}
	}
	return n
}

func newTestState(t *testing.T, opts Options) (*State, *recordingAudio) {
	t.Helper()
	a := &recordingAudio{}
	opts.Audio = a
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(1))
	}
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(opts), a
}

func newRunningState(t *testing.T, opts Options) (*State, *recordingAudio) {
	t.Helper()
	s, a := newTestState(t, opts)
	s.Screen = ScreenRunning
	return s, a
}

func TestNewDefaults(t *testing.T) {
	s, _ := newTestState(t, Options{})

	if s.Screen != ScreenStart {
		t.Fatalf("screen = %v, want start", s.Screen)
	}
	if s.Width() != DefaultWidth || s.Height() != DefaultHeight {
		t.Fatalf("canvas = %vx%v, want %vx%v", s.Width(), s.Height(), DefaultWidth, DefaultHeight)
	}
	if s.Player.X != 375 || s.Player.Y != 525 {
		t.Fatalf("player at (%v,%v), want (375,525)", s.Player.X, s.Player.Y)
	}
	if s.Player.Lives != 3 || s.Player.Speed != 7 {
		t.Fatalf("lives=%d speed=%v, want 3 and 7", s.Player.Lives, s.Player.Speed)
	}
	if s.Level != 1 || s.TimeLeft != 60 || s.Score != 0 || s.Booster != BoosterCharges {
		t.Fatalf("level=%d time=%d score=%d booster=%d", s.Level, s.TimeLeft, s.Score, s.Booster)
	}
	if s.SessionID == "" {
		t.Fatal("expected a session id")
	}
}

func TestNewAppliesMutePreference(t *testing.T) {
	s, a := newTestState(t, Options{Muted: true})
	if !s.Muted || !a.muted {
		t.Fatalf("muted state=%v audio=%v, want both true", s.Muted, a.muted)
	}
}

func TestResetChangesSession(t *testing.T) {
	s, _ := newTestState(t, Options{})
	first := s.SessionID
	s.Reset()
	if s.SessionID == first {
		t.Fatalf("session id unchanged after reset: %s", first)
	}
}

func TestAdvanceStepsOncePerFrame(t *testing.T) {
	s, _ := newRunningState(t, Options{})
	for i := 0; i < 5; i++ {
		s.Advance(time.Second / 60)
	}
	if s.Frame != 5 {
		t.Fatalf("frame = %d, want 5", s.Frame)
	}
}
