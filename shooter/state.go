package shooter

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Options tune a session. Zero values fall back to the defaults noted per field.
type Options struct {
	Width, Height float64 // canvas size, default 800x600

	// FireCooldown is the minimum number of frames between shots. 0 leaves
	// firing uncapped, so every delivered key-down fires.
	FireCooldown int

	// TimersAlwaysOn keeps spawn, level-up and countdown running on the start
	// and game over screens too.
	TimersAlwaysOn bool

	// KeepOffscreen disables pruning of bullets past the top edge and enemies
	// past the bottom edge.
	KeepOffscreen bool

	Muted bool

	Audio  Audio
	Rand   *rand.Rand
	Logger *slog.Logger
}

const (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
)

// State is the whole mutable game: one value per window, mutated only from
// the frame loop.
type State struct {
	Screen  Screen
	Player  *Player
	Enemies []*Enemy

	Score    int
	Level    int
	TimeLeft int
	Booster  int

	Hit      bool
	HitTimer int

	Muted bool

	// SessionID changes on every reset and tags log lines.
	SessionID string
	// Frame counts update steps taken in the current session.
	Frame     int

	width, height float64
	opts          Options
	audio         Audio
	rng           *rand.Rand
	log           *slog.Logger

	spawn     Ticker
	levelUp   Ticker
	countdown Ticker
	lastFire  int
}

// New builds a session sitting on the start screen.
func New(opts Options) *State {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.Audio == nil {
		opts.Audio = Silent{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	s := &State{
		Screen:  ScreenStart,
		Muted:   opts.Muted,
		Booster: BoosterCharges,
		width:   opts.Width,
		height:  opts.Height,
		opts:    opts,
		audio:   opts.Audio,
		rng:     opts.Rand,
		log:     opts.Logger.With("component", "shooter"),
	}
	s.audio.SetMuted(s.Muted)
	s.Reset()
	return s
}

// Reset restores a fresh session. The screen, the mute preference and any
// remaining booster charges are kept.
func (s *State) Reset() {
	s.Player = NewPlayer(s.width, s.height)
	s.Enemies = nil
	s.Score = 0
	s.Level = 1
	s.TimeLeft = LevelSeconds
	s.Hit = false
	s.HitTimer = 0
	s.Frame = 0
	s.lastFire = -s.opts.FireCooldown

	s.spawn = Ticker{Period: SpawnInterval(s.Level)}
	s.levelUp = Ticker{Period: LevelInterval}
	s.countdown = Ticker{Period: CountdownInterval}

	s.SessionID = uuid.NewString()
	s.log.Info("session reset", "session", s.SessionID)
}

func (s *State) Width() float64  { return s.width }
func (s *State) Height() float64 { return s.height }

// Advance runs one frame: the periodic timers for dt, then the update step.
// Enemies spawned by the timers already move on that same frame.
func (s *State) Advance(dt time.Duration) {
	if s.Screen == ScreenRunning || s.opts.TimersAlwaysOn {
		s.runTimers(dt)
	}
	s.Step()
}

func (s *State) runTimers(dt time.Duration) {
	for n := s.countdown.Advance(dt); n > 0; n-- {
		if s.TimeLeft > 0 {
			s.TimeLeft--
		}
	}
	for n := s.levelUp.Advance(dt); n > 0; n-- {
		s.LevelUp()
	}
	for n := s.spawn.Advance(dt); n > 0; n-- {
		s.SpawnEnemy()
	}
}

// LevelUp raises the level by one up to MaxLevel and refills the countdown.
func (s *State) LevelUp() {
	if s.Level >= MaxLevel {
		return
	}
	s.Level++
	s.TimeLeft = LevelSeconds
	s.spawn.Period = SpawnInterval(s.Level)
	s.log.Info("level up", "session", s.SessionID, "level", s.Level)
}
