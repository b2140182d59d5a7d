// Package sound plays the game's three audio channels through ebiten's audio
// package. Missing or undecodable assets are replaced by synthesized effects.
package sound

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"

	"skyshooter/shooter"
)

// SampleRate is the rate the audio context and synthesized effects run at.
const SampleRate = 44100

type track struct {
	ch       shooter.Channel
	file     string
	loop     bool
	fallback func(beep.SampleRate) beep.Streamer
}

var tracks = []track{
	{shooter.ChannelMusic, "bg.mp3", true, MusicLoop},
	{shooter.ChannelFire, "shoot.mp3", false, FireEffect},
	{shooter.ChannelDestroy, "enemy.mp3", false, DestroyEffect},
}

// Mixer implements shooter.Audio. A nil player for a channel makes every call
// on that channel a no-op.
type Mixer struct {
	players map[shooter.Channel]*audio.Player
	volume  float64
	muted   bool
	log     *slog.Logger
}

// New loads every channel from dir. With a nil context the mixer stays
// silent.
func New(ctx *audio.Context, dir string, volume float64, logger *slog.Logger) *Mixer {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Mixer{
		players: make(map[shooter.Channel]*audio.Player, len(tracks)),
		volume:  volume,
		log:     logger.With("component", "sound"),
	}
	if ctx == nil {
		m.log.Warn("no audio context, running silent")
		return m
	}

	for _, t := range tracks {
		p, err := loadTrack(ctx, filepath.Join(dir, t.file), t.loop)
		if err != nil {
			m.log.Warn("audio asset unavailable, using synthesized fallback",
				"channel", t.ch.String(), "err", err)
			p, err = synthTrack(ctx, t)
		}
		if err != nil {
			m.log.Error("audio channel disabled", "channel", t.ch.String(), "err", err)
			continue
		}
		p.SetVolume(volume)
		m.players[t.ch] = p
	}
	return m
}

func loadTrack(ctx *audio.Context, path string, loop bool) (*audio.Player, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	stream, err := mp3.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	var src io.Reader = stream
	if loop {
		src = audio.NewInfiniteLoop(stream, stream.Length())
	}
	return ctx.NewPlayer(src)
}

func synthTrack(ctx *audio.Context, t track) (*audio.Player, error) {
	pcm := Render(t.fallback(beep.SampleRate(ctx.SampleRate())), 0)
	if len(pcm) == 0 {
		return nil, fmt.Errorf("synthesized %s track is empty", t.ch)
	}
	if t.loop {
		return ctx.NewPlayer(audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm))))
	}
	return ctx.NewPlayerFromBytes(pcm), nil
}

func (m *Mixer) Play(ch shooter.Channel) {
	if p := m.players[ch]; p != nil {
		p.Play()
	}
}

func (m *Mixer) Pause(ch shooter.Channel) {
	if p := m.players[ch]; p != nil {
		p.Pause()
	}
}

func (m *Mixer) Rewind(ch shooter.Channel) {
	if p := m.players[ch]; p != nil {
		if err := p.SetPosition(0); err != nil {
			m.log.Warn("rewind failed", "channel", ch.String(), "err", err)
		}
	}
}

func (m *Mixer) Restart(ch shooter.Channel) {
	m.Rewind(ch)
	m.Play(ch)
}

func (m *Mixer) SetMuted(muted bool) {
	m.muted = muted
	v := m.volume
	if muted {
		v = 0
	}
	for _, p := range m.players {
		p.SetVolume(v)
	}
}

func (m *Mixer) Muted() bool { return m.muted }

// Close stops and releases every player.
func (m *Mixer) Close() error {
	var first error
	for ch, p := range m.players {
		p.Pause()
		if err := p.Close(); err != nil && first == nil {
			first = fmt.Errorf("close %s: %w", ch, err)
		}
		delete(m.players, ch)
	}
	return first
}
