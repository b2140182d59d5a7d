package sound

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"skyshooter/shooter"
)

const rate = beep.SampleRate(SampleRate)

func TestRenderEffectLengths(t *testing.T) {
	tests := []struct {
		name string
		s    beep.Streamer
		d    time.Duration
	}{
		{"fire", FireEffect(rate), fireDuration},
		{"destroy", DestroyEffect(rate), destroyDuration},
		{"music", MusicLoop(rate), noteDuration * time.Duration(len(musicNotes))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pcm := Render(tt.s, 0)
			if want := rate.N(tt.d) * 4; len(pcm) != want {
				t.Fatalf("pcm bytes = %d, want %d", len(pcm), want)
			}
		})
	}
}

func TestRenderRespectsMax(t *testing.T) {
	pcm := Render(Tone(440, 0, time.Second, WaveSine, rate), 1000)
	if len(pcm) != 4000 {
		t.Fatalf("pcm bytes = %d, want 4000", len(pcm))
	}
}

func TestRenderSquareFullScale(t *testing.T) {
	pcm := Render(Tone(100, 0, 10*time.Millisecond, WaveSquare, rate), 0)
	first := int16(binary.LittleEndian.Uint16(pcm[0:2]))
	if first != 32767 {
		t.Fatalf("first sample = %d, want 32767", first)
	}
	// left and right carry the same mono signal
	for i := 0; i+4 <= len(pcm); i += 4 {
		if pcm[i] != pcm[i+2] || pcm[i+1] != pcm[i+3] {
			t.Fatalf("channels differ at frame %d", i/4)
		}
	}
}

func TestGainSilences(t *testing.T) {
	pcm := Render(Gain(Tone(440, 0, 20*time.Millisecond, WaveSaw, rate), 0), 0)
	if len(pcm) == 0 {
		t.Fatal("expected samples")
	}
	for i, b := range pcm {
		if b != 0 {
			t.Fatalf("byte %d = %d, want silence", i, b)
		}
	}
}

func TestEnvelopeStartsSilent(t *testing.T) {
	s := Envelope(Tone(100, 0, 50*time.Millisecond, WaveSquare, rate), 50*time.Millisecond, 10*time.Millisecond, 0, rate)
	pcm := Render(s, 1)
	if v := int16(binary.LittleEndian.Uint16(pcm[0:2])); v != 0 {
		t.Fatalf("first sample = %d, want 0 under the attack ramp", v)
	}
}

// Without an audio device the mixer must degrade to silence without panicking.
func TestMixerWithoutContext(t *testing.T) {
	m := New(nil, t.TempDir(), 1, nil)

	for _, ch := range []shooter.Channel{shooter.ChannelMusic, shooter.ChannelFire, shooter.ChannelDestroy} {
		m.Play(ch)
		m.Restart(ch)
		m.Pause(ch)
		m.Rewind(ch)
	}
	m.SetMuted(true)
	if !m.Muted() {
		t.Fatal("mute flag not kept")
	}
	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
