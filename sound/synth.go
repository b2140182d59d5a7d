package sound

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

type oscillator struct {
	freq, sweep float64 // Hz, Hz per second
	phase       float64
	pos, total  int
	wave        Wave
	rate        beep.SampleRate
	rng         *rand.Rand
}

// Tone returns a finite oscillator. sweep bends the pitch linearly over time.
func Tone(freq, sweep float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:  freq,
		sweep: sweep,
		total: rate.N(d),
		wave:  wave,
		rate:  rate,
		rng:   rand.New(rand.NewSource(int64(freq*1000) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	if o.pos >= o.total {
		return 0, false
	}
	for i := range samples {
		if o.pos >= o.total {
			return i, true
		}
		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		case WaveNoise:
			v = o.rng.Float64()*2 - 1
		}
		samples[i][0], samples[i][1] = v, v

		f := o.freq + o.sweep*float64(o.pos)/float64(o.rate)
		o.phase += f / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over its last release.
type envelope struct {
	s                    beep.Streamer
	pos, total, att, rel int
}

func Envelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{s: s, total: rate.N(d), att: rate.N(attack), rel: rate.N(release)}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.s.Stream(samples)
	for i := 0; i < n; i++ {
		g := 1.0
		if e.att > 0 && e.pos < e.att {
			g = float64(e.pos) / float64(e.att)
		}
		if left := e.total - e.pos; e.rel > 0 && left < e.rel {
			g = math.Max(0, float64(left)/float64(e.rel))
		}
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// Gain scales a stream linearly; 0 silences it.
func Gain(s beep.Streamer, g float64) beep.Streamer {
	if g <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(g)}
}

const (
	fireDuration    = 90 * time.Millisecond
	destroyDuration = 220 * time.Millisecond
	noteDuration    = 250 * time.Millisecond
)

// FireEffect is a short descending zap.
func FireEffect(rate beep.SampleRate) beep.Streamer {
	osc := Tone(1200, -6000, fireDuration, WaveSquare, rate)
	return Gain(Envelope(osc, fireDuration, 5*time.Millisecond, 40*time.Millisecond, rate), 0.25)
}

// DestroyEffect is a noise burst over a low thump.
func DestroyEffect(rate beep.SampleRate) beep.Streamer {
	noise := Envelope(Tone(0, 0, destroyDuration, WaveNoise, rate), destroyDuration, 0, 180*time.Millisecond, rate)
	thump := Envelope(Tone(110, -200, destroyDuration, WaveSine, rate), destroyDuration, 0, 150*time.Millisecond, rate)
	mix := beep.Mix(Gain(noise, 0.5), Gain(thump, 0.8))
	return Gain(beep.Take(rate.N(destroyDuration), mix), 0.4)
}

// musicNotes is one bar of the fallback background loop, in Hz.
var musicNotes = []float64{220, 261.63, 329.63, 261.63, 196, 246.94, 293.66, 246.94}

// MusicLoop is one bar of a soft arpeggio, meant to be played on repeat.
func MusicLoop(rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(musicNotes))
	for _, f := range musicNotes {
		osc := Tone(f, 0, noteDuration, WaveSine, rate)
		notes = append(notes, Envelope(osc, noteDuration, 10*time.Millisecond, 120*time.Millisecond, rate))
	}
	return Gain(beep.Seq(notes...), 0.15)
}

// Render drains s into interleaved 16-bit little-endian stereo PCM. At most
// max frames are read; max <= 0 means until the stream ends.
func Render(s beep.Streamer, max int) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	frames := 0
	for max <= 0 || frames < max {
		chunk := buf
		if max > 0 && max-frames < len(chunk) {
			chunk = chunk[:max-frames]
		}
		n, ok := s.Stream(chunk)
		for i := 0; i < n; i++ {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(chunk[i][0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(chunk[i][1])))
		}
		frames += n
		if !ok || n == 0 {
			break
		}
	}
	return out
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}
