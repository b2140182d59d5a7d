package shooter

import "time"

const (
	BaseSpawnInterval = 2 * time.Second
	LevelInterval     = 60 * time.Second
	CountdownInterval = time.Second
)

// Ticker fires once per Period of accumulated time. Leftover time carries
// into the next Advance, so a long frame may fire several times.
type Ticker struct {
	Period  time.Duration
	elapsed time.Duration
}

// Advance adds dt and returns how many periods completed.
func (t *Ticker) Advance(dt time.Duration) int {
	if t.Period <= 0 || dt <= 0 {
		return 0
	}
	t.elapsed += dt
	n := int(t.elapsed / t.Period)
	t.elapsed -= time.Duration(n) * t.Period
	return n
}

func (t *Ticker) Reset() {
	t.elapsed = 0
}

// SpawnInterval is the enemy spawn cadence at level.
func SpawnInterval(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	return BaseSpawnInterval / time.Duration(level)
}
