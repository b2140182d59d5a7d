package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"skyshooter/shooter"
)

type binding struct {
	key    ebiten.Key
	action shooter.Key
}

var bindings = []binding{
	{ebiten.KeyArrowUp, shooter.KeyUp},
	{ebiten.KeyArrowDown, shooter.KeyDown},
	{ebiten.KeyArrowLeft, shooter.KeyLeft},
	{ebiten.KeyArrowRight, shooter.KeyRight},
	{ebiten.KeySpace, shooter.KeyFire},
}

// keyboard turns ebiten's polled input into discrete key and click events.
// Ebiten reports held keys rather than OS repeats, so a held fire key is
// re-sent every repeatInterval ticks once it has been down repeatDelay ticks.
type keyboard struct {
	repeatDelay    int
	repeatInterval int
	touches        []ebiten.TouchID
}

func (k *keyboard) Update(s *shooter.State) {
	for _, b := range bindings {
		switch {
		case inpututil.IsKeyJustPressed(b.key):
			s.KeyDown(b.action)
		case b.action == shooter.KeyFire && k.repeating(b.key):
			s.KeyDown(b.action)
		}
		if inpututil.IsKeyJustReleased(b.key) {
			s.KeyUp(b.action)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		s.Click(float64(x), float64(y))
	}
	k.touches = inpututil.AppendJustPressedTouchIDs(k.touches[:0])
	for _, id := range k.touches {
		x, y := ebiten.TouchPosition(id)
		s.Click(float64(x), float64(y))
	}
}

func (k *keyboard) repeating(key ebiten.Key) bool {
	if k.repeatInterval <= 0 {
		return false
	}
	return isRepeatTick(inpututil.KeyPressDuration(key), k.repeatDelay, k.repeatInterval)
}

// isRepeatTick reports whether a key held for d ticks should repeat now.
func isRepeatTick(d, delay, interval int) bool {
	if interval <= 0 || d <= delay {
		return false
	}
	return (d-delay)%interval == 0
}
