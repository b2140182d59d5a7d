package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"skyshooter/shooter"
)

// Game adapts the shooter session to ebiten's loop: input, then one frame of
// simulation per tick.
type Game struct {
	state *shooter.State
	input *keyboard
	view  *renderer
	frame time.Duration
}

func newGame(state *shooter.State, input *keyboard, view *renderer, tps int) *Game {
	return &Game{
		state: state,
		input: input,
		view:  view,
		frame: time.Second / time.Duration(tps),
	}
}

func (g *Game) Update() error {
	g.input.Update(g.state)
	if g.state.Screen == shooter.ScreenRunning {
		g.view.viewport.Move()
	}
	g.state.Advance(g.frame)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.view.Draw(screen, g.state)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.state.Width()), int(g.state.Height())
}
