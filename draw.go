package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"skyshooter/shooter"
)

var (
	fontFace = text.NewGoXFace(bitmapfont.Face)

	colorPanel   = color.RGBA{0x33, 0x33, 0x33, 0xff}
	colorButton  = color.RGBA{0xd3, 0x2f, 0x2f, 0xff}
	colorMute    = color.RGBA{0x80, 0x80, 0x80, 0xff}
	colorHitTint = color.RGBA{0x80, 0x60, 0x66, 0x80} // pink at 50%, premultiplied
)

const (
	bgSpeed    = 0.05
	strafeTilt = 0.2
)

// viewport scrolls two stacked copies of the background downwards.
type viewport struct {
	y1, y2 float64
	height float64
}

func newViewport(h float64) viewport {
	return viewport{y1: 0, y2: -h, height: h}
}

func (v *viewport) Move() {
	v.y1 += bgSpeed
	v.y2 += bgSpeed
	if v.y1 >= v.height {
		v.y1 = -v.height
	}
	if v.y2 >= v.height {
		v.y2 = -v.height
	}
}

type renderer struct {
	sprites  *sprites
	viewport viewport
}

func newRenderer(sp *sprites, h float64) *renderer {
	return &renderer{sprites: sp, viewport: newViewport(h)}
}

func (r *renderer) Draw(screen *ebiten.Image, s *shooter.State) {
	switch s.Screen {
	case shooter.ScreenStart:
		r.drawStart(screen, s)
	case shooter.ScreenRunning:
		r.drawRunning(screen, s)
	case shooter.ScreenGameOver:
		r.drawGameOver(screen, s)
	}
}

// --- Screens ---

func (r *renderer) drawStart(screen *ebiten.Image, s *shooter.State) {
	screen.Fill(colorPanel)
	cx, cy := s.Width()/2, s.Height()/2

	drawText(screen, "Start Game", cx, cy-80, 4, text.AlignCenter, color.White)
	drawButton(screen, s.StartButton(), colorButton, "Start", 2)

	label := "Mute"
	if s.Muted {
		label = "Unmute"
	}
	drawButton(screen, s.MuteButton(), colorMute, label, 1)

	if kb := r.sprites.keyboard; kb != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(cx-float64(kb.Bounds().Dx())/2, cy+60)
		screen.DrawImage(kb, op)
	}
	drawText(screen, "Arrows to move, Space to fire", cx, s.Height()-40, 1, text.AlignCenter, color.White)
}

func (r *renderer) drawGameOver(screen *ebiten.Image, s *shooter.State) {
	screen.Fill(colorPanel)
	cx, cy := s.Width()/2, s.Height()/2

	drawText(screen, "Game Over", cx, cy-70, 4, text.AlignCenter, color.White)
	drawText(screen, fmt.Sprintf("Final Score: %d", s.Score), cx, cy-10, 2, text.AlignCenter, color.White)
	drawButton(screen, s.TryAgainButton(), colorButton, "Try Again", 2)
}

func (r *renderer) drawRunning(screen *ebiten.Image, s *shooter.State) {
	screen.Clear()
	r.drawBackground(screen, s.Width(), s.Height())

	for _, b := range s.Player.Bullets {
		drawSprite(screen, r.sprites.bullet, b.X, b.Y, shooter.BulletWidth, shooter.BulletHeight, 0)
	}
	for _, e := range s.Enemies {
		drawSprite(screen, r.sprites.enemy, e.X, e.Y, shooter.EnemySize, shooter.EnemySize, 0)
	}
	r.drawPlayer(screen, s)
	drawHUD(screen, s)
}

func (r *renderer) drawBackground(screen *ebiten.Image, w, h float64) {
	bg := r.sprites.background
	for _, y := range []float64{r.viewport.y1, r.viewport.y2} {
		drawSprite(screen, bg, 0, y, w, h, 0)
	}
}

func (r *renderer) drawPlayer(screen *ebiten.Image, s *shooter.State) {
	p := s.Player
	tilt := 0.0
	if p.Moving.Right {
		tilt = -strafeTilt
	} else if p.Moving.Left {
		tilt = strafeTilt
	}
	drawSprite(screen, r.sprites.player, p.X, p.Y, shooter.PlayerSize, shooter.PlayerSize, tilt)

	if s.Hit {
		vector.DrawFilledRect(screen, float32(p.X), float32(p.Y),
			shooter.PlayerSize, shooter.PlayerSize, colorHitTint, false)
	}
}

func drawHUD(screen *ebiten.Image, s *shooter.State) {
	drawLabel(screen, fmt.Sprintf("Level: %d", s.Level), 20, 10)
	drawLabel(screen, fmt.Sprintf("%ds", s.TimeLeft), 150, 10)
	drawLabel(screen, fmt.Sprintf("Boost: %d", s.Booster), 230, 10)
	drawLabel(screen, fmt.Sprintf("Score: %d", s.Score), s.Width()-100, 10)

	for i := 0; i < s.Player.Lives; i++ {
		drawText(screen, "♥", s.Width()-30*float64(i+1), 34, 1.5, text.AlignStart, color.RGBA{255, 80, 80, 255})
	}
}

// --- Primitives ---

// drawSprite stretches img over a w x h box at (x, y). tilt shears the box
// horizontally like a canvas skew transform.
func drawSprite(dst, img *ebiten.Image, x, y, w, h, tilt float64) {
	if img == nil {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	if tilt != 0 {
		op.GeoM.Skew(math.Atan(tilt), 0)
	}
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

func drawText(dst *ebiten.Image, str string, x, y, scale float64, align text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = align
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, str, fontFace, op)
}

// drawLabel draws white text on a black box, padded by 5px.
func drawLabel(dst *ebiten.Image, str string, x, y float64) {
	const pad = 5
	w := text.Advance(str, fontFace)
	h := fontFace.Metrics().HAscent + fontFace.Metrics().HDescent
	vector.DrawFilledRect(dst, float32(x-pad), float32(y-pad), float32(w+2*pad), float32(h+2*pad), color.Black, false)
	drawText(dst, str, x, y, 1, text.AlignStart, color.White)
}

func drawButton(dst *ebiten.Image, r shooter.Rect, fill color.Color, label string, scale float64) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fill, false)
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(r.X+r.W/2, r.Y+r.H/2)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, label, fontFace, op)
}
