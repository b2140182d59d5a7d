package main

import (
	"bytes"
	"image"
	"image/color"
	_ "image/png"
	"log/slog"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/examples/resources/images"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	rkeyboard "github.com/hajimehoshi/ebiten/v2/examples/resources/images/keyboard"

	"skyshooter/shooter"
)

type sprites struct {
	player     *ebiten.Image
	enemy      *ebiten.Image
	bullet     *ebiten.Image
	background *ebiten.Image
	keyboard   *ebiten.Image
}

// loadSprites reads the game art from dir. Anything missing is replaced so
// the game stays playable without assets.
func loadSprites(dir string, w, h int, logger *slog.Logger) *sprites {
	log := logger.With("component", "assets")
	return &sprites{
		player:     loadImage(log, filepath.Join(dir, "player.png"), shooter.PlayerSize, shooter.PlayerSize, color.RGBA{255, 0, 0, 255}),
		enemy:      loadImage(log, filepath.Join(dir, "enemy.png"), shooter.EnemySize, shooter.EnemySize, color.RGBA{0, 0, 255, 255}),
		bullet:     loadImage(log, filepath.Join(dir, "bullet.png"), shooter.BulletWidth, shooter.BulletHeight, color.RGBA{255, 255, 0, 255}),
		background: loadBackground(log, filepath.Join(dir, "bg.png"), w, h),
		keyboard:   decodeEmbedded(log, "keyboard", rkeyboard.Keyboard_png),
	}
}

func loadImage(log *slog.Logger, path string, w, h float64, fallback color.Color) *ebiten.Image {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err == nil {
		return img
	}
	log.Warn("image unavailable, drawing a plain box", "path", path, "err", err)
	img = ebiten.NewImage(int(w), int(h))
	img.Fill(fallback)
	return img
}

// loadBackground falls back to ebiten's example tile repeated over the canvas.
func loadBackground(log *slog.Logger, path string, w, h int) *ebiten.Image {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err == nil {
		return img
	}
	log.Warn("background unavailable, tiling the default", "path", path, "err", err)

	bg := ebiten.NewImage(w, h)
	bg.Fill(color.RGBA{0x10, 0x10, 0x20, 0xff})
	tile := decodeEmbedded(log, "tile", images.Tile_png)
	if tile == nil {
		return bg
	}
	tw, th := tile.Bounds().Dx(), tile.Bounds().Dy()
	for y := 0; y < h; y += th {
		for x := 0; x < w; x += tw {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x), float64(y))
			op.ColorScale.ScaleAlpha(0.35)
			bg.DrawImage(tile, op)
		}
	}
	return bg
}

func decodeEmbedded(log *slog.Logger, name string, data []byte) *ebiten.Image {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		log.Warn("embedded image failed to decode", "name", name, "err", err)
		return nil
	}
	return ebiten.NewImageFromImage(img)
}
