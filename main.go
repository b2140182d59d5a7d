package main

import (
	"flag"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"skyshooter/config"
	"skyshooter/shooter"
	"skyshooter/sound"
)

var (
	configPath = flag.String("config", "", "path to a YAML config file")
	envPath    = flag.String("env", ".env", "path to a .env file with SKYSHOOTER_* settings")
	assetDir   = flag.String("assets", "", "directory holding images and sounds (overrides config)")
	muted      = flag.Bool("muted", false, "start with audio muted (overrides config)")
	scale      = flag.Float64("scale", 0, "window scale factor (overrides config)")
)

func main() {
	flag.Parse()

	if err := config.LoadEnvFile(*envPath); err != nil {
		log.Fatal(err)
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "assets":
			cfg.AssetDir = *assetDir
		case "muted":
			cfg.Muted = *muted
		case "scale":
			cfg.Scale = *scale
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	mixer := sound.New(audio.NewContext(sound.SampleRate), cfg.AssetDir, cfg.Volume, logger)
	defer func() {
		if err := mixer.Close(); err != nil {
			logger.Warn("closing audio", "err", err)
		}
	}()

	state := shooter.New(shooter.Options{
		Width:          float64(cfg.Width),
		Height:         float64(cfg.Height),
		FireCooldown:   cfg.FireCooldown,
		TimersAlwaysOn: cfg.TimersAlwaysOn,
		KeepOffscreen:  cfg.KeepOffscreen,
		Muted:          cfg.Muted,
		Audio:          mixer,
		Rand:           rand.New(rand.NewSource(seed)),
		Logger:         logger,
	})

	game := newGame(state,
		&keyboard{repeatDelay: cfg.FireRepeatDelay, repeatInterval: cfg.FireRepeatInterval},
		newRenderer(loadSprites(cfg.AssetDir, cfg.Width, cfg.Height, logger), float64(cfg.Height)),
		cfg.TPS,
	)

	ebiten.SetWindowSize(int(float64(cfg.Width)*cfg.Scale), int(float64(cfg.Height)*cfg.Scale))
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TPS)
	logger.Info("starting", "width", cfg.Width, "height", cfg.Height, "assets", cfg.AssetDir, "seed", seed)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func newLogger(cfg config.Config) *slog.Logger {
	lvl, _ := cfg.SlogLevel()
	opts := &slog.HandlerOptions{Level: lvl}
	var h slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stderr, opts)
	}
	return slog.New(h).With("app", "skyshooter")
}
