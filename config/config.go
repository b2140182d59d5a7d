// Package config resolves game settings from defaults, an optional YAML file,
// a .env file and SKYSHOOTER_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const EnvPrefix = "SKYSHOOTER_"

type Config struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float64 `yaml:"scale"`
	TPS    int     `yaml:"tps"`
	Title  string  `yaml:"title"`

	AssetDir string  `yaml:"asset_dir"`
	Muted    bool    `yaml:"muted"`
	Volume   float64 `yaml:"volume"`

	// Frames between shots; 0 fires on every key-down.
	FireCooldown       int `yaml:"fire_cooldown"`
	// Held fire key repeats after FireRepeatDelay ticks, every
	// FireRepeatInterval ticks. A zero interval disables repeat.
	FireRepeatDelay    int `yaml:"fire_repeat_delay"`
	FireRepeatInterval int `yaml:"fire_repeat_interval"`

	TimersAlwaysOn bool `yaml:"timers_always_on"`
	KeepOffscreen  bool `yaml:"keep_offscreen"`

	// Seed for enemy placement; 0 seeds from the clock.
	Seed int64 `yaml:"seed"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

func Default() Config {
	return Config{
		Width:              800,
		Height:             600,
		Scale:              1,
		TPS:                60,
		Title:              "Sky Shooter",
		AssetDir:           "assets",
		Volume:             1,
		FireRepeatDelay:    30,
		FireRepeatInterval: 4,
		LogLevel:           "info",
		LogFormat:          "text",
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadEnvFile loads variables from a .env file without overriding ones
// already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// GetEnv returns the value of SKYSHOOTER_<name> and whether it was set.
func GetEnv(name string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + name)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}

// ApplyEnv overlays SKYSHOOTER_* variables onto c.
func (c *Config) ApplyEnv() error {
	ints := map[string]*int{
		"WIDTH":                &c.Width,
		"HEIGHT":               &c.Height,
		"TPS":                  &c.TPS,
		"FIRE_COOLDOWN":        &c.FireCooldown,
		"FIRE_REPEAT_DELAY":    &c.FireRepeatDelay,
		"FIRE_REPEAT_INTERVAL": &c.FireRepeatInterval,
	}
	for name, dst := range ints {
		if v, ok := GetEnv(name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
			}
			*dst = n
		}
	}

	floats := map[string]*float64{
		"SCALE":  &c.Scale,
		"VOLUME": &c.Volume,
	}
	for name, dst := range floats {
		if v, ok := GetEnv(name); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
			}
			*dst = f
		}
	}

	bools := map[string]*bool{
		"MUTED":            &c.Muted,
		"TIMERS_ALWAYS_ON": &c.TimersAlwaysOn,
		"KEEP_OFFSCREEN":   &c.KeepOffscreen,
	}
	for name, dst := range bools {
		if v, ok := GetEnv(name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
			}
			*dst = b
		}
	}

	if v, ok := GetEnv("SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", EnvPrefix, err)
		}
		c.Seed = n
	}
	if v, ok := GetEnv("TITLE"); ok {
		c.Title = v
	}
	if v, ok := GetEnv("ASSET_DIR"); ok {
		c.AssetDir = v
	}
	if v, ok := GetEnv("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := GetEnv("LOG_FORMAT"); ok {
		c.LogFormat = v
	}
	return nil
}

func (c Config) Validate() error {
	switch {
	case c.Width < 200 || c.Height < 200:
		return fmt.Errorf("canvas %dx%d too small, need at least 200x200", c.Width, c.Height)
	case c.Scale <= 0:
		return fmt.Errorf("scale must be positive, got %v", c.Scale)
	case c.TPS <= 0:
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	case c.Volume < 0 || c.Volume > 1:
		return fmt.Errorf("volume must be in [0,1], got %v", c.Volume)
	case c.FireCooldown < 0:
		return fmt.Errorf("fire_cooldown must not be negative, got %d", c.FireCooldown)
	case c.FireRepeatDelay < 0 || c.FireRepeatInterval < 0:
		return fmt.Errorf("fire repeat timings must not be negative")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be text or json, got %q", c.LogFormat)
	}
	return nil
}

func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}
