// Package config loads the starfield configuration: built-in defaults, then an
// optional TOML file, then a .env file and STARFIELD_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/leterax/go-starfield/pkg/audio"
	"github.com/leterax/go-starfield/pkg/game"
	"github.com/leterax/go-starfield/pkg/render"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "STARFIELD_"

// Config is the complete runtime configuration
type Config struct {
	Window render.Settings `toml:"window"`
	Game   game.Settings   `toml:"game"`
	Audio  audio.Settings  `toml:"audio"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Window: render.DefaultSettings(),
		Game:   game.DefaultSettings(),
		Audio:  audio.DefaultSettings(),
	}
}

// Load builds the configuration. path names a TOML file and envFile a .env
// file; either may be empty. A missing envFile is not an error so the default
// ".env" can always be passed.
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return cfg, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
		}
	}

	if envFile != "" {
		// Variables already set in the environment take precedence.
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks every section
func (c Config) Validate() error {
	if err := c.Window.Validate(); err != nil {
		return err
	}
	if err := c.Game.Validate(); err != nil {
		return err
	}
	return c.Audio.Validate()
}

// Write encodes the configuration as TOML
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// applyEnv overrides fields from STARFIELD_* variables
func (c *Config) applyEnv() error {
	overrides := []struct {
		name  string
		apply func(string) error
	}{
		{"WIDTH", intVar(&c.Window.Width)},
		{"HEIGHT", intVar(&c.Window.Height)},
		{"VSYNC", boolVar(&c.Window.VSync)},
		{"SEED", int64Var(&c.Game.Seed)},
		{"COLLECTIBLES", intVar(&c.Game.Collectibles)},
		{"AUDIO_ENABLED", boolVar(&c.Audio.Enabled)},
		{"VOLUME", floatVar(&c.Audio.Volume)},
	}

	for _, o := range overrides {
		v, ok := os.LookupEnv(EnvPrefix + o.name)
		if !ok || v == "" {
			continue
		}
		if err := o.apply(v); err != nil {
			return fmt.Errorf("invalid %s%s=%q: %w", EnvPrefix, o.name, v, err)
		}
	}
	return nil
}

func intVar(dst *int) func(string) error {
	return func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*dst = n
		return nil
	}
}

func boolVar(dst *bool) func(string) error {
	return func(v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*dst = b
		return nil
	}
}

func int64Var(dst *int64) func(string) error {
	return func(v string) error {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return err
		}
		*dst = n
		return nil
	}
}

func floatVar(dst *float64) func(string) error {
	return func(v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*dst = f
		return nil
	}
}
