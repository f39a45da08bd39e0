package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/kezhick/Depooper/internal/engine"
)

// DefaultFile is picked up from the working directory when present.
const DefaultFile = "depooper.yaml"

type Config struct {
	Player  PlayerConfig  `yaml:"player" json:"player"`
	RNG     RNGConfig     `yaml:"rng" json:"rng"`
	Work    WorkConfig    `yaml:"work" json:"work"`
	Storage StorageConfig `yaml:"storage" json:"storage"`
	Log     LogConfig     `yaml:"log" json:"log"`
}

type PlayerConfig struct {
	Name       string `yaml:"name" json:"name"`
	Difficulty string `yaml:"difficulty" json:"difficulty"`
}

type RNGConfig struct {
	// Seed 0 seeds from the clock.
	Seed uint64 `yaml:"seed" json:"seed"`
}

type WorkConfig struct {
	EventsPerShift int `yaml:"events_per_shift" json:"events_per_shift"`
}

type StorageConfig struct {
	// Path defaults to ~/.depooper.db when empty.
	Path string `yaml:"path" json:"path"`
	Slot string `yaml:"slot" json:"slot"`
}

type LogConfig struct {
	Level string `yaml:"level" json:"level"`
}

func Default() Config {
	return Config{
		Player:  PlayerConfig{Name: engine.DefaultName, Difficulty: string(engine.DefaultDifficulty)},
		Work:    WorkConfig{EventsPerShift: engine.DefaultShiftEvents},
		Storage: StorageConfig{Slot: "main"},
		Log:     LogConfig{Level: "warn"},
	}
}

// ApplyDefaults fills fields a partial file left empty.
func (c *Config) ApplyDefaults() {
	d := Default()
	if c.Player.Name == "" {
		c.Player.Name = d.Player.Name
	}
	if c.Player.Difficulty == "" {
		c.Player.Difficulty = d.Player.Difficulty
	}
	if c.Work.EventsPerShift == 0 {
		c.Work.EventsPerShift = d.Work.EventsPerShift
	}
	if c.Storage.Slot == "" {
		c.Storage.Slot = d.Storage.Slot
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}

// Load reads a YAML config file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r Config
	if err := yaml.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	r.ApplyDefaults()
	return &r, nil
}

// Resolve builds the effective configuration: .env, then the config file
// (explicit path, $DEPOOPER_CONFIG or ./depooper.yaml), then env overrides.
func Resolve(explicit string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	path := explicit
	if path == "" {
		path = os.Getenv("DEPOOPER_CONFIG")
	}
	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}

	cfg := Default()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		cfg = *loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the game cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if !engine.Difficulty(strings.ToLower(c.Player.Difficulty)).IsValid() {
		errs = append(errs, fmt.Errorf("player.difficulty: unknown mode %q", c.Player.Difficulty))
	}
	if c.Work.EventsPerShift <= 0 {
		errs = append(errs, fmt.Errorf("work.events_per_shift: must be positive, got %d", c.Work.EventsPerShift))
	}
	if strings.TrimSpace(c.Storage.Slot) == "" {
		errs = append(errs, errors.New("storage.slot: required"))
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	return errors.Join(errs...)
}

func (c *Config) Difficulty() engine.Difficulty {
	return engine.Difficulty(strings.ToLower(c.Player.Difficulty))
}

func (c *Config) SlogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelWarn, err
	}
	return l, nil
}

// NewLogger returns a text logger on w at the configured level.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := c.SlogLevel()
	if err != nil {
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
