package config

import (
	"fmt"
	"os"
	"strconv"
)

// ApplyEnv overrides file settings from DEPOOPER_* variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("DEPOOPER_DB"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("DEPOOPER_SLOT"); v != "" {
		c.Storage.Slot = v
	}
	if v := os.Getenv("DEPOOPER_DIFFICULTY"); v != "" {
		c.Player.Difficulty = v
	}
	if v := os.Getenv("DEPOOPER_NAME"); v != "" {
		c.Player.Name = v
	}
	if v := os.Getenv("DEPOOPER_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("DEPOOPER_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("DEPOOPER_SEED: %w", err)
		}
		c.RNG.Seed = seed
	}
	return nil
}
