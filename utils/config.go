package utils

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/mhertz/textlife/model"
)

// Config holds the simulation parameters
type Config struct {
	Width       int   `json:"width"`
	Height      int   `json:"height"`
	Limit       int   `json:"limit"`
	Iterations  uint  `json:"iterations"`
	Seed        int64 `json:"seed"`
	UseParallel bool  `json:"use_parallel"`
	Workers     int   `json:"workers"`
	UseFFT      bool  `json:"use_fft"`
	Interactive bool  `json:"interactive"`
}

// DefaultConfig returns the classic 40x25 text-mode setup: limit 23000
// gives a pleasant starting density, 42 generations by default. Seed 0
// means seed from the clock.
func DefaultConfig() Config {
	return Config{
		Width:       40,
		Height:      25,
		Limit:       23000,
		Iterations:  42,
		Seed:        0,
		UseParallel: false,
		Workers:     0,
		UseFFT:      false,
		Interactive: true,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate checks the configuration against the ranges the simulation
// accepts.
func (c Config) Validate() error {
	if c.Width < 3 || c.Height < 3 {
		return errors.Errorf("[Validate] grid must be at least 3x3, got %dx%d", c.Width, c.Height)
	}
	if c.Limit < 0 || c.Limit > model.RandMax {
		return errors.Errorf("[Validate] limit must be in [0..%d], got %d", model.RandMax, c.Limit)
	}
	if c.Workers < 0 {
		return errors.Errorf("[Validate] workers must be non-negative, got %d", c.Workers)
	}
	return nil
}
