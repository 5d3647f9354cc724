// SPDX-License-Identifier: MIT

// Package config loads the single typed configuration of antcover from YAML
// and validates it once at startup.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/antcover/colony"
	"github.com/katalvlaran/antcover/parallel"
	"github.com/katalvlaran/antcover/setcover"
	"github.com/katalvlaran/antcover/store"
)

var validate = validator.New()

// Config is the whole configuration of a solve.
type Config struct {
	Preprocess PreprocessConfig `yaml:"preprocess"`
	Colony     colony.Config    `yaml:"colony"`
	Run        RunConfig        `yaml:"run"`
	Log        LogConfig        `yaml:"log"`
	Store      StoreConfig      `yaml:"store"`
}

// PreprocessConfig bounds instance preprocessing.
type PreprocessConfig struct {
	// TimeLimit of the dominance scan; 0 means unlimited.
	TimeLimit time.Duration `yaml:"time_limit" validate:"gte=0"`

	// Workers for parallel preprocessing; 0 means GOMAXPROCS.
	Workers int `yaml:"workers" validate:"gte=0"`
}

// RunConfig controls the parallel coordinator.
type RunConfig struct {
	Runs        int           `yaml:"runs" validate:"gte=1"`
	Concurrency int           `yaml:"concurrency" validate:"gte=0"`
	Deadline    time.Duration `yaml:"deadline" validate:"gte=0"`
	Seed        int64         `yaml:"seed"`
}

// LogConfig selects the logrus level and formatter.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn warning error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// StoreConfig enables the best-solution store.
type StoreConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Path       string `yaml:"path" validate:"required_if=Enabled true InMemory false"`
	InMemory   bool   `yaml:"in_memory"`
	SyncWrites bool   `yaml:"sync_writes"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Preprocess: PreprocessConfig{
			TimeLimit: setcover.DefaultPreprocessTimeLimit,
		},
		Colony: colony.DefaultConfig(),
		Run: RunConfig{
			Runs:     4,
			Deadline: 5 * time.Minute,
			Seed:     1,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Store: StoreConfig{
			Path: "antcover.db",
		},
	}
}

// Load reads path over Default() and validates the result. An empty path
// yields the validated defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %v: %w", path, err, setcover.ErrConfiguration)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every section; failures wrap setcover.ErrConfiguration.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid config field %s (%s): %w",
				verrs[0].Namespace(), verrs[0].Tag(), setcover.ErrConfiguration)
		}
		return fmt.Errorf("invalid config: %v: %w", err, setcover.ErrConfiguration)
	}

	return nil
}

// SetcoverOptions maps the preprocess section.
func (c Config) SetcoverOptions() setcover.Options {
	return setcover.Options{
		PreprocessTimeLimit: c.Preprocess.TimeLimit,
		Workers:             c.Preprocess.Workers,
	}
}

// ParallelOptions maps the run section.
func (c Config) ParallelOptions() parallel.Options {
	return parallel.Options{
		Runs:        c.Run.Runs,
		Concurrency: c.Run.Concurrency,
		Deadline:    c.Run.Deadline,
		Seed:        c.Run.Seed,
	}
}

// StoreOptions maps the store section.
func (c Config) StoreOptions() store.Config {
	return store.Config{
		Path:       c.Store.Path,
		InMemory:   c.Store.InMemory,
		SyncWrites: c.Store.SyncWrites,
	}
}
