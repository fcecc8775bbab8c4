// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
)

var (
	// ErrReadConfig is returned when the config file cannot be read.
	ErrReadConfig = errors.New("failed to read config file")
	// ErrParseConfig is returned when the config file is not valid YAML.
	ErrParseConfig = errors.New("failed to parse config file")
	// ErrInvalidConfig wraps every validation problem.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// FsFactory returns the file system configuration is read from.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Config holds the settings of a synthesizer run.
type Config struct {
	Method          string        `yaml:"method"`
	EvaluationModel string        `yaml:"evaluation_model"`
	Embedder        string        `yaml:"embedder,omitempty"`
	MaxGenerations  int           `yaml:"max_generations"`
	UseCase         string        `yaml:"use_case"`
	GenerationDelay time.Duration `yaml:"generation_delay"`
	TelemetryFile   string        `yaml:"telemetry_file,omitempty"`
	Transient       bool          `yaml:"transient"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Method:          "default",
		EvaluationModel: "gpt-4o",
		MaxGenerations:  10,
		UseCase:         "QA",
		GenerationDelay: 200 * time.Millisecond,
		Transient:       true,
	}
}

// Load reads path over Default(). An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := afero.ReadFile(FsFactory(), path)
	if err != nil {
		return cfg, fmt.Errorf("%w %s: %w", ErrReadConfig, path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w %s: %w", ErrParseConfig, path, err)
	}

	return cfg, nil
}

// Validate reports every problem with c at once.
func (c Config) Validate() error {
	var result *multierror.Error

	if c.Method == "" {
		result = multierror.Append(result, errors.New("method must not be empty"))
	}

	if c.EvaluationModel == "" {
		result = multierror.Append(result, errors.New("evaluation_model must not be empty"))
	}

	if c.MaxGenerations < 1 {
		result = multierror.Append(result, fmt.Errorf("max_generations must be at least 1, got %d", c.MaxGenerations))
	}

	if c.GenerationDelay < 0 {
		result = multierror.Append(result, fmt.Errorf("generation_delay must not be negative, got %s", c.GenerationDelay))
	}

	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// YAML renders c as a YAML document.
func (c Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
