// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the variantanova configuration file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config controls which measurements are compared and where the report
// is written.
type Config struct {
	// Summary is the path of the measurement summary.
	Summary string `yaml:"summary" validate:"required"`
	// Output is the path of the results report.
	Output string `yaml:"output" validate:"required"`

	// Variants lists the page variants in report order.
	Variants []string `yaml:"variants" validate:"min=2,unique,dive,required"`
	// Metrics lists the metrics to compare.
	Metrics []string `yaml:"metrics" validate:"min=1,unique,dive,required"`

	// Backend is "exact" or "fallback".
	Backend string `yaml:"backend" validate:"oneof=exact fallback"`

	Alpha       float64 `yaml:"alpha" validate:"gt=0,lt=1"`
	StrongAlpha float64 `yaml:"strong_alpha" validate:"gt=0,ltefield=Alpha"`

	// Workers bounds the number of concurrent tests.
	Workers int `yaml:"workers" validate:"min=1,max=256"`

	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Summary:     "reports/summary.json",
		Output:      "reports/anova-results.txt",
		Variants:    []string{"A", "A'", "B", "B'", "C", "C'", "D", "D'"},
		Metrics:     []string{"LCP", "FCP"},
		Backend:     "exact",
		Alpha:       0.05,
		StrongAlpha: 0.01,
		Workers:     4,
		LogLevel:    "info",
	}
}

var validate = validator.New()

// Validate checks cfg for invalid values.
func (cfg *Config) Validate() error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, len(verrs))
			for i, fe := range verrs {
				msgs[i] = fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag())
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// Load reads the YAML file at path over the defaults. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read the config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	return cfg, nil
}

// Level returns the slog level named by cfg.LogLevel.
func (cfg *Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}
