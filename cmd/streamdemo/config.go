// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix is prepended to every environment variable override, for
// example STREAMDEMO_LOG_LEVEL.
const envPrefix = "STREAMDEMO"

// Config drives the demonstration pipeline.
type Config struct {
	From      int     `mapstructure:"from"`
	To        int     `mapstructure:"to"`
	Limit     int     `mapstructure:"limit"`
	Skip      int     `mapstructure:"skip"`
	Rate      float64 `mapstructure:"rate"` // Elements per second; 0 disables.
	LogLevel  string  `mapstructure:"log-level"`
	LogFormat string  `mapstructure:"log-format"`
}

// Validate checks the ranges of the configured values.
func (c *Config) Validate() error {
	var errs []error
	if c.To < c.From {
		errs = append(errs, fmt.Errorf("to (%d) must not be less than from (%d)", c.To, c.From))
	}
	if c.Limit < 0 {
		errs = append(errs, fmt.Errorf("limit must not be negative: %d", c.Limit))
	}
	if c.Skip < 0 {
		errs = append(errs, fmt.Errorf("skip must not be negative: %d", c.Skip))
	}
	if c.Rate < 0 {
		errs = append(errs, fmt.Errorf("rate must not be negative: %g", c.Rate))
	}
	return errors.Join(errs...)
}

// loadConfig parses the flags, overlays STREAMDEMO_* environment
// variables, and validates the result.
func loadConfig(args []string) (*Config, error) {
	flags := pflag.NewFlagSet("streamdemo", pflag.ContinueOnError)
	flags.Int("from", 1, "first value of the source range")
	flags.Int("to", 100, "last value of the source range")
	flags.Int("limit", 10, "maximum number of values to collect")
	flags.Int("skip", 0, "number of even values to skip")
	flags.Float64("rate", 0, "maximum values per second; 0 disables throttling")
	flags.String("log-level", "info", "log level")
	flags.String("log-format", "console", "log format: console or json")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
