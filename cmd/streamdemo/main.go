// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Command streamdemo exercises the stream package with a handful of
// canned pipelines and one configurable pipeline.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	log := newLogger(cfg, out)

	for _, sc := range scenarios() {
		log.Info().
			Str("scenario", sc.Name).
			Interface("result", sc.Run()).
			Msg("scenario complete")
	}

	log.Debug().
		Int("from", cfg.From).
		Int("to", cfg.To).
		Int("skip", cfg.Skip).
		Int("limit", cfg.Limit).
		Float64("rate", cfg.Rate).
		Msg("running configured pipeline")
	values, err := runPipeline(ctx, cfg)
	if err != nil {
		log.Warn().Err(err).Ints("partial", values).Msg("pipeline ended early")
		return fmt.Errorf("pipeline: %w", err)
	}
	log.Info().Ints("values", values).Msg("pipeline complete")
	return nil
}
