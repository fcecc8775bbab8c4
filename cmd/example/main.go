// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Command example drives both progress scopes from library code: a spinner
// around model loading, then a synthesizer run sharing one bar across two
// batches. Interrupt twice to cancel.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/matt-FFFFFF/evalprogress/internal/ctxlog"
	"github.com/matt-FFFFFF/evalprogress/internal/progress"
	"github.com/matt-FFFFFF/evalprogress/internal/signalbroker"
	"github.com/matt-FFFFFF/evalprogress/internal/simulate"
	"github.com/matt-FFFFFF/evalprogress/internal/telemetry"
)

const (
	batches   = 2
	batchSize = 5
	delay     = 150 * time.Millisecond
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	ctxlog.LevelVar.Set(slog.LevelInfo)

	sigCh := signalbroker.New(ctx)

	go signalbroker.Watch(ctx, sigCh, cancel)

	reporter := telemetry.NewChannelReporter(ctx, batches)
	reporter.Listen(telemetry.NewLogListener(ctx))

	ctx = telemetry.NewContext(ctx, telemetry.NewClientFromEnv(reporter))

	err := run(ctx)

	reporter.Close()

	if err != nil {
		fmt.Fprintln(os.Stderr, err) // nolint:errcheck
		cancel()
		os.Exit(1) // nolint:gocritic
	}
}

func run(ctx context.Context) error {
	err := progress.RunWithSpinner(ctx, "Loading gpt-4", func(ctx context.Context) error {
		return simulate.Sleep(ctx, time.Second)
	}, progress.WithTransient(false))
	if err != nil {
		return err
	}

	base := progress.SynthesizerRun{
		Method:          "evolution",
		EvaluationModel: "gpt-4",
		MaxGenerations:  batches * batchSize,
	}

	// One bar spans every batch, so each run borrows it.
	bar := progress.NewBar(progress.BarConfig{
		Max:         base.MaxGenerations,
		Description: base.Description(),
		Writer:      os.Stderr,
	})
	defer bar.Close() // nolint:errcheck

	gen := simulate.Generator{Method: base.Method, Delay: delay}

	for i := range batches {
		batch := base
		batch.MaxGenerations = batchSize
		batch.Bar = bar

		err := progress.RunWithSynthesizerProgress(ctx, batch, func(ctx context.Context, bar progress.Bar) error {
			_, err := gen.Generate(ctx, bar, batch.MaxGenerations)
			return err
		})
		if err != nil {
			return fmt.Errorf("batch %d: %w", i+1, err)
		}
	}

	return nil
}
