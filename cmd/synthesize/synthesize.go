// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package synthesize implements the synthesize command, a simulated golden
// generation run shown with the synthesizer progress bar.
package synthesize

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/matt-FFFFFF/evalprogress/internal/config"
	"github.com/matt-FFFFFF/evalprogress/internal/ctxlog"
	"github.com/matt-FFFFFF/evalprogress/internal/progress"
	"github.com/matt-FFFFFF/evalprogress/internal/simulate"
	"github.com/matt-FFFFFF/evalprogress/internal/telemetry"
	"github.com/matt-FFFFFF/evalprogress/internal/tui"
	"github.com/urfave/cli/v3"
)

const (
	configFlag         = "config"
	methodFlag         = "method"
	modelFlag          = "model"
	embedderFlag       = "embedder"
	maxGenerationsFlag = "max-generations"
	useCaseFlag        = "use-case"
	delayFlag          = "delay"
	tuiFlag            = "tui"
	telemetryFileFlag  = "telemetry-file"
	failAtFlag         = "fail-at"
	transientFlag      = "transient"
)

const telemetryBufferSize = 16

var (
	// ErrOpenTelemetryFile is returned when the telemetry file cannot be created.
	ErrOpenTelemetryFile = errors.New("failed to open telemetry file")
	// ErrWriteTelemetry is returned when events cannot be written to the telemetry file.
	ErrWriteTelemetry = errors.New("failed to write telemetry")
)

// TUIBarFactory creates the bar used with --tui.
var TUIBarFactory = func(ctx context.Context, total int, title string) progress.Bar {
	return tui.NewBar(ctx, total, title)
}

// SynthesizeCmd runs a simulated synthesizer.
var SynthesizeCmd = newCommand()

func newCommand() *cli.Command {
	return &cli.Command{
		Name:        "synthesize",
		Usage:       "Simulate generating goldens",
		Description: "Simulate a synthesizer run, showing a progress bar that advances once per generated golden.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      configFlag,
				Aliases:   []string{"c"},
				Usage:     "YAML configuration file",
				TakesFile: true,
				Sources:   cli.EnvVars("EVALPROGRESS_CONFIG"),
			},
			&cli.StringFlag{
				Name:    methodFlag,
				Usage:   "Generation method",
				Sources: cli.EnvVars("EVALPROGRESS_METHOD"),
			},
			&cli.StringFlag{
				Name:    modelFlag,
				Usage:   "Evaluation model",
				Sources: cli.EnvVars("EVALPROGRESS_MODEL"),
			},
			&cli.StringFlag{
				Name:    embedderFlag,
				Usage:   "Embedding model",
				Sources: cli.EnvVars("EVALPROGRESS_EMBEDDER"),
			},
			&cli.IntFlag{
				Name:    maxGenerationsFlag,
				Aliases: []string{"n"},
				Usage:   "Maximum number of goldens to generate",
				Sources: cli.EnvVars("EVALPROGRESS_MAX_GENERATIONS"),
			},
			&cli.StringFlag{
				Name:    useCaseFlag,
				Usage:   "Use case the goldens are generated for",
				Sources: cli.EnvVars("EVALPROGRESS_USE_CASE"),
			},
			&cli.DurationFlag{
				Name:    delayFlag,
				Usage:   "Time taken to generate one golden",
				Sources: cli.EnvVars("EVALPROGRESS_DELAY"),
			},
			&cli.BoolFlag{
				Name:  tuiFlag,
				Usage: "Draw the progress bar with the terminal UI",
			},
			&cli.BoolFlag{
				Name:    transientFlag,
				Usage:   "Erase the loading spinner when done",
				Sources: cli.EnvVars("EVALPROGRESS_TRANSIENT"),
			},
			&cli.StringFlag{
				Name:      telemetryFileFlag,
				Usage:     "Append telemetry events to this file as JSON lines",
				TakesFile: true,
				Sources:   cli.EnvVars("EVALPROGRESS_TELEMETRY_FILE"),
			},
			&cli.IntFlag{
				Name:  failAtFlag,
				Usage: "Fail at this generation, for testing error handling",
			},
		},
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String(configFlag))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	applyFlags(cmd, &cfg)

	if err := cfg.Validate(); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	goldens, err := synthesize(ctx, options{
		cfg:    cfg,
		tui:    cmd.Bool(tuiFlag),
		failAt: int(cmd.Int(failAtFlag)),
	})
	if err != nil {
		return cli.Exit(fmt.Sprintf("synthesis failed after %d goldens: %s", len(goldens), err), 1)
	}

	_, err = fmt.Fprintf(cmd.Root().Writer, "Generated %d goldens.\n", len(goldens))

	return err
}

// applyFlags overrides cfg with the flags that were set explicitly.
func applyFlags(cmd *cli.Command, cfg *config.Config) {
	if cmd.IsSet(methodFlag) {
		cfg.Method = cmd.String(methodFlag)
	}

	if cmd.IsSet(modelFlag) {
		cfg.EvaluationModel = cmd.String(modelFlag)
	}

	if cmd.IsSet(embedderFlag) {
		cfg.Embedder = cmd.String(embedderFlag)
	}

	if cmd.IsSet(maxGenerationsFlag) {
		cfg.MaxGenerations = int(cmd.Int(maxGenerationsFlag))
	}

	if cmd.IsSet(useCaseFlag) {
		cfg.UseCase = cmd.String(useCaseFlag)
	}

	if cmd.IsSet(delayFlag) {
		cfg.GenerationDelay = cmd.Duration(delayFlag)
	}

	if cmd.IsSet(transientFlag) {
		cfg.Transient = cmd.Bool(transientFlag)
	}

	if cmd.IsSet(telemetryFileFlag) {
		cfg.TelemetryFile = cmd.String(telemetryFileFlag)
	}
}

type options struct {
	cfg    config.Config
	tui    bool
	failAt int
	// barWriter receives an owned bar's output. Nil means stderr.
	barWriter io.Writer
}

func synthesize(ctx context.Context, opts options) (goldens []simulate.Golden, err error) {
	cfg := opts.cfg

	reporter := telemetry.NewChannelReporter(ctx, telemetryBufferSize)
	listeners := []telemetry.Listener{telemetry.NewLogListener(ctx)}

	if cfg.TelemetryFile != "" {
		f, ferr := config.FsFactory().OpenFile(cfg.TelemetryFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if ferr != nil {
			return nil, errors.Join(ErrOpenTelemetryFile, ferr)
		}
		defer f.Close() // nolint:errcheck

		jl := telemetry.NewJSONListener(f)
		listeners = append(listeners, jl)

		defer func() {
			if jerr := jl.Err(); jerr != nil {
				err = errors.Join(err, ErrWriteTelemetry, jerr)
			}
		}()
	}

	reporter.Listen(listeners...)
	defer reporter.Close()

	ctx = telemetry.NewContext(ctx, telemetry.NewClientFromEnv(reporter))

	err = progress.RunWithSpinner(ctx, fmt.Sprintf("Loading %s", cfg.EvaluationModel), func(ctx context.Context) error {
		return simulate.Sleep(ctx, cfg.GenerationDelay)
	}, progress.WithTransient(cfg.Transient))
	if err != nil {
		return nil, err
	}

	run := progress.SynthesizerRun{
		Method:          cfg.Method,
		EvaluationModel: cfg.EvaluationModel,
		Embedder:        cfg.Embedder,
		MaxGenerations:  cfg.MaxGenerations,
		UseCase:         cfg.UseCase,
		Writer:          opts.barWriter,
	}

	if opts.tui {
		bar := TUIBarFactory(ctx, cfg.MaxGenerations, run.Description())
		run.Bar = bar

		defer func() {
			if cerr := bar.Close(); cerr != nil {
				ctxlog.Warn(ctx, "failed to close progress bar", "error", cerr)
				err = errors.Join(err, cerr)
			}
		}()
	}

	gen := simulate.Generator{
		Method: cfg.Method,
		Delay:  cfg.GenerationDelay,
		FailAt: opts.failAt,
	}

	err = progress.RunWithSynthesizerProgress(ctx, run, func(ctx context.Context, bar progress.Bar) error {
		var genErr error
		goldens, genErr = gen.Generate(ctx, bar, cfg.MaxGenerations)

		return genErr
	})

	return goldens, err
}
