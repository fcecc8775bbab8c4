// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package spin implements the spin command.
package spin

import (
	"context"
	"time"

	"github.com/matt-FFFFFF/evalprogress/internal/ctxlog"
	"github.com/matt-FFFFFF/evalprogress/internal/progress"
	"github.com/matt-FFFFFF/evalprogress/internal/simulate"
	"github.com/urfave/cli/v3"
)

const (
	descriptionFlag = "description"
	durationFlag    = "duration"
	totalFlag       = "total"
	transientFlag   = "transient"
)

// SpinCmd shows a spinner while it waits.
var SpinCmd = newCommand()

func newCommand() *cli.Command {
	return &cli.Command{
		Name:        "spin",
		Usage:       "Show a spinner for a while",
		Description: "Show a spinner with a label on stderr until the duration passes or the command is interrupted.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    descriptionFlag,
				Aliases: []string{"d"},
				Usage:   "Label shown next to the spinner",
				Value:   "Working...",
				Sources: cli.EnvVars("EVALPROGRESS_SPIN_DESCRIPTION"),
			},
			&cli.DurationFlag{
				Name:    durationFlag,
				Usage:   "How long to spin for",
				Value:   3 * time.Second,
				Sources: cli.EnvVars("EVALPROGRESS_SPIN_DURATION"),
			},
			&cli.IntFlag{
				Name:  totalFlag,
				Usage: "Expected number of units of work, informational only",
				Value: progress.DefaultSpinnerTotal,
			},
			&cli.BoolFlag{
				Name:        transientFlag,
				Usage:       "Erase the spinner when done",
				Value:       true,
				DefaultText: "true",
				Sources:     cli.EnvVars("EVALPROGRESS_TRANSIENT"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			err := spin(ctx,
				cmd.String(descriptionFlag),
				cmd.Duration(durationFlag),
				progress.WithTotal(int(cmd.Int(totalFlag))),
				progress.WithTransient(cmd.Bool(transientFlag)),
			)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			return nil
		},
	}
}

func spin(ctx context.Context, description string, d time.Duration, opts ...progress.SpinnerOption) error {
	ctxlog.Debug(ctx, "spinning", "description", description, "duration", d.String())

	return progress.RunWithSpinner(ctx, description, func(ctx context.Context) error {
		return simulate.Sleep(ctx, d)
	}, opts...)
}
