// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the entry point for the evalprogress command-line application.
package main

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/evalprogress/cmd"
	"github.com/matt-FFFFFF/evalprogress/internal/ctxlog"
	"github.com/matt-FFFFFF/evalprogress/internal/signalbroker"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	sigCh := signalbroker.New(ctx)

	go signalbroker.Watch(ctx, sigCh, cancel)

	if err := cmd.RootCmd.Run(ctx, os.Args); err != nil {
		ctxlog.Error(ctx, "command failed", "error", err)
		cancel()
		os.Exit(1) // nolint:gocritic
	}

	ctxlog.Debug(ctx, "command completed successfully")
}
