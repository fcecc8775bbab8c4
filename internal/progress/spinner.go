// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"context"
	"io"
	"os"

	"github.com/matt-FFFFFF/evalprogress/internal/ctxlog"
)

// DefaultSpinnerTotal stands in for an unknown total. It is never a limit.
const DefaultSpinnerTotal = 9999

// SpinnerOption configures RunWithSpinner.
type SpinnerOption func(*RendererConfig)

// WithTotal records the expected number of units.
func WithTotal(n int) SpinnerOption {
	return func(c *RendererConfig) {
		c.Total = n
	}
}

// WithTransient controls whether the spinner line is erased on exit (true,
// the default) or left on screen.
func WithTransient(transient bool) SpinnerOption {
	return func(c *RendererConfig) {
		c.Transient = transient
	}
}

// WithWriter sends the display to w instead of os.Stderr. A nil w keeps
// os.Stderr.
func WithWriter(w io.Writer) SpinnerOption {
	return func(c *RendererConfig) {
		c.Writer = w
	}
}

// RunWithSpinner shows a spinner labelled with description while fn runs.
// The spinner is stopped however fn exits, and fn's error is returned as is.
func RunWithSpinner(ctx context.Context, description string, fn func(context.Context) error, opts ...SpinnerOption) error {
	cfg := RendererConfig{
		Description: description,
		Total:       DefaultSpinnerTotal,
		Transient:   true,
		Writer:      os.Stderr,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}

	r := RendererFactory(cfg)
	r.Start()

	defer func() {
		r.Stop()
		ctxlog.Debug(ctx, "spinner", "detail", "stopped", "description", description)
	}()

	ctxlog.Debug(ctx, "spinner", "detail", "started",
		"description", description, "total", cfg.Total, "transient", cfg.Transient)

	return fn(ctx)
}
