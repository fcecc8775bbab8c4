// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package telemetry

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/matt-FFFFFF/evalprogress/internal/ctxlog"
)

// OptOutEnvVar disables event delivery when set to YES, TRUE or 1.
const OptOutEnvVar = "EVALPROGRESS_TELEMETRY_OPT_OUT"

// Capturer wraps a synthesizer run in a telemetry scope.
// Implementations must call fn exactly once and return its error unchanged.
type Capturer interface {
	CaptureSynthesizerRun(ctx context.Context, maxGenerations int, method string, fn func(context.Context) error) error
}

// Client is the Capturer used by the CLI.
type Client struct {
	reporter Reporter
	now      func() time.Time
}

// NewClient returns a Client reporting to r. A nil r discards events.
func NewClient(r Reporter) *Client {
	if r == nil {
		r = NewNullReporter()
	}

	return &Client{
		reporter: r,
		now:      time.Now,
	}
}

// NewClientFromEnv is NewClient, except that a NullReporter is used when the
// user opted out.
func NewClientFromEnv(r Reporter) *Client {
	if OptedOut() {
		return NewClient(nil)
	}

	return NewClient(r)
}

// OptedOut reports whether OptOutEnvVar disables telemetry.
func OptedOut() bool {
	switch strings.ToUpper(strings.TrimSpace(os.Getenv(OptOutEnvVar))) {
	case "YES", "TRUE", "1":
		return true
	default:
		return false
	}
}

// CaptureSynthesizerRun implements Capturer. The event is reported after fn
// returns; a panicking fn is reported as failed before the panic continues.
func (c *Client) CaptureSynthesizerRun(
	ctx context.Context,
	maxGenerations int,
	method string,
	fn func(context.Context) error,
) (err error) {
	event := Event{
		Name:           SynthesizerRunEvent,
		Method:         method,
		MaxGenerations: maxGenerations,
		Started:        c.now(),
	}

	ctxlog.Debug(ctx, "telemetry", "detail", "capture started", "method", method, "max_generations", maxGenerations)

	returned := false

	defer func() {
		event.Duration = c.now().Sub(event.Started)

		switch {
		case !returned:
			event.Outcome = OutcomeFailed
			event.Error = "panic during synthesizer run"
		case err != nil:
			event.Outcome = OutcomeFailed
			event.Error = err.Error()
		default:
			event.Outcome = OutcomeCompleted
		}

		c.reporter.Report(event)
	}()

	err = fn(ctx)
	returned = true

	return err
}

type noopCapturer struct{}

func (noopCapturer) CaptureSynthesizerRun(ctx context.Context, _ int, _ string, fn func(context.Context) error) error {
	return fn(ctx)
}

type capturerKey struct{}

// NewContext returns a child context carrying c.
func NewContext(ctx context.Context, c Capturer) context.Context {
	return context.WithValue(ctx, capturerKey{}, c)
}

// FromContext returns the Capturer carried by ctx, or one that only runs the
// body.
func FromContext(ctx context.Context) Capturer {
	c, ok := ctx.Value(capturerKey{}).(Capturer)
	if !ok || c == nil {
		return noopCapturer{}
	}

	return c
}
