// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/matt-FFFFFF/evalprogress/internal/ctxlog"
	"github.com/matt-FFFFFF/evalprogress/internal/telemetry"
)

// DefaultUseCase is used when SynthesizerRun.UseCase is empty.
const DefaultUseCase = "QA"

// SynthesizerRun describes a golden-generation run.
type SynthesizerRun struct {
	Method          string
	EvaluationModel string
	// Embedder is optional.
	Embedder       string
	MaxGenerations int
	UseCase        string
	// Bar, when set, is borrowed for the run and never closed by it.
	Bar Bar
	// Writer receives an owned bar's output. Defaults to os.Stderr.
	Writer io.Writer
}

// Description is the label shown on the run's progress bar.
func (r SynthesizerRun) Description() string {
	using := r.EvaluationModel
	if r.Embedder != "" {
		using = fmt.Sprintf("%s and %s", r.EvaluationModel, r.Embedder)
	}

	return fmt.Sprintf(
		"✨ 🍰 ✨ You're generating up to %d goldens using DeepEval's latest Synthesizer "+
			"(using %s, use case=%s, method=%s)! This may take a while...",
		r.MaxGenerations, using, r.useCase(), r.Method,
	)
}

func (r SynthesizerRun) useCase() string {
	if r.UseCase == "" {
		return DefaultUseCase
	}

	return r.UseCase
}

func (r SynthesizerRun) writer() io.Writer {
	if r.Writer == nil {
		return os.Stderr
	}

	return r.Writer
}

func (r SynthesizerRun) acquireBar() barLease {
	if r.Bar != nil {
		return borrowBar(r.Bar)
	}

	return ownBar(BarFactory(BarConfig{
		Max:         r.MaxGenerations,
		Description: r.Description(),
		Writer:      r.writer(),
	}))
}

// RunWithSynthesizerProgress runs fn inside the telemetry capture carried by
// ctx (see telemetry.FromContext), passing it the run's progress bar.
//
// A bar created here is closed exactly once when fn exits. If closing fails
// the failure is logged, and returned only when fn itself succeeded.
func RunWithSynthesizerProgress(ctx context.Context, run SynthesizerRun, fn func(context.Context, Bar) error) error {
	capture := telemetry.FromContext(ctx)

	return capture.CaptureSynthesizerRun(ctx, run.MaxGenerations, run.Method, func(ctx context.Context) (err error) {
		lease := run.acquireBar()

		ctxlog.Debug(ctx, "synthesizer progress", "detail", "bar acquired",
			"method", run.Method, "max_generations", run.MaxGenerations, "owned", lease.owned)

		defer func() {
			cerr := lease.release()
			if cerr == nil {
				return
			}

			ctxlog.Warn(ctx, "synthesizer progress", "detail", "failed to close progress bar", "error", cerr)

			if err == nil {
				err = cerr
			}
		}()

		return fn(ctx, lease.bar)
	})
}
