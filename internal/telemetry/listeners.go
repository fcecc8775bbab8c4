// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package telemetry

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"

	"github.com/matt-FFFFFF/evalprogress/internal/ctxlog"
)

// LogListener writes each event to a structured logger at info level.
type LogListener struct {
	Logger *slog.Logger
}

// NewLogListener uses the logger carried by ctx.
func NewLogListener(ctx context.Context) *LogListener {
	return &LogListener{Logger: ctxlog.Logger(ctx)}
}

// OnEvent implements Listener.
func (l *LogListener) OnEvent(event Event) {
	args := []any{
		"event", event.Name,
		"method", event.Method,
		"max_generations", event.MaxGenerations,
		"outcome", event.Outcome.String(),
		"duration", event.Duration.String(),
	}
	if event.Error != "" {
		args = append(args, "error", event.Error)
	}

	l.Logger.Info("telemetry", args...)
}

// JSONListener appends one JSON document per event to a writer.
// Encoding errors are kept and returned by Err.
type JSONListener struct {
	mu  sync.Mutex
	enc *json.Encoder
	err error
}

// NewJSONListener writes events to w.
func NewJSONListener(w io.Writer) *JSONListener {
	return &JSONListener{enc: json.NewEncoder(w)}
}

// OnEvent implements Listener.
func (l *JSONListener) OnEvent(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.err != nil {
		return
	}

	l.err = l.enc.Encode(event)
}

// Err returns the first write error, if any.
func (l *JSONListener) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.err
}
