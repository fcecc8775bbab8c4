// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package telemetry

import (
	"time"
)

// SynthesizerRunEvent is the name of the event emitted by CaptureSynthesizerRun.
const SynthesizerRunEvent = "Invoked synthesizer"

// Event describes one captured run.
type Event struct {
	Name           string        `json:"name"`
	Method         string        `json:"method"`
	MaxGenerations int           `json:"max_generations"`
	Outcome        Outcome       `json:"outcome"`
	Error          string        `json:"error,omitempty"`
	Started        time.Time     `json:"started"`
	Duration       time.Duration `json:"duration_ns"`
}

// Outcome is how the captured body finished.
type Outcome int

const (
	// OutcomeCompleted means the body returned nil.
	OutcomeCompleted Outcome = iota
	// OutcomeFailed means the body returned an error or panicked.
	OutcomeFailed
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so JSON sinks write the name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}
