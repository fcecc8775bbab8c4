// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package telemetry

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestOutcome_String(t *testing.T) {
	tests := []struct {
		outcome  Outcome
		expected string
	}{
		{outcome: OutcomeCompleted, expected: "completed"},
		{outcome: OutcomeFailed, expected: "failed"},
		{outcome: Outcome(42), expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.outcome.String())
		})
	}
}

func TestNullReporter(t *testing.T) {
	r := NewNullReporter()
	require.NotNil(t, r)

	r.Report(Event{Name: SynthesizerRunEvent})
	r.Close()
}

func TestChannelReporter_Events(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := NewChannelReporter(context.Background(), 10)
	defer r.Close()

	r.Report(Event{Name: SynthesizerRunEvent, Method: "evolution"})

	select {
	case got := <-r.Events():
		assert.Equal(t, "evolution", got.Method)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("event not received")
	}
}

func TestChannelReporter_BufferFullDrops(t *testing.T) {
	r := NewChannelReporter(context.Background(), 1)

	r.Report(Event{Method: "first"})
	r.Report(Event{Method: "second"})

	r.Close()

	var got []string
	for ev := range r.Events() {
		got = append(got, ev.Method)
	}

	assert.Equal(t, []string{"first"}, got)
}

func TestChannelReporter_ReportAfterCloseIsDropped(t *testing.T) {
	r := NewChannelReporter(context.Background(), 1)
	r.Close()
	r.Close()

	assert.NotPanics(t, func() {
		r.Report(Event{Method: "late"})
	})
}

func TestChannelReporter_ListenDrainsOnClose(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := NewChannelReporter(context.Background(), 10)

	var (
		mu   sync.Mutex
		a, b []string
	)

	r.Listen(
		ListenerFunc(func(ev Event) { mu.Lock(); a = append(a, ev.Method); mu.Unlock() }),
		ListenerFunc(func(ev Event) { mu.Lock(); b = append(b, ev.Method); mu.Unlock() }),
	)

	for _, m := range []string{"default", "evolution", "context"} {
		r.Report(Event{Method: m})
	}

	r.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"default", "evolution", "context"}, a)
	assert.Equal(t, a, b)
}

func TestChannelReporter_ParentCancelStopsListener(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	r := NewChannelReporter(ctx, 1)
	r.Listen(ListenerFunc(func(Event) {}))

	cancel()
	r.Close()
}
