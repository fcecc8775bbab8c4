// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"context"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBar(ctx context.Context, total int) *Bar {
	return NewBar(ctx, total, "test run", tea.WithOutput(io.Discard), tea.WithoutRenderer())
}

func TestBar_AddAndClose(t *testing.T) {
	b := newTestBar(context.Background(), 5)

	require.NoError(t, b.Add(2))
	require.NoError(t, b.Add(1))
	require.NoError(t, b.Close())

	assert.Equal(t, 3, b.Count())
	assert.ErrorIs(t, b.Add(1), ErrClosed)
	assert.NoError(t, b.Close(), "second Close is a no-op")
}

func TestBar_ContextCancelStopsProgram(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	b := newTestBar(ctx, 5)

	cancel()

	done := make(chan error, 1)
	go func() { done <- b.Close() }()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not return after the context was cancelled")
	}
}
