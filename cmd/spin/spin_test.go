// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package spin

import (
	"context"
	"testing"
	"time"

	"github.com/matt-FFFFFF/evalprogress/internal/progress"
	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRenderer struct {
	cfg     progress.RendererConfig
	started bool
	stopped int
}

func (r *recordingRenderer) Start() { r.started = true }
func (r *recordingRenderer) Stop()  { r.stopped++ }

func stubRenderer(t *testing.T) *recordingRenderer {
	t.Helper()

	rec := &recordingRenderer{}
	stubs := gostub.Stub(&progress.RendererFactory, func(cfg progress.RendererConfig) progress.Renderer {
		rec.cfg = cfg
		return rec
	})
	t.Cleanup(stubs.Reset)

	return rec
}

func TestSpin(t *testing.T) {
	rec := stubRenderer(t)

	err := spin(context.Background(), "Loading", time.Millisecond, progress.WithTransient(false))
	require.NoError(t, err)

	assert.True(t, rec.started)
	assert.Equal(t, 1, rec.stopped)
	assert.Equal(t, "Loading", rec.cfg.Description)
	assert.False(t, rec.cfg.Transient)
	assert.Equal(t, progress.DefaultSpinnerTotal, rec.cfg.Total)
}

func TestSpin_Cancelled(t *testing.T) {
	rec := stubRenderer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := spin(ctx, "Loading", time.Hour)

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, rec.stopped)
}

func TestSpinCmd_Flags(t *testing.T) {
	rec := stubRenderer(t)

	err := newCommand().Run(context.Background(), []string{"spin", "--description", "Indexing", "--duration", "1ms", "--total", "42"})
	require.NoError(t, err)

	assert.Equal(t, "Indexing", rec.cfg.Description)
	assert.Equal(t, 42, rec.cfg.Total)
	assert.True(t, rec.cfg.Transient)
}
