// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package simulate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type counter struct {
	n   int
	err error
}

func (c *counter) Add(n int) error {
	c.n += n
	return c.err
}

func TestGenerator_Generate(t *testing.T) {
	bar := &counter{}

	goldens, err := Generator{Method: "evolution"}.Generate(context.Background(), bar, 3)
	require.NoError(t, err)

	assert.Len(t, goldens, 3)
	assert.Equal(t, 3, bar.n)
	assert.Equal(t, Golden{Index: 2, Input: "evolution golden #2"}, goldens[1])
}

func TestGenerator_FailAt(t *testing.T) {
	bar := &counter{}

	goldens, err := Generator{Method: "m", FailAt: 3}.Generate(context.Background(), bar, 5)

	require.ErrorIs(t, err, ErrGenerationFailed)
	assert.Len(t, goldens, 2)
	assert.Equal(t, 2, bar.n)
}

func TestGenerator_BarError(t *testing.T) {
	errClosed := errors.New("closed")
	bar := &counter{err: errClosed}

	goldens, err := Generator{}.Generate(context.Background(), bar, 5)

	assert.ErrorIs(t, err, errClosed)
	assert.Len(t, goldens, 1)
}

func TestGenerator_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	goldens, err := Generator{Delay: time.Hour}.Generate(ctx, &counter{}, 5)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, goldens)
}

func TestSleep(t *testing.T) {
	defer goleak.VerifyNone(t)

	require.NoError(t, Sleep(context.Background(), 0))
	require.NoError(t, Sleep(context.Background(), time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, Sleep(ctx, time.Hour), context.DeadlineExceeded)
}
