// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package simulate stands in for model calls so the CLI has work to wrap in
// progress scopes.
package simulate

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrGenerationFailed is returned by Generator.Generate at Generator.FailAt.
var ErrGenerationFailed = errors.New("simulated generation failure")

// Advancer is the part of a progress bar the generator needs.
type Advancer interface {
	Add(n int) error
}

// Golden is one generated test case.
type Golden struct {
	Index int    `yaml:"index"`
	Input string `yaml:"input"`
}

// Generator produces goldens at a fixed pace.
type Generator struct {
	Method string
	Delay  time.Duration
	// FailAt makes the given 1-based generation fail. Zero disables it.
	FailAt int
}

// Generate produces n goldens, advancing bar once per golden. On error the
// goldens produced so far are returned with it.
func (g Generator) Generate(ctx context.Context, bar Advancer, n int) ([]Golden, error) {
	goldens := make([]Golden, 0, n)

	for i := 1; i <= n; i++ {
		if err := Sleep(ctx, g.Delay); err != nil {
			return goldens, err
		}

		if i == g.FailAt {
			return goldens, fmt.Errorf("%w at generation %d", ErrGenerationFailed, i)
		}

		goldens = append(goldens, Golden{
			Index: i,
			Input: fmt.Sprintf("%s golden #%d", g.Method, i),
		})

		if err := bar.Add(1); err != nil {
			return goldens, err
		}
	}

	return goldens, nil
}

// Sleep waits for d or until ctx is done, whichever is first.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
