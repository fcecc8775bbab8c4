// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"fmt"
	"io"
	"sync"

	"github.com/matt-FFFFFF/evalprogress/internal/color"
	"github.com/schollz/progressbar/v3"
)

// Bar is a determinate progress display.
type Bar interface {
	// Add advances the bar by n units.
	Add(n int) error
	// Close finishes the display and releases it.
	Close() error
}

// BarConfig describes a bar created by a progress scope.
type BarConfig struct {
	// Max is the number of units; values below 1 mean unknown.
	Max         int
	Description string
	Writer      io.Writer
}

// BarFactory builds the Bar for a scope that owns one.
var BarFactory = NewBar

// TextBar is the Bar drawn by schollz/progressbar.
type TextBar struct {
	*progressbar.ProgressBar

	w         io.Writer
	closeOnce sync.Once
	closeErr  error
}

// NewBar returns a TextBar on cfg.Writer.
func NewBar(cfg BarConfig) Bar {
	total := cfg.Max
	if total < 1 {
		total = -1
	}

	pb := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(cfg.Writer),
		progressbar.OptionSetDescription(cfg.Description),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("goldens"),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionEnableColorCodes(color.Enabled()),
	)

	return &TextBar{ProgressBar: pb, w: cfg.Writer}
}

// Close ends the bar's line and leaves the count where it stopped, so an
// interrupted run shows how far it got. Later calls are no-ops.
func (b *TextBar) Close() error {
	b.closeOnce.Do(func() {
		_, b.closeErr = fmt.Fprintln(b.w)
	})

	return b.closeErr
}

// barLease pairs a bar with whether the scope that holds it must close it.
type barLease struct {
	bar   Bar
	owned bool
}

func ownBar(bar Bar) barLease {
	return barLease{bar: bar, owned: true}
}

func borrowBar(bar Bar) barLease {
	return barLease{bar: bar}
}

// release closes owned bars. Borrowed bars are left to their owner.
func (l barLease) release() error {
	if !l.owned {
		return nil
	}

	return l.bar.Close()
}
