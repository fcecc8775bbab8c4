// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/matt-FFFFFF/evalprogress/internal/color"
	"golang.org/x/term"
)

const (
	spinnerCharSet  = 14
	spinnerInterval = 100 * time.Millisecond
)

// Renderer is an indeterminate progress display.
type Renderer interface {
	Start()
	Stop()
}

// RendererConfig describes the display requested by a spinner scope.
type RendererConfig struct {
	Description string
	// Total is the expected number of units. It is informational only.
	Total     int
	Transient bool
	Writer    io.Writer
}

// RendererFactory builds the Renderer for each spinner scope.
var RendererFactory = NewRenderer

// NewRenderer returns an animated spinner when cfg.Writer is a terminal and a
// line-oriented renderer otherwise.
func NewRenderer(cfg RendererConfig) Renderer {
	if f, ok := cfg.Writer.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return newSpinnerRenderer(f, cfg)
	}

	return &plainRenderer{cfg: cfg}
}

type spinnerRenderer struct {
	s *spinner.Spinner
}

func newSpinnerRenderer(f *os.File, cfg RendererConfig) *spinnerRenderer {
	opts := []spinner.Option{
		spinner.WithWriterFile(f),
		spinner.WithSuffix(" " + cfg.Description),
		spinner.WithHiddenCursor(true),
	}

	if !cfg.Transient {
		opts = append(opts, spinner.WithFinalMSG(cfg.Description+"\n"))
	}

	if color.Enabled() {
		opts = append(opts, spinner.WithColor("cyan"))
	}

	return &spinnerRenderer{
		s: spinner.New(spinner.CharSets[spinnerCharSet], spinnerInterval, opts...),
	}
}

func (r *spinnerRenderer) Start() {
	r.s.Start()
}

// Stop erases the spinner line; FinalMSG is printed in its place when set.
func (r *spinnerRenderer) Stop() {
	r.s.Stop()
}

// plainRenderer is used when the writer cannot redraw lines. It prints the
// description once on start and, unless transient, a completion line on stop.
type plainRenderer struct {
	cfg       RendererConfig
	startOnce sync.Once
	stopOnce  sync.Once
}

func (r *plainRenderer) Start() {
	r.startOnce.Do(func() {
		_, _ = fmt.Fprintf(r.cfg.Writer, "%s\n", r.cfg.Description)
	})
}

func (r *plainRenderer) Stop() {
	if r.cfg.Transient {
		return
	}

	r.stopOnce.Do(func() {
		_, _ = fmt.Fprintf(r.cfg.Writer, "%s done\n", r.cfg.Description)
	})
}
