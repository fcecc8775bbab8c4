// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"context"
	"errors"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrClosed is returned by Add after Close.
var ErrClosed = errors.New("progress bar is closed")

// Bar is a progress bar rendered by a background tea.Program.
type Bar struct {
	program *tea.Program
	done    chan struct{}
	mu      sync.Mutex
	closed  bool
	final   Model
	err     error
}

// NewBar starts a program drawing a bar of total units on stderr.
// The program does not read stdin or install signal handlers; cancelling ctx
// stops it. opts are applied after the defaults.
func NewBar(ctx context.Context, total int, title string, opts ...tea.ProgramOption) *Bar {
	base := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(nil),
		tea.WithOutput(os.Stderr),
		tea.WithoutSignalHandler(),
	}

	model := NewModel(title, total)
	b := &Bar{
		program: tea.NewProgram(model, append(base, opts...)...),
		done:    make(chan struct{}),
		final:   model,
	}

	go func() {
		defer close(b.done)

		m, err := b.program.Run()
		if fm, ok := m.(Model); ok {
			b.final = fm
		}

		b.err = err
	}()

	return b
}

// Add advances the bar by n units.
func (b *Bar) Add(n int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrClosed
	}

	b.program.Send(incrementMsg(n))

	return nil
}

// Close draws the final frame, stops the program and waits for it to exit.
// It returns the program's error, and is safe to call more than once.
func (b *Bar) Close() error {
	b.mu.Lock()
	first := !b.closed
	b.closed = true
	b.mu.Unlock()

	if first {
		b.program.Send(finishMsg{})
	}

	<-b.done

	return b.err
}

// Count returns the units recorded by the program. It is only meaningful
// after Close.
func (b *Bar) Count() int {
	<-b.done
	return b.final.Current()
}
