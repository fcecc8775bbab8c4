// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultBarWidth = 40
	maxBarWidth     = 80
	countPadding    = 20
)

// Styles holds the lipgloss styles used by Model.
type Styles struct {
	Title lipgloss.Style
	Count lipgloss.Style
	Done  lipgloss.Style
}

// NewStyles returns the default styles.
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")),
		Count: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")),
		Done: lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")),
	}
}

// incrementMsg advances the bar.
type incrementMsg int

// finishMsg asks the program to render a final frame and exit.
type finishMsg struct{}

// Model is the Bubble Tea model behind Bar.
type Model struct {
	title    string
	total    int
	current  int
	width    int
	finished bool
	bar      progress.Model
	styles   *Styles
}

// NewModel creates a model counting towards total.
func NewModel(title string, total int) Model {
	return Model{
		title:  title,
		total:  total,
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithWidth(defaultBarWidth)),
		styles: NewStyles(),
	}
}

// Current returns the number of units added so far, capped at the total.
func (m Model) Current() int {
	return m.current
}

// Finished reports whether the model received its final message.
func (m Model) Finished() bool {
	return m.finished
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case incrementMsg:
		m.current += int(msg)
		if m.total > 0 && m.current > m.total {
			m.current = m.total
		}

		if m.current < 0 {
			m.current = 0
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = min(max(msg.Width-countPadding, 1), maxBarWidth)

		return m, nil

	case finishMsg:
		m.finished = true
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) percent() float64 {
	if m.total <= 0 {
		return 0
	}

	return float64(m.current) / float64(m.total)
}

// View implements tea.Model.
func (m Model) View() string {
	title := m.styles.Title
	if m.width > 0 {
		title = title.Width(m.width)
	}

	var b strings.Builder

	b.WriteString(title.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.bar.ViewAs(m.percent()))
	b.WriteString(" ")

	count := fmt.Sprintf("%d/%d goldens", m.current, m.total)
	if m.total <= 0 {
		count = fmt.Sprintf("%d goldens", m.current)
	}

	if m.finished {
		b.WriteString(m.styles.Done.Render(count))
	} else {
		b.WriteString(m.styles.Count.Render(count))
	}

	b.WriteString("\n")

	return b.String()
}
