// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tui draws a golden-generation progress bar with Bubble Tea.
//
// Bar runs its own tea.Program on standard error and satisfies the progress
// package's Bar contract, so callers can create one, lend it to a
// synthesizer scope, and close it themselves when they are done.
package tui
