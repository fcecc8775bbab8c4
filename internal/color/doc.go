// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color wraps strings in ANSI escape codes for the progress output.
//
// Progress is written to standard error, so colour support is decided by
// looking at stderr: NO_COLOR always disables colour, FORCE_COLOR enables it
// for non-terminal output, and otherwise colour is used only when stderr is a
// terminal (golang.org/x/term).
package color
