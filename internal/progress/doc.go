// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package progress wraps a block of work in a terminal progress display.
//
// Two scopes are provided. RunWithSpinner shows a spinner and a label on
// standard error while the function runs. RunWithSynthesizerProgress opens a
// telemetry capture for a synthesizer run and hands the function a progress
// bar sized to the number of goldens requested.
//
// Both scopes release what they created on every exit path, including a
// panic, and return the function's error untouched. A bar passed in by the
// caller is borrowed: it is handed through and never closed here.
package progress
