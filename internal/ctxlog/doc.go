// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a *slog.Logger on a context.Context.
//
// Progress widgets own the terminal while they run, so the default logger
// writes to standard error with a compact pretty handler and stays at WARN
// unless EVALPROGRESS_LOG_LEVEL says otherwise.
package ctxlog
