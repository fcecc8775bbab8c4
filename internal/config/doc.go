// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config loads defaults for a synthesizer run from a YAML file.
//
// Command-line flags override whatever the file sets; the file overrides
// Default(). Files are read through FsFactory so tests can use an in-memory
// file system.
package config
