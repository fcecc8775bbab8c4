// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"os"

	"github.com/matt-FFFFFF/evalprogress/cmd/config"
	"github.com/matt-FFFFFF/evalprogress/cmd/spin"
	"github.com/matt-FFFFFF/evalprogress/cmd/synthesize"
	"github.com/urfave/cli/v3"
)

var (
	// Version is set during the build process.
	Version = "dev"
	// Commit is set during the build process.
	Commit = "unknown"
)

// RootCmd is the root command for the CLI.
var RootCmd = &cli.Command{
	Commands: []*cli.Command{
		config.ConfigCmd,
		spin.SpinCmd,
		synthesize.SynthesizeCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "evalprogress",
	Version:   Version + " (" + Commit + ")",
	Description: `evalprogress wraps long-running evaluation work in terminal progress
indicators. It can show a spinner around a block of work, or a bar counting
goldens as a simulated synthesizer run generates them.`,
	Usage:     "evalprogress synthesize --max-generations 20",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	EnableShellCompletion: true,
}
