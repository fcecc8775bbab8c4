// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config implements the config command.
package config

import (
	"context"
	"errors"

	"github.com/matt-FFFFFF/evalprogress/internal/config"
	"github.com/urfave/cli/v3"
)

const fileArg = "file"

// ErrWriteConfig is returned when the configuration cannot be written out.
var ErrWriteConfig = errors.New("failed to write configuration")

// ConfigCmd prints the effective configuration.
var ConfigCmd = newCommand()

func newCommand() *cli.Command {
	return &cli.Command{
		Name:        "config",
		Usage:       "Print the effective configuration as YAML",
		Description: "Print the configuration a synthesize run would use, with the defaults filled in.",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      fileArg,
				UsageText: "[YAMLFILE]",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
		},
		Action: actionFunc,
	}
}

func actionFunc(_ context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.StringArg(fileArg))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if err := cfg.Validate(); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	data, err := cfg.YAML()
	if err != nil {
		return errors.Join(ErrWriteConfig, err)
	}

	if _, err := cmd.Root().Writer.Write(data); err != nil {
		return errors.Join(ErrWriteConfig, err)
	}

	return nil
}
