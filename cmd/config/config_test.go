// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/matt-FFFFFF/evalprogress/internal/config"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestConfigCmd(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cfg.yaml", []byte("method: evolution\nembedder: text-embed-3\n"), 0o644))

	stubs := gostub.Stub(&config.FsFactory, func() afero.Fs { return fs })
	stubs.Stub(&cli.OsExiter, func(int) {})
	defer stubs.Reset()

	testCases := []struct {
		name     string
		args     []string
		contains []string
		wantErr  bool
	}{
		{
			name:     "defaults",
			args:     []string{"config"},
			contains: []string{"method: default", "evaluation_model: gpt-4o", "max_generations: 10"},
		},
		{
			name:     "file overlays defaults",
			args:     []string{"config", "/cfg.yaml"},
			contains: []string{"method: evolution", "embedder: text-embed-3", "use_case: QA"},
		},
		{
			name:    "missing file",
			args:    []string{"config", "/nope.yaml"},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			cmd := newCommand()
			cmd.Writer = out
			cmd.ErrWriter = io.Discard

			err := cmd.Run(context.Background(), tc.args)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)

			for _, want := range tc.contains {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}
