// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"testing"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memFs(t *testing.T, files map[string]string) {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}

	stubs := gostub.Stub(&FsFactory, func() afero.Fs {
		return fs
	})
	t.Cleanup(stubs.Reset)
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_OverlaysFile(t *testing.T) {
	memFs(t, map[string]string{
		"/synth.yaml": `
method: evolution
evaluation_model: gpt-4
embedder: text-embed-3
max_generations: 25
generation_delay: 50ms
transient: false
`,
	})

	cfg, err := Load("/synth.yaml")
	require.NoError(t, err)

	assert.Equal(t, "evolution", cfg.Method)
	assert.Equal(t, "gpt-4", cfg.EvaluationModel)
	assert.Equal(t, "text-embed-3", cfg.Embedder)
	assert.Equal(t, 25, cfg.MaxGenerations)
	assert.Equal(t, 50*time.Millisecond, cfg.GenerationDelay)
	assert.False(t, cfg.Transient)
	assert.Equal(t, "QA", cfg.UseCase, "unset keys keep their defaults")
}

func TestLoad_Errors(t *testing.T) {
	memFs(t, map[string]string{
		"/bad.yaml": "method: [unterminated",
	})

	_, err := Load("/missing.yaml")
	assert.ErrorIs(t, err, ErrReadConfig)

	_, err = Load("/bad.yaml")
	assert.ErrorIs(t, err, ErrParseConfig)
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	cfg := Config{MaxGenerations: 0, GenerationDelay: -time.Second}

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 4)
	assert.Contains(t, err.Error(), "max_generations must be at least 1")
}

func TestConfig_YAMLRoundTrip(t *testing.T) {
	want := Default()
	want.Embedder = "text-embed-3"

	data, err := want.YAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "evaluation_model: gpt-4o")

	memFs(t, map[string]string{"/out.yaml": string(data)})

	got, err := Load("/out.yaml")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
