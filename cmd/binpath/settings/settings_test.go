// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package settings

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/matt-FFFFFF/binpath/internal/config"
	"github.com/matt-FFFFFF/binpath/internal/ctxlog"
	"github.com/matt-FFFFFF/binpath/internal/setter"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

// resolve runs a throwaway command with the shared flags and returns what Resolve produced.
func resolve(t *testing.T, fs afero.Fs, args ...string) (*config.Config, context.Context, error) {
	t.Helper()

	return resolveIn(t, fs, func() (string, error) { return "/proj", nil }, args...)
}

func resolveIn(t *testing.T, fs afero.Fs, getwd func() (string, error), args ...string) (*config.Config, context.Context, error) {
	t.Helper()

	stubs := gostub.Stub(&config.FsFactory, func() afero.Fs { return fs })
	stubs.Stub(&setter.Getwd, getwd)
	t.Cleanup(stubs.Reset)

	var (
		cfg    *config.Config
		gotCtx context.Context
	)

	cmd := &cli.Command{
		Name:      "test",
		Flags:     Flags(),
		Before:    Before,
		Writer:    io.Discard,
		ErrWriter: io.Discard,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var err error

			gotCtx = ctx
			cfg, err = Resolve(ctx, cmd)

			return err
		},
	}

	err := cmd.Run(context.Background(), append([]string{"test"}, args...))

	return cfg, gotCtx, err
}

func TestResolve_Defaults(t *testing.T) {
	cfg, _, err := resolve(t, afero.NewMemMapFs())
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestResolve_NoWorkingDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/proj/.binpath.yaml", []byte("target: fromfile\n"), 0o644))

	cfg, _, err := resolveIn(t, fs, func() (string, error) { return "", errors.New("gone") }, "--check-build")
	require.NoError(t, err)

	want := config.Default()
	want.CheckBuild = true
	assert.Equal(t, want, cfg, "discovery is skipped, flags still apply")
}

func TestResolve_Layering(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/proj/.binpath.hcl", []byte(`
target         = "fromfile"
build_tool     = "cross"
contain_errors = false
`), 0o644))

	cfg, _, err := resolve(t, fs, "--build-tool", "cargo", "--check-build")
	require.NoError(t, err)

	assert.Equal(t, "fromfile", cfg.Target, "file overrides default")
	assert.Equal(t, "cargo", cfg.BuildTool, "flag overrides file")
	assert.False(t, cfg.ContainErrors, "unset flag keeps the file value")
	assert.True(t, cfg.CheckBuild)
}

func TestResolve_ExplicitConfigMissing(t *testing.T) {
	_, _, err := resolve(t, afero.NewMemMapFs(), "--config", "")
	require.NoError(t, err, "an empty --config falls back to discovery")

	_, _, err = resolve(t, afero.NewMemMapFs(), "--config", "./testdata/missing.yaml")
	require.ErrorIs(t, err, config.ErrGetConfigFile)
}

func TestBefore_Logging(t *testing.T) {
	orig := ctxlog.LevelVar.Level()
	t.Cleanup(func() { ctxlog.LevelVar.Set(orig) })

	_, ctx, err := resolve(t, afero.NewMemMapFs(), "--log-level", "debug", "--log-json")
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, ctxlog.LevelVar.Level())
	assert.Same(t, ctxlog.JSONLogger, ctxlog.Logger(ctx))
}

func TestBefore_InvalidLevel(t *testing.T) {
	_, _, err := resolve(t, afero.NewMemMapFs(), "--log-level", "chatty")
	require.ErrorIs(t, err, ErrInvalidLogLevel)
}
