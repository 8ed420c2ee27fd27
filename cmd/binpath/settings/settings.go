// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package settings defines the flags shared by every binpath command and
// turns them into a config.Config.
package settings

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/matt-FFFFFF/binpath/internal/config"
	"github.com/matt-FFFFFF/binpath/internal/ctxlog"
	"github.com/matt-FFFFFF/binpath/internal/setter"
	"github.com/urfave/cli/v3"
)

// Flag names.
const (
	BuildToolFlag     = "build-tool"
	TargetFlag        = "target"
	OutputDirFlag     = "output-dir"
	PlatformFlag      = "platform"
	ContainErrorsFlag = "contain-errors"
	CheckBuildFlag    = "check-build"
	ConfigFlag        = "config"
	LogJSONFlag       = "log-json"
	LogLevelFlag      = "log-level"
)

// ErrInvalidLogLevel is returned for a --log-level that is not DEBUG, INFO, WARN or ERROR.
var ErrInvalidLogLevel = errors.New("invalid log level")

// NewSetter creates the setter used by the commands.
var NewSetter = func(cfg *config.Config, out io.Writer) *setter.Setter {
	return setter.New(cfg, out)
}

// Flags returns the flags of the root command. They are inherited by every sub-command.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    BuildToolFlag,
			Usage:   "build tool executable",
			Value:   config.DefaultBuildTool,
			Sources: cli.EnvVars("BINPATH_BUILD_TOOL"),
		},
		&cli.StringFlag{
			Name:    TargetFlag,
			Usage:   "binary target passed to --bin",
			Value:   config.DefaultTarget,
			Sources: cli.EnvVars("BINPATH_TARGET"),
		},
		&cli.StringFlag{
			Name:    OutputDirFlag,
			Usage:   "release output directory, relative to the working directory",
			Value:   config.DefaultOutputDir,
			Sources: cli.EnvVars("BINPATH_OUTPUT_DIR"),
		},
		&cli.StringFlag{
			Name:    PlatformFlag,
			Usage:   "platform identifier (win32, linux, darwin), defaults to the host",
			Sources: cli.EnvVars("BINPATH_PLATFORM"),
		},
		&cli.BoolFlag{
			Name:    ContainErrorsFlag,
			Usage:   "report a failure to set PATH instead of failing",
			Value:   true,
			Sources: cli.EnvVars("BINPATH_CONTAIN_ERRORS"),
		},
		&cli.BoolFlag{
			Name:    CheckBuildFlag,
			Usage:   "fail when the build exits with a non-zero status",
			Sources: cli.EnvVars("BINPATH_CHECK_BUILD"),
		},
		&cli.StringFlag{
			Name:    ConfigFlag,
			Usage:   "config file, as a local path or a go-getter URL",
			Sources: cli.EnvVars("BINPATH_CONFIG"),
		},
		&cli.BoolFlag{
			Name:    LogJSONFlag,
			Usage:   "write logs as JSON",
			Sources: cli.EnvVars("BINPATH_LOG_JSON"),
		},
		&cli.StringFlag{
			Name:    LogLevelFlag,
			Usage:   "log level: DEBUG, INFO, WARN or ERROR",
			Sources: cli.EnvVars(ctxlog.LogLevelEnvVar),
		},
	}
}

// Before configures logging from the log flags.
func Before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.IsSet(LogLevelFlag) {
		l, ok := ctxlog.ParseLevel(cmd.String(LogLevelFlag))
		if !ok {
			return ctx, fmt.Errorf("%w: %q", ErrInvalidLogLevel, cmd.String(LogLevelFlag))
		}

		ctxlog.LevelVar.Set(l)
	}

	if cmd.Bool(LogJSONFlag) {
		ctx = ctxlog.New(ctx, ctxlog.JSONLogger)
	}

	ctxlog.Debug(ctx, "logging configured", slog.String("level", ctxlog.LevelVar.Level().String()))

	return ctx, nil
}

// Resolve builds the configuration of a run: defaults, then the config file,
// then any flag or environment variable that was set.
func Resolve(ctx context.Context, cmd *cli.Command) (*config.Config, error) {
	cfg, err := loadFile(ctx, cmd)
	if err != nil {
		return nil, err
	}

	overlay(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ctxlog.Debug(ctx, "configuration resolved",
		"buildTool", cfg.BuildTool,
		"target", cfg.Target,
		"outputDir", cfg.OutputDir,
		"platform", cfg.Platform,
		"containErrors", cfg.ContainErrors,
		"checkBuild", cfg.CheckBuild,
	)

	return cfg, nil
}

func loadFile(ctx context.Context, cmd *cli.Command) (*config.Config, error) {
	if src := cmd.String(ConfigFlag); src != "" {
		ctxlog.Info(ctx, "fetching config file", "source", src)
		return config.Fetch(ctx, src)
	}

	cwd, err := setter.Getwd()
	if err != nil {
		ctxlog.Warn(ctx, "cannot read working directory, skipping config file discovery", "error", err)
		return config.Default(), nil
	}

	path, ok := config.Discover(cwd)
	if !ok {
		return config.Default(), nil
	}

	ctxlog.Info(ctx, "loading config file", "path", path)

	return config.Load(path)
}

func overlay(cmd *cli.Command, cfg *config.Config) {
	for name, dst := range map[string]*string{
		BuildToolFlag: &cfg.BuildTool,
		TargetFlag:    &cfg.Target,
		OutputDirFlag: &cfg.OutputDir,
		PlatformFlag:  &cfg.Platform,
	} {
		if cmd.IsSet(name) {
			*dst = cmd.String(name)
		}
	}

	for name, dst := range map[string]*bool{
		ContainErrorsFlag: &cfg.ContainErrors,
		CheckBuildFlag:    &cfg.CheckBuild,
	} {
		if cmd.IsSet(name) {
			*dst = cmd.Bool(name)
		}
	}
}
