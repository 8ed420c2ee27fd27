// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package run contains the command that builds the target and sets PATH.
package run

import (
	"context"

	"github.com/matt-FFFFFF/binpath/cmd/binpath/settings"
	"github.com/matt-FFFFFF/binpath/internal/ctxlog"
	"github.com/urfave/cli/v3"
)

// New returns the run command.
func New() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "build the target and prepend its output directory to PATH",
		Description: `Runs "<build-tool> build --release --bin <target>" in the working directory,
then prepends the absolute output directory to PATH with the platform's command:
setx on Windows, export on Linux and macOS.

Failures to set PATH are reported and the command still succeeds, unless
--contain-errors=false is given. The build's exit status is ignored unless
--check-build is given.`,
		Action: Action,
	}
}

// Action runs the build-and-path-set procedure. It is also the root command's action.
func Action(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)
	logger.Debug("running build and path set")

	cfg, err := settings.Resolve(ctx, cmd)
	if err != nil {
		return err
	}

	return settings.NewSetter(cfg, cmd.Root().Writer).Run(ctx)
}
