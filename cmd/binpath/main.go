// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the binpath command-line interface (CLI).
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/matt-FFFFFF/binpath"
	"github.com/matt-FFFFFF/binpath/cmd/binpath/env"
	"github.com/matt-FFFFFF/binpath/cmd/binpath/run"
	"github.com/matt-FFFFFF/binpath/cmd/binpath/settings"
	"github.com/matt-FFFFFF/binpath/cmd/binpath/show"
	"github.com/matt-FFFFFF/binpath/internal/ctxlog"
	"github.com/matt-FFFFFF/binpath/internal/platform"
	"github.com/matt-FFFFFF/binpath/internal/signalbroker"
	"github.com/urfave/cli/v3"
)

func newRootCmd(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "binpath",
		Usage: "build a binary target and put its output directory on PATH",
		Description: `binpath runs "cargo build --release --bin bin2const" (by default) and
prepends the absolute path of target/release to PATH using the platform's
command. Settings come from flags, BINPATH_* environment variables, or a
.binpath.yaml / .binpath.hcl file in the working directory.`,
		Commands: []*cli.Command{
			run.New(),
			show.New(),
			env.New(),
			versionCmd(),
		},
		Flags:     settings.Flags(),
		Before:    settings.Before,
		Action:    run.Action,
		Writer:    stdout,
		ErrWriter: stderr,
		Version:   binpath.VersionString(),
		Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
		Authors: []any{
			"Matt White (matt-FFFFFF)",
		},
		EnableShellCompletion: true,
	}
}

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "print the version",
		Action: func(_ context.Context, cmd *cli.Command) error {
			_, err := fmt.Fprintf(cmd.Root().Writer, "binpath %s\n", binpath.VersionString())
			return err
		},
	}
}

// exitCode maps the result of a run to the process exit status.
// The unsupported-platform diagnostic has already been printed, so it is not logged again.
func exitCode(ctx context.Context, err error) int {
	switch {
	case ctx.Err() != nil:
		ctxlog.Error(ctx, "command terminated due to cancellation", "error", ctx.Err())
		return 1
	case errors.Is(err, platform.ErrUnsupportedPlatform):
		ctxlog.Debug(ctx, "unsupported platform", "error", err)
		return 1
	case err != nil:
		ctxlog.Error(ctx, "command failed", "error", err)
		return 1
	}

	ctxlog.Info(ctx, "command completed successfully")

	return 0
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)

	sigCh := signalbroker.New(ctx)

	go signalbroker.Watch(ctx, sigCh, cancel)

	err := newRootCmd(os.Stdout, os.Stderr).Run(ctx, os.Args)
	code := exitCode(ctx, err)

	signalbroker.Stop(sigCh)
	cancel()
	os.Exit(code)
}
