// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package env contains the command that prints a PATH assignment for the
// user's shell to evaluate.
package env

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/binpath/cmd/binpath/settings"
	"github.com/matt-FFFFFF/binpath/internal/platform"
	"github.com/urfave/cli/v3"
)

// New returns the env command.
func New() *cli.Command {
	return &cli.Command{
		Name:  "env",
		Usage: "print a PATH assignment for the current shell",
		Description: `Prints a line that prepends the output directory to the current PATH.
A process cannot change the environment of its parent shell, so evaluate it:

    eval "$(binpath env)"

The directory is not added again if PATH already contains it. Nothing is built.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := settings.Resolve(ctx, cmd)
			if err != nil {
				return err
			}

			w := cmd.Root().Writer

			line, err := settings.NewSetter(cfg, w).ShellLine(os.Getenv("PATH"))
			if err != nil {
				var unsupported *platform.UnsupportedError
				if errors.As(err, &unsupported) {
					fmt.Fprintln(cmd.Root().ErrWriter, unsupported.Diagnostic()) //nolint:errcheck
				}

				return err
			}

			_, err = fmt.Fprintln(w, line)

			return err
		},
	}
}
