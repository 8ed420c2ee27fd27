// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package setter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/matt-FFFFFF/binpath/internal/commandinpath"
	"github.com/matt-FFFFFF/binpath/internal/config"
	"github.com/matt-FFFFFF/binpath/internal/ctxlog"
	"github.com/matt-FFFFFF/binpath/internal/platform"
	"github.com/matt-FFFFFF/binpath/internal/runbatch"
	"github.com/spf13/afero"
)

const (
	buildLabel   = "build"
	setPathLabel = "set path"
)

var (
	// ErrBuild is returned when the build tool could not be run, or failed with CheckBuild set.
	ErrBuild = errors.New("build failed")
	// ErrResolvePath is returned when the output directory cannot be made absolute.
	ErrResolvePath = errors.New("failed to resolve output directory")
	// ErrSetPath is matched by every *SetPathError.
	ErrSetPath = errors.New("failed to set path")
)

// SetPathError is a failure to construct or execute the path-mutation command.
type SetPathError struct {
	Err error
}

// Error implements the error interface.
func (e *SetPathError) Error() string {
	return fmt.Sprintf("%s: %s", ErrSetPath, e.Err)
}

// Unwrap returns the underlying failure.
func (e *SetPathError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrSetPath) true.
func (e *SetPathError) Is(target error) bool {
	return target == ErrSetPath
}

// CommandFactory creates the runnable for an external command.
type CommandFactory func(label, command, cwd string, args []string) (runbatch.Runnable, error)

// NewOSCommand is the default CommandFactory. It looks command up on PATH.
func NewOSCommand(label, command, cwd string, args []string) (runbatch.Runnable, error) {
	cmd, err := commandinpath.New(label, command, cwd, args)
	if err != nil {
		return nil, err
	}

	return cmd, nil
}

// FsFactory returns the filesystem used to check the output directory.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Getwd returns the working directory the output directory is resolved against.
var Getwd = os.Getwd

// Setter runs the build-and-path-set procedure.
type Setter struct {
	cfg        *config.Config
	out        io.Writer
	newCommand CommandFactory
}

// Option configures a Setter.
type Option func(*Setter)

// WithCommandFactory replaces the factory used for the build and path commands.
func WithCommandFactory(f CommandFactory) Option {
	return func(s *Setter) {
		s.newCommand = f
	}
}

// New creates a Setter. Diagnostics are written to out.
func New(cfg *config.Config, out io.Writer, opts ...Option) *Setter {
	s := &Setter{
		cfg:        cfg,
		out:        out,
		newCommand: NewOSCommand,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// PlatformID is the configured platform identifier, or the host's.
func (s *Setter) PlatformID() string {
	if s.cfg.Platform != "" {
		return s.cfg.Platform
	}

	return platform.Host()
}

// Run builds the target, then sets PATH.
func (s *Setter) Run(ctx context.Context) error {
	// The build runs even without a working directory; the child then
	// inherits the process's own.
	cwd, wdErr := Getwd()
	if wdErr != nil {
		cwd = ""
	}

	if err := s.Build(ctx, cwd); err != nil {
		return err
	}

	if wdErr != nil {
		return errors.Join(ErrResolvePath, wdErr)
	}

	dir, err := s.ResolvePath(cwd)
	if err != nil {
		return err
	}

	if ok, _ := afero.DirExists(FsFactory(), dir); !ok {
		ctxlog.Warn(ctx, "output directory does not exist", "dir", dir)
	}

	err = s.SetPath(ctx, cwd, dir)

	var unsupported *platform.UnsupportedError
	if errors.As(err, &unsupported) {
		fmt.Fprintln(s.out, unsupported.Diagnostic()) //nolint:errcheck
		return err
	}

	var failed *SetPathError
	if errors.As(err, &failed) && s.cfg.ContainErrors {
		ctxlog.Debug(ctx, "path error contained", "error", failed.Err)
		fmt.Fprintf(s.out, "Error setting path: %s, please set it manually.\n", failed.Err) //nolint:errcheck

		return nil
	}

	return err
}

// Build runs the build tool once. A build that cannot be started is an error;
// a build that exits non-zero is only an error with CheckBuild set.
func (s *Setter) Build(ctx context.Context, cwd string) error {
	cmd, err := s.newCommand(buildLabel, s.cfg.BuildTool, cwd, s.cfg.BuildArgs())
	if err != nil {
		return errors.Join(ErrBuild, err)
	}

	res := cmd.Run(ctx).First()
	if res.Error != nil {
		return errors.Join(ErrBuild, res.Error)
	}

	if res.ExitCode != 0 {
		ctxlog.Warn(ctx, "build exited with non-zero status", "tool", s.cfg.BuildTool, "exitCode", res.ExitCode)

		if s.cfg.CheckBuild {
			return fmt.Errorf("%w: %s exited with status %d", ErrBuild, s.cfg.BuildTool, res.ExitCode)
		}
	}

	return nil
}

// ResolvePath returns the absolute output directory for the working directory cwd.
func (s *Setter) ResolvePath(cwd string) (string, error) {
	dir := s.cfg.OutputDir
	if !filepath.IsAbs(dir) {
		if cwd == "" {
			return "", fmt.Errorf("%w: empty working directory", ErrResolvePath)
		}

		dir = filepath.Join(cwd, dir)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Join(ErrResolvePath, err)
	}

	return abs, nil
}

// SetPath dispatches on the platform and runs its path-mutation command.
//
// The step runs inside a runbatch.FunctionCommand so a panic is reported as
// an error like any other failure. Unsupported platforms are returned as
// *platform.UnsupportedError; all other failures as *SetPathError.
func (s *Setter) SetPath(ctx context.Context, cwd, dir string) error {
	step := &runbatch.FunctionCommand{
		BaseCommand: runbatch.NewBaseCommand(setPathLabel, cwd, nil),
		Func: func(ctx context.Context, cwd string) error {
			pc, err := platform.PathCommand(s.PlatformID(), dir)
			if err != nil {
				return err
			}

			ctxlog.Debug(ctx, "setting path", "command", pc.String())

			cmd, err := s.newCommand(setPathLabel, pc.Name, cwd, pc.Args)
			if err != nil {
				return err
			}

			res := cmd.Run(ctx).First()
			if res.Error != nil {
				return res.Error
			}

			if res.ExitCode != 0 {
				ctxlog.Warn(ctx, "path command exited with non-zero status", "command", pc.Name, "exitCode", res.ExitCode)
			}

			return nil
		},
	}

	err := step.Run(ctx).First().Error
	if err == nil || errors.Is(err, platform.ErrUnsupportedPlatform) {
		return err
	}

	return &SetPathError{Err: err}
}
