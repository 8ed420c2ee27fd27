// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package setter

import (
	"errors"

	"github.com/matt-FFFFFF/binpath/internal/pathlist"
	"github.com/matt-FFFFFF/binpath/internal/platform"
)

// Plan describes what Run would do, without doing it.
type Plan struct {
	WorkDir     string
	Platform    string
	Build       platform.Command
	OutputDir   string
	PathCommand platform.Command
	// Unsupported is set instead of PathCommand when the platform has no path command.
	Unsupported *platform.UnsupportedError
}

// Plan resolves the commands Run would execute in the current working directory.
func (s *Setter) Plan() (*Plan, error) {
	cwd, err := Getwd()
	if err != nil {
		return nil, errors.Join(ErrResolvePath, err)
	}

	dir, err := s.ResolvePath(cwd)
	if err != nil {
		return nil, err
	}

	p := &Plan{
		WorkDir:   cwd,
		Platform:  s.PlatformID(),
		Build:     platform.Command{Name: s.cfg.BuildTool, Args: s.cfg.BuildArgs()},
		OutputDir: dir,
	}

	pc, err := platform.PathCommand(p.Platform, dir)
	if err != nil {
		if !errors.As(err, &p.Unsupported) {
			return nil, err
		}

		return p, nil
	}

	p.PathCommand = pc

	return p, nil
}

// ShellLine returns a line that, evaluated by the user's shell, prepends the
// output directory to currentPath. The directory is not added twice.
func (s *Setter) ShellLine(currentPath string) (string, error) {
	cwd, err := Getwd()
	if err != nil {
		return "", errors.Join(ErrResolvePath, err)
	}

	dir, err := s.ResolvePath(cwd)
	if err != nil {
		return "", err
	}

	id := s.PlatformID()

	p := platform.Parse(id)
	if p == platform.Other {
		return "", &platform.UnsupportedError{Identifier: id}
	}

	return platform.ShellLine(p, pathlist.Prepend(currentPath, p.ListSeparator(), dir))
}
