// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package commandinpath turns a bare command name into a runnable OSCommand by
// searching the PATH environment variable.
package commandinpath

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/matt-FFFFFF/binpath/internal/runbatch"
	"github.com/spf13/afero"
)

// ErrCommandNotFound is returned when no executable with the given name is on PATH.
var ErrCommandNotFound = errors.New("command not found in PATH")

// FsFactory returns the filesystem searched by Find.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// GOOS is the operating system whose lookup rules apply.
var GOOS = runtime.GOOS

// windowsExts are tried, in order, when a name has no extension on Windows.
var windowsExts = []string{".com", ".exe", ".bat", ".cmd"}

// Find returns the full path of command.
// A name containing a path separator is checked as given and not searched for.
func Find(command string) (string, error) {
	if command == "" {
		return "", fmt.Errorf("%w: empty command name", ErrCommandNotFound)
	}

	fs := FsFactory()

	if strings.ContainsAny(command, `/\`) {
		if p, ok := executable(fs, command); ok {
			return p, nil
		}

		return "", fmt.Errorf("%w: %s", ErrCommandNotFound, command)
	}

	for dir := range strings.SplitSeq(os.Getenv("PATH"), string(os.PathListSeparator)) {
		if dir == "" {
			continue
		}

		if p, ok := executable(fs, filepath.Join(dir, command)); ok {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrCommandNotFound, command)
}

// New creates an OSCommand for command with the given label, working directory and arguments.
func New(label, command, cwd string, args []string) (*runbatch.OSCommand, error) {
	path, err := Find(command)
	if err != nil {
		return nil, err
	}

	return &runbatch.OSCommand{
		BaseCommand: runbatch.NewBaseCommand(label, cwd, nil),
		Path:        path,
		Args:        args,
	}, nil
}

func executable(fs afero.Fs, path string) (string, bool) {
	candidates := []string{path}
	if GOOS == "windows" && filepath.Ext(path) == "" {
		candidates = candidates[:0]
		for _, ext := range windowsExts {
			candidates = append(candidates, path+ext)
		}
	}

	for _, c := range candidates {
		info, err := fs.Stat(c)
		if err != nil || info.IsDir() {
			continue
		}

		if GOOS != "windows" && info.Mode()&0o111 == 0 {
			continue
		}

		return c, true
	}

	return "", false
}
