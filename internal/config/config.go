// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config holds the settings of a binpath run.
//
// Settings are layered: Default, then an optional YAML or HCL file, then
// command line flags. Only the first two layers live here.
package config

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

const (
	// DefaultBuildTool is the build tool invoked when none is configured.
	DefaultBuildTool = "cargo"
	// DefaultTarget is the binary target built when none is configured.
	DefaultTarget = "bin2const"
	// DefaultOutputDir is where the build tool writes release artifacts.
	DefaultOutputDir = "target/release"
)

// Config is the resolved configuration of a run.
type Config struct {
	// BuildTool is the executable that performs the build.
	BuildTool string
	// Target is the name passed to --bin.
	Target string
	// OutputDir is the release output directory, relative to the working directory.
	OutputDir string
	// Platform overrides the host platform identifier when non-empty.
	Platform string
	// ContainErrors reports path-mutation failures instead of returning them.
	ContainErrors bool
	// CheckBuild makes a failed build fatal.
	CheckBuild bool
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		BuildTool:     DefaultBuildTool,
		Target:        DefaultTarget,
		OutputDir:     DefaultOutputDir,
		ContainErrors: true,
	}
}

// BuildArgs returns the arguments passed to the build tool.
func (c *Config) BuildArgs() []string {
	return []string{"build", "--release", "--bin", c.Target}
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if strings.TrimSpace(c.BuildTool) == "" {
		result = multierror.Append(result, fmt.Errorf("%w: build tool must not be empty", ErrInvalidConfig))
	}

	switch {
	case strings.TrimSpace(c.Target) == "":
		result = multierror.Append(result, fmt.Errorf("%w: target must not be empty", ErrInvalidConfig))
	case strings.ContainsAny(c.Target, " \t\n"):
		result = multierror.Append(result, fmt.Errorf("%w: target %q must not contain whitespace", ErrInvalidConfig, c.Target))
	}

	if strings.TrimSpace(c.OutputDir) == "" {
		result = multierror.Append(result, fmt.Errorf("%w: output directory must not be empty", ErrInvalidConfig))
	}

	return result.ErrorOrNil()
}
