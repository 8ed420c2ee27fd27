// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"
)

var (
	// ErrInvalidConfig is wrapped by every validation error.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrReadConfigFile is returned when the config file cannot be read.
	ErrReadConfigFile = errors.New("failed to read config file")
	// ErrParseConfigFile is returned when the config file cannot be decoded.
	ErrParseConfigFile = errors.New("failed to parse config file")
	// ErrUnknownConfigFormat is returned for files that are neither YAML nor HCL.
	ErrUnknownConfigFormat = errors.New("unknown config file format, expected .yaml, .yml or .hcl")
)

// FileNames are the config files looked for in the working directory, in order.
var FileNames = []string{".binpath.yaml", ".binpath.yml", ".binpath.hcl"}

// FsFactory returns the filesystem config files are read from.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// file mirrors Config with optional fields so absent keys keep their defaults.
type file struct {
	BuildTool     *string `yaml:"build_tool"     hcl:"build_tool,optional"`
	Target        *string `yaml:"target"         hcl:"target,optional"`
	OutputDir     *string `yaml:"output_dir"     hcl:"output_dir,optional"`
	Platform      *string `yaml:"platform"       hcl:"platform,optional"`
	ContainErrors *bool   `yaml:"contain_errors" hcl:"contain_errors,optional"`
	CheckBuild    *bool   `yaml:"check_build"    hcl:"check_build,optional"`
}

// Discover returns the first of FileNames present in dir.
func Discover(dir string) (string, bool) {
	fs := FsFactory()

	for _, name := range FileNames {
		p := filepath.Join(dir, name)
		if ok, _ := afero.Exists(fs, p); ok {
			return p, true
		}
	}

	return "", false
}

// Load returns Default overlaid with the settings in the file at path.
func Load(path string) (*Config, error) {
	src, err := afero.ReadFile(FsFactory(), path)
	if err != nil {
		return nil, errors.Join(ErrReadConfigFile, err)
	}

	return Parse(path, src)
}

// Parse decodes src as YAML or HCL, chosen by the extension of name, and
// overlays it on Default.
func Parse(name string, src []byte) (*Config, error) {
	var (
		f   file
		err error
	)

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		err = yaml.UnmarshalWithOptions(src, &f, yaml.DisallowUnknownField())
	case ".hcl":
		err = hclsimple.Decode(filepath.Base(name), src, nil, &f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownConfigFormat, name)
	}

	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrParseConfigFile, name, err)
	}

	cfg := Default()
	f.apply(cfg)

	return cfg, nil
}

func (f *file) apply(cfg *Config) {
	setIf(&cfg.BuildTool, f.BuildTool)
	setIf(&cfg.Target, f.Target)
	setIf(&cfg.OutputDir, f.OutputDir)
	setIf(&cfg.Platform, f.Platform)
	setIf(&cfg.ContainErrors, f.ContainErrors)
	setIf(&cfg.CheckBuild, f.CheckBuild)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
