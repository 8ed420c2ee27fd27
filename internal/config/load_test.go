// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"path/filepath"
	"testing"

	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubFs(t *testing.T, files map[string]string) *gostub.Stubs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}

	return gostub.Stub(&FsFactory, func() afero.Fs { return fs })
}

func TestLoad_YAML(t *testing.T) {
	stubs := stubFs(t, map[string]string{
		"/proj/.binpath.yaml": "target: mytool\ncontain_errors: false\n",
	})
	defer stubs.Reset()

	cfg, err := Load("/proj/.binpath.yaml")
	require.NoError(t, err)

	assert.Equal(t, "mytool", cfg.Target)
	assert.False(t, cfg.ContainErrors)
	assert.Equal(t, DefaultBuildTool, cfg.BuildTool, "absent keys keep defaults")
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
}

func TestLoad_YAMLUnknownField(t *testing.T) {
	stubs := stubFs(t, map[string]string{
		"/proj/.binpath.yml": "targte: typo\n",
	})
	defer stubs.Reset()

	_, err := Load("/proj/.binpath.yml")
	require.ErrorIs(t, err, ErrParseConfigFile)
}

func TestLoad_HCL(t *testing.T) {
	stubs := stubFs(t, map[string]string{
		"/proj/.binpath.hcl": `
build_tool  = "cross"
output_dir  = "target/x86_64-unknown-linux-gnu/release"
platform    = "linux"
check_build = true
`,
	})
	defer stubs.Reset()

	cfg, err := Load("/proj/.binpath.hcl")
	require.NoError(t, err)

	assert.Equal(t, "cross", cfg.BuildTool)
	assert.Equal(t, "target/x86_64-unknown-linux-gnu/release", cfg.OutputDir)
	assert.Equal(t, "linux", cfg.Platform)
	assert.True(t, cfg.CheckBuild)
	assert.True(t, cfg.ContainErrors)
	assert.Equal(t, DefaultTarget, cfg.Target)
}

func TestLoad_HCLSyntaxError(t *testing.T) {
	stubs := stubFs(t, map[string]string{"/proj/.binpath.hcl": `target = `})
	defer stubs.Reset()

	_, err := Load("/proj/.binpath.hcl")
	require.ErrorIs(t, err, ErrParseConfigFile)
}

func TestLoad_Errors(t *testing.T) {
	stubs := stubFs(t, map[string]string{"/proj/binpath.toml": `target = "x"`})
	defer stubs.Reset()

	_, err := Load("/proj/missing.yaml")
	require.ErrorIs(t, err, ErrReadConfigFile)

	_, err = Load("/proj/binpath.toml")
	require.ErrorIs(t, err, ErrUnknownConfigFormat)
}

func TestDiscover(t *testing.T) {
	stubs := stubFs(t, map[string]string{
		"/proj/.binpath.hcl": "",
		"/both/.binpath.hcl": "",
		"/both/.binpath.yml": "",
	})
	defer stubs.Reset()

	p, ok := Discover("/proj")
	assert.True(t, ok)
	assert.Equal(t, filepath.Join("/proj", ".binpath.hcl"), p)

	p, ok = Discover("/both")
	assert.True(t, ok)
	assert.Equal(t, filepath.Join("/both", ".binpath.yml"), p, "yaml is preferred over hcl")

	_, ok = Discover("/empty")
	assert.False(t, ok)
}
