// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		id   string
		want Platform
	}{
		{id: "win32", want: Windows},
		{id: "windows", want: Windows},
		{id: "linux", want: Linux},
		{id: "darwin", want: Darwin},
		{id: "LINUX", want: Other},
		{id: " darwin ", want: Other},
		{id: "Win32", want: Other},
		{id: "freebsd", want: Other},
		{id: "", want: Other},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.id))
		})
	}
}

func TestPathCommand(t *testing.T) {
	const dir = "/home/user/proj/target/release"

	tests := []struct {
		id   string
		dir  string
		want string
		args []string
	}{
		{id: "win32", dir: `C:\proj\target\release`, want: `setx PATH C:\proj\target\release;%PATH%`, args: []string{"PATH", `C:\proj\target\release;%PATH%`}},
		{id: "linux", dir: dir, want: "export PATH " + dir + ":$PATH", args: []string{"PATH", dir + ":$PATH"}},
		{id: "darwin", dir: dir, want: "export PATH " + dir + ":$PATH", args: []string{"PATH", dir + ":$PATH"}},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			cmd, err := PathCommand(tt.id, tt.dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cmd.String())
			assert.Equal(t, tt.args, cmd.Args)
		})
	}
}

func TestPathCommand_PathWithSpacesIsVerbatim(t *testing.T) {
	cmd, err := PathCommand("linux", "/home/my user/target/release")
	require.NoError(t, err)
	assert.Equal(t, []string{"PATH", "/home/my user/target/release:$PATH"}, cmd.Args)
}

func TestPathCommand_Unsupported(t *testing.T) {
	cmd, err := PathCommand("plan9", "/x")

	require.ErrorIs(t, err, ErrUnsupportedPlatform)
	assert.Empty(t, cmd.Name)

	var unsupported *UnsupportedError

	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "plan9", unsupported.Identifier)
	assert.Equal(t,
		`Unsupported platform: "plan9", please update this script for your platform.`,
		unsupported.Diagnostic(),
	)
}

func TestUnsupportedError_IdentifierIsVerbatim(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{name: "quote", id: `my"os`},
		{name: "backslash", id: `c:\x`},
		{name: "tab", id: "a\tb"},
		{name: "upper case", id: "LINUX"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PathCommand(tt.id, "/x")

			var unsupported *UnsupportedError

			require.ErrorAs(t, err, &unsupported)
			assert.Equal(t,
				"Unsupported platform: \""+tt.id+"\", please update this script for your platform.",
				unsupported.Diagnostic(),
			)
			assert.Equal(t, "unsupported platform: \""+tt.id+"\"", unsupported.Error())
		})
	}
}

func TestListSeparator(t *testing.T) {
	assert.Equal(t, ";", Windows.ListSeparator())
	assert.Equal(t, ":", Linux.ListSeparator())
	assert.Equal(t, ":", Darwin.ListSeparator())
}

func TestShellLine(t *testing.T) {
	line, err := ShellLine(Linux, "/a b:/usr/bin")
	require.NoError(t, err)
	assert.Equal(t, `export PATH='/a b:/usr/bin'`, line)

	line, err = ShellLine(Darwin, "/it's")
	require.NoError(t, err)
	assert.Equal(t, `export PATH='/it'\''s'`, line)

	line, err = ShellLine(Windows, `C:\a;C:\b`)
	require.NoError(t, err)
	assert.Equal(t, `set PATH=C:\a;C:\b`, line)

	_, err = ShellLine(Other, "/x")
	require.ErrorIs(t, err, ErrUnsupportedPlatform)
}
