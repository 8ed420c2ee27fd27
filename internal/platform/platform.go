// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package platform maps a host platform identifier to the command that
// prepends a directory to PATH on that platform.
//
// Identifiers are accepted in both the Go spelling (runtime.GOOS, e.g.
// "windows") and the conventional interpreter spelling ("win32").
package platform

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Platform is the closed set of host families binpath knows how to handle.
type Platform int

const (
	// Other is any platform without a path-mutation command.
	Other Platform = iota
	// Windows persists PATH for the user with setx.
	Windows
	// Linux exports PATH.
	Linux
	// Darwin exports PATH, exactly like Linux.
	Darwin
)

// ErrUnsupportedPlatform is matched by every *UnsupportedError.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// UnsupportedError carries the identifier that could not be dispatched.
type UnsupportedError struct {
	Identifier string
}

// Error implements the error interface.
func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported platform: \"%s\"", e.Identifier)
}

// Is makes errors.Is(err, ErrUnsupportedPlatform) true.
func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupportedPlatform
}

// Diagnostic is the line printed before exiting on an unsupported platform.
// The identifier is printed verbatim, without escaping.
func (e *UnsupportedError) Diagnostic() string {
	return fmt.Sprintf("Unsupported platform: \"%s\", please update this script for your platform.", e.Identifier)
}

// Host returns the identifier of the running platform.
func Host() string {
	return runtime.GOOS
}

// Parse maps an identifier to a Platform. Matching is exact; "windows" is
// accepted as the GOOS spelling of "win32". Anything else maps to Other.
func Parse(id string) Platform {
	switch id {
	case "win32", "windows":
		return Windows
	case "linux":
		return Linux
	case "darwin":
		return Darwin
	default:
		return Other
	}
}

// String returns the canonical identifier.
func (p Platform) String() string {
	switch p {
	case Windows:
		return "win32"
	case Linux:
		return "linux"
	case Darwin:
		return "darwin"
	default:
		return "other"
	}
}

// ListSeparator is the separator of PATH entries on the platform.
func (p Platform) ListSeparator() string {
	if p == Windows {
		return ";"
	}

	return ":"
}

// Command is an executable name and its arguments.
type Command struct {
	Name string
	Args []string
}

// String joins the name and arguments with single spaces.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// PathCommand builds the command that prepends dir to PATH on the platform named by id.
// The PATH reference in the value (%PATH% or $PATH) is passed literally, unexpanded.
func PathCommand(id, dir string) (Command, error) {
	switch Parse(id) {
	case Windows:
		return Command{Name: "setx", Args: []string{"PATH", dir + ";%PATH%"}}, nil
	case Linux, Darwin:
		return Command{Name: "export", Args: []string{"PATH", dir + ":$PATH"}}, nil
	default:
		return Command{}, &UnsupportedError{Identifier: id}
	}
}

// ShellLine returns a line that sets PATH to value in the user's own shell,
// for use with eval on Unix or in cmd.exe on Windows.
func ShellLine(p Platform, value string) (string, error) {
	switch p {
	case Windows:
		return fmt.Sprintf("set PATH=%s", value), nil
	case Linux, Darwin:
		return fmt.Sprintf("export PATH=%s", shellQuote(value)), nil
	default:
		return "", &UnsupportedError{Identifier: p.String()}
	}
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
