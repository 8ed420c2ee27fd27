// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package binpath provides the version and commit information for the binpath application.
package binpath

import "fmt"

var (
	// Version is set during the build process.
	Version = "dev"
	// Commit is set during the build process.
	Commit = "unknown"
)

// VersionString is the version as shown by `binpath version`.
func VersionString() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
