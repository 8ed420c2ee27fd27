// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package pathlist manipulates PATH-style directory lists.
package pathlist

import (
	"path/filepath"
	"slices"
	"strings"
)

// Split splits list on sep, dropping empty entries.
func Split(list, sep string) []string {
	if list == "" {
		return nil
	}

	return slices.DeleteFunc(strings.Split(list, sep), func(s string) bool { return s == "" })
}

// Contains reports whether dir is an entry of list. Entries are compared after filepath.Clean.
func Contains(list, sep, dir string) bool {
	dir = filepath.Clean(dir)

	return slices.ContainsFunc(Split(list, sep), func(e string) bool {
		return filepath.Clean(e) == dir
	})
}

// Prepend returns list with dir as its first entry.
// Any existing occurrence of dir is moved to the front rather than duplicated.
func Prepend(list, sep, dir string) string {
	clean := filepath.Clean(dir)
	entries := slices.DeleteFunc(Split(list, sep), func(e string) bool {
		return filepath.Clean(e) == clean
	})

	return strings.Join(slices.Concat([]string{dir}, entries), sep)
}
