// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color wraps strings in ANSI escape codes for console output.
// Output is coloured when FORCE_COLOR is set, or when stdout is a terminal and
// NO_COLOR is not set.
package color
