// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a slog logger in a context.Context.
//
// The default logger writes to stderr through PrettyHandler. The level is read
// once from the BINPATH_LOG_LEVEL environment variable ("DEBUG", "INFO",
// "WARN" or "ERROR") and defaults to WARN, so a successful run prints nothing
// of its own.
package ctxlog
