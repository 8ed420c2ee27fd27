// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package runbatch runs external processes and in-process functions as steps
// and reports what happened to each of them as a Result.
package runbatch
