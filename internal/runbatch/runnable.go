// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"context"
)

// Runnable is a single step: an external process or an in-process function.
type Runnable interface {
	// Run executes the step and blocks until it has finished.
	Run(context.Context) Results
	// GetLabel returns a human readable name for the step.
	GetLabel() string
}
