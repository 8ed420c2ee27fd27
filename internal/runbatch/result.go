// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"slices"
)

// ResultStatus is the outcome of a step.
type ResultStatus int

const (
	// ResultStatusSuccess means the step ran and succeeded.
	ResultStatusSuccess ResultStatus = iota
	// ResultStatusError means the step failed to start, errored or exited non-zero.
	ResultStatusError
	// ResultStatusUnknown is the state of a step that has not finished.
	ResultStatusUnknown
)

// String returns the string representation of the status.
func (s ResultStatus) String() string {
	switch s {
	case ResultStatusSuccess:
		return "success"
	case ResultStatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the outcome of running one step.
//
// A process that starts and exits non-zero has Status ResultStatusError and a
// nil Error. Error is reserved for failures to run the step at all.
type Result struct {
	Label    string
	ExitCode int
	Error    error
	Status   ResultStatus
}

// Results is a slice of Result pointers.
type Results []*Result

// HasError reports whether any result failed.
func (r Results) HasError() bool {
	return slices.ContainsFunc(r, func(v *Result) bool {
		return v.Error != nil || v.ExitCode != 0 || v.Status == ResultStatusError
	})
}

// First returns the first result, or an unknown result if r is empty.
func (r Results) First() *Result {
	if len(r) == 0 {
		return &Result{ExitCode: -1, Status: ResultStatusUnknown}
	}

	return r[0]
}
