// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/binpath/internal/ctxlog"
)

var _ Runnable = (*FunctionCommand)(nil)

// ErrFunctionCmdPanic is the error returned when a function command panics.
type ErrFunctionCmdPanic struct {
	v any
}

// NewErrFunctionCmdPanic creates a new ErrFunctionCmdPanic with the given value.
func NewErrFunctionCmdPanic(v any) error {
	return &ErrFunctionCmdPanic{v: v}
}

// Error implements the error interface.
func (e *ErrFunctionCmdPanic) Error() string {
	return fmt.Sprintf("function command panic: %v", e.v)
}

// Unwrap returns the panic value if it was an error.
func (e *ErrFunctionCmdPanic) Unwrap() error {
	err, _ := e.v.(error)
	return err
}

// FunctionCommandFunc is the function run by a FunctionCommand. It receives
// the command's working directory.
type FunctionCommandFunc func(ctx context.Context, cwd string) error

// FunctionCommand runs a Go function as a step.
type FunctionCommand struct {
	*BaseCommand
	Func FunctionCommandFunc
}

// Run implements the Runnable interface for FunctionCommand.
// A panic in Func is recovered and reported as an ErrFunctionCmdPanic.
func (f *FunctionCommand) Run(ctx context.Context) Results {
	logger := ctxlog.Logger(ctx).With("runnableType", "FunctionCommand", "label", f.GetLabel())

	if f.Func == nil {
		logger.Debug("no function to run, returning success")
		return Results{{Label: f.GetLabel(), Status: ResultStatusSuccess}}
	}

	errCh := make(chan error, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("function command panicked", "panic", r)
				errCh <- NewErrFunctionCmdPanic(r)
			}
		}()

		cwd := ""
		if f.BaseCommand != nil {
			cwd = f.Cwd
		}

		errCh <- f.Func(ctx, cwd)
	}()

	var err error

	select {
	case err = <-errCh:
	case <-ctx.Done():
		err = ctx.Err()
	}

	if err != nil {
		logger.Debug("function command failed", "error", err)

		return Results{{
			Label:    f.GetLabel(),
			ExitCode: -1,
			Error:    err,
			Status:   ResultStatusError,
		}}
	}

	return Results{{Label: f.GetLabel(), Status: ResultStatusSuccess}}
}
