// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/matt-FFFFFF/binpath/internal/ctxlog"
	"github.com/matt-FFFFFF/binpath/internal/signalbroker"
)

var _ Runnable = (*OSCommand)(nil)

var (
	// ErrCouldNotStartProcess is returned when the process could not be started.
	ErrCouldNotStartProcess = errors.New("could not start process")
	// ErrFailedToCreatePipe is returned when the operating system pipe could not be created.
	ErrFailedToCreatePipe = errors.New("failed to create pipe")
	// ErrContextDone is returned when the process was killed because the context ended.
	ErrContextDone = errors.New("context done, process killed")
	// ErrSignalReceived is returned when an operating system signal was forwarded to the process.
	ErrSignalReceived = errors.New("signal received")
	// ErrDuplicateSignalReceived is returned when a duplicate signal is received, forcing process termination.
	ErrDuplicateSignalReceived = errors.New("duplicate signal received, process forcefully terminated")
)

// OSCommand runs an executable and streams its output to Stdout and Stderr.
type OSCommand struct {
	*BaseCommand
	Path   string    // Full path of the executable.
	Args   []string  // Arguments, not including the executable name.
	Stdout io.Writer // Defaults to os.Stdout.
	Stderr io.Writer // Defaults to os.Stderr.
	sigCh  chan os.Signal
}

// String renders the command line as the user would type it.
func (c *OSCommand) String() string {
	return strings.Join(slices.Concat([]string{filepath.Base(c.Path)}, c.Args), " ")
}

// Run implements the Runnable interface for OSCommand.
//
// The call blocks until the process exits. While it runs, termination signals
// are forwarded to the child; a second signal of the same kind, or the end of
// ctx, kills it.
func (c *OSCommand) Run(ctx context.Context) Results {
	logger := ctxlog.Logger(ctx).With("runnableType", "OSCommand", "label", c.GetLabel())

	cwd := ""
	env := os.Environ()

	if c.BaseCommand != nil {
		cwd = c.Cwd
		for k, v := range c.Env {
			env = append(env, fmt.Sprintf("%s=%s", k, v))
		}
	}

	logger.Debug("command info", "path", c.Path, "cwd", cwd, "args", c.Args)

	res := &Result{
		Label:  c.GetLabel(),
		Status: ResultStatusUnknown,
	}

	fail := func(err error) Results {
		res.Error = err
		res.ExitCode = -1
		res.Status = ResultStatusError

		return Results{res}
	}

	rOut, wOut, err := os.Pipe()
	if err != nil {
		return fail(errors.Join(ErrFailedToCreatePipe, err))
	}

	rErr, wErr, err := os.Pipe()
	if err != nil {
		closeAll(rOut, wOut)
		return fail(errors.Join(ErrFailedToCreatePipe, err))
	}

	ps, err := os.StartProcess(c.Path, slices.Concat([]string{filepath.Base(c.Path)}, c.Args), &os.ProcAttr{
		Dir:   cwd,
		Env:   env,
		Files: []*os.File{os.Stdin, wOut, wErr},
	})

	// The child holds its own copies of the write ends.
	closeAll(wOut, wErr)

	if err != nil {
		closeAll(rOut, rErr)
		return fail(errors.Join(ErrCouldNotStartProcess, err))
	}

	logger.Info("process started", "pid", ps.Pid, "command", c.String())

	var copies sync.WaitGroup

	copies.Add(2)

	go copyStream(&copies, writerOr(c.Stdout, os.Stdout), rOut)
	go copyStream(&copies, writerOr(c.Stderr, os.Stderr), rErr)

	sigCh := c.sigCh
	if sigCh == nil {
		sigCh = signalbroker.New(ctx)
		defer signalbroker.Stop(sigCh)
	}

	done := make(chan struct{})
	watchdogDone := make(chan struct{})

	var watchdogErr error

	go func() {
		defer close(watchdogDone)

		seen := make(map[os.Signal]struct{})

		for {
			select {
			case <-done:
				return

			case s := <-sigCh:
				if _, dup := seen[s]; dup {
					logger.Info("received duplicate signal, killing process", "signal", s.String())
					killPs(ctx, ps)

					watchdogErr = ErrDuplicateSignalReceived

					return
				}

				seen[s] = struct{}{}
				watchdogErr = ErrSignalReceived

				logger.Info("forwarding signal", "signal", s.String())

				if err := ps.Signal(s); err != nil {
					logger.Info("failed to send signal", "signal", s.String(), "error", err)
				}

			case <-ctx.Done():
				logger.Info("context done, killing process")
				killPs(ctx, ps)

				watchdogErr = errors.Join(ErrContextDone, ctx.Err())

				return
			}
		}
	}()

	state, psErr := ps.Wait()

	close(done)
	<-watchdogDone
	copies.Wait()
	closeAll(rOut, rErr)

	if state != nil {
		res.ExitCode = state.ExitCode()
	}

	res.Error = errors.Join(psErr, watchdogErr)
	if res.Error != nil {
		res.ExitCode = -1
	}

	logger.Debug("process finished", "exitCode", res.ExitCode, "error", res.Error)

	if res.Error == nil && res.ExitCode == 0 {
		res.Status = ResultStatusSuccess
	} else {
		res.Status = ResultStatusError
	}

	return Results{res}
}

func writerOr(w io.Writer, def io.Writer) io.Writer {
	if w == nil {
		return def
	}

	return w
}

func copyStream(wg *sync.WaitGroup, dst io.Writer, src io.Reader) {
	defer wg.Done()

	_, _ = io.Copy(dst, src)
}

func closeAll(files ...*os.File) {
	for _, f := range files {
		_ = f.Close()
	}
}

func killPs(ctx context.Context, ps *os.Process) {
	if err := ps.Kill(); err != nil {
		if errors.Is(err, os.ErrProcessDone) {
			ctxlog.Debug(ctx, "process already done", "pid", ps.Pid)
			return
		}

		ctxlog.Error(ctx, "process kill error", "pid", ps.Pid, "error", err)

		return
	}

	ctxlog.Info(ctx, "process killed", "pid", ps.Pid)
}
