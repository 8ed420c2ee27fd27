// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"bytes"
	"context"
	"os"
	"runtime"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func skipOnWindows(t *testing.T) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("skipping on windows, uses /bin/sh")
	}
}

func newTestOSCommand(label, path string, args ...string) (*OSCommand, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	return &OSCommand{
		BaseCommand: NewBaseCommand(label, "", nil),
		Path:        path,
		Args:        args,
		Stdout:      stdout,
		Stderr:      stderr,
		sigCh:       make(chan os.Signal, 1),
	}, stdout, stderr
}

func TestOSCommandRun_Success(t *testing.T) {
	skipOnWindows(t)
	defer goleak.VerifyNone(t)

	cmd, stdout, _ := newTestOSCommand("echo test", "/bin/sh", "-c", "echo hello")

	results := cmd.Run(context.Background())
	require.Len(t, results, 1)

	res := results[0]
	assert.Equal(t, 0, res.ExitCode)
	require.NoError(t, res.Error)
	assert.Equal(t, ResultStatusSuccess, res.Status)
	assert.Equal(t, "hello\n", stdout.String())
}

func TestOSCommandRun_NonZeroExitIsNotAnError(t *testing.T) {
	skipOnWindows(t)
	defer goleak.VerifyNone(t)

	cmd, _, stderr := newTestOSCommand("fail test", "/bin/sh", "-c", "echo oops >&2; exit 3")

	res := cmd.Run(context.Background())[0]
	assert.Equal(t, 3, res.ExitCode)
	require.NoError(t, res.Error)
	assert.Equal(t, ResultStatusError, res.Status)
	assert.Equal(t, "oops\n", stderr.String())
}

func TestOSCommandRun_NotFound(t *testing.T) {
	defer goleak.VerifyNone(t)

	cmd, _, _ := newTestOSCommand("notfound test", "/not/a/real/command")

	res := cmd.Run(context.Background())[0]

	var pathErr *os.PathError

	require.ErrorAs(t, res.Error, &pathErr)
	require.ErrorIs(t, res.Error, ErrCouldNotStartProcess)
	assert.Equal(t, -1, res.ExitCode)
	assert.Equal(t, ResultStatusError, res.Status)
}

func TestOSCommandRun_EnvAndCwd(t *testing.T) {
	skipOnWindows(t)
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	cmd, stdout, _ := newTestOSCommand("env and cwd", "/bin/sh", "-c", "echo $FOO; pwd")
	cmd.Cwd = dir
	cmd.Env["FOO"] = "BAR"

	res := cmd.Run(context.Background())[0]
	require.NoError(t, res.Error)
	assert.Contains(t, stdout.String(), "BAR")
	assert.Contains(t, stdout.String(), dir)
}

func TestOSCommandRun_ContextCancelled(t *testing.T) {
	skipOnWindows(t)
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	cmd, _, _ := newTestOSCommand("sleep test", "/bin/sh", "-c", "exec sleep 10")

	start := time.Now()
	res := cmd.Run(ctx)[0]

	assert.Less(t, time.Since(start), 5*time.Second)
	require.ErrorIs(t, res.Error, ErrContextDone)
	assert.Equal(t, -1, res.ExitCode)
	assert.Equal(t, ResultStatusError, res.Status)
}

func TestOSCommandRun_DuplicateSignalKills(t *testing.T) {
	skipOnWindows(t)
	defer goleak.VerifyNone(t)

	// The child ignores SIGINT so only the kill on the second signal ends it.
	cmd, _, _ := newTestOSCommand("signal test", "/bin/sh", "-c", "trap '' INT; exec sleep 10")
	cmd.sigCh <- syscall.SIGINT

	go func() {
		time.Sleep(200 * time.Millisecond)
		cmd.sigCh <- syscall.SIGINT
	}()

	res := cmd.Run(context.Background())[0]
	require.ErrorIs(t, res.Error, ErrDuplicateSignalReceived)
	assert.Equal(t, -1, res.ExitCode)
}

func TestOSCommandString(t *testing.T) {
	cmd := &OSCommand{Path: "/usr/bin/cargo", Args: []string{"build", "--release", "--bin", "bin2const"}}
	assert.Equal(t, "cargo build --release --bin bin2const", cmd.String())
}
