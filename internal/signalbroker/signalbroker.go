// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker relays termination signals to whoever is running a
// child process.
//
// The first signal of a kind is forwarded to the child so it can shut down
// cleanly; Watch cancels the root context on the second signal of the same
// kind.
//
// binpath uses two registrations: main watches for a repeated Ctrl-C to
// abandon the run, and each OSCommand forwards the first one to the build
// tool so cargo can stop cleanly before the path step is reached.
package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/matt-FFFFFF/binpath/internal/ctxlog"
)

var termSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
}

// New registers a buffered channel for sigs, or the termination signals if none are given.
// Release it with Stop.
func New(ctx context.Context, sigs ...os.Signal) chan os.Signal {
	ch := make(chan os.Signal, 1)

	if len(sigs) == 0 {
		sigs = termSignals
	}

	ctxlog.Debug(ctx, "creating signal broker", "signals", sigs)
	signal.Notify(ch, sigs...)

	return ch
}

// Stop stops signal delivery to ch.
func Stop(ch chan os.Signal) {
	signal.Stop(ch)
}
