// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/binpath/internal/ctxlog"
)

// Watch calls cancel when the same signal arrives twice on sigCh.
// It returns when that happens, when ctx is done or when sigCh is closed.
func Watch(ctx context.Context, sigCh <-chan os.Signal, cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})

	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-sigCh:
			if !ok {
				return
			}

			if _, dup := seen[sig]; dup {
				ctxlog.Info(ctx, "received second signal of type, forcefully terminating", "signal", sig.String())
				cancel()

				return
			}

			ctxlog.Info(ctx, "received first signal of type, waiting for child to exit", "signal", sig.String())

			seen[sig] = struct{}{}
		}
	}
}
