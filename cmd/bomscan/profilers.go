package main

import (
	"context"
	"log/slog"
	"os"
	"runtime/pprof"
)

// profiler captures an optional pprof profile over the lifetime of a scan.
// With an empty path, a profiler is inert and [profiler.Stop] returns at once.
//
//nolint:containedctx
type profiler struct {
	ctx      context.Context
	cancel   context.CancelFunc
	doneChan chan struct{}
}

func newProfiler(ctx context.Context, captureFunc func(ctx context.Context)) *profiler {
	prof := &profiler{
		doneChan: make(chan struct{}),
	}
	prof.ctx, prof.cancel = context.WithCancel(ctx)

	go func() {
		defer close(prof.doneChan)
		captureFunc(prof.ctx)
	}()

	return prof
}

// Stop ends the capture and blocks until the profile was written out.
func (prof *profiler) Stop() {
	prof.cancel()
	<-prof.doneChan
}

// newCPUProfiler starts capturing a CPU profile of the running scan into path.
func newCPUProfiler(ctx context.Context, path *string) *profiler {
	return newProfiler(ctx, func(ctx context.Context) {
		if path == nil || *path == "" {
			return
		}

		f, err := os.Create(*path)
		if err != nil {
			slog.Error("Could not create the scan's CPU profile.",
				"err", err,
				"path", *path,
			)

			return
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			slog.Error("Could not start the scan's CPU profile.",
				"err", err,
			)

			return
		}
		defer pprof.StopCPUProfile()

		<-ctx.Done()
	})
}

// newAllocProfiler captures an allocation profile of the scan into path, once
// the scan has ended.
func newAllocProfiler(ctx context.Context, path *string) *profiler {
	return newProfiler(ctx, func(ctx context.Context) {
		if path == nil || *path == "" {
			return
		}

		<-ctx.Done()

		f, err := os.Create(*path)
		if err != nil {
			slog.Error("Could not create the scan's allocation profile.",
				"err", err,
				"path", *path,
			)

			return
		}
		defer f.Close()

		if err := pprof.Lookup("allocs").WriteTo(f, 0); err != nil {
			slog.Error("Could not write the scan's allocation profile.",
				"err", err,
			)
		}
	})
}
