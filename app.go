// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tri

import (
	"context"
	"fmt"
	"time"

	"github.com/gogpu/tri/event"
	"github.com/gogpu/tri/internal/window"
)

// Run opens a window, initializes the GPU state against it and renders the
// triangle until the window is closed, Escape is pressed or ctx is done.
//
// Run must be called from the main goroutine with the OS thread locked.
// It returns ctx.Err() when stopped by ctx.
func Run(ctx context.Context, opts ...Option) error {
	cfg := newConfig(opts)

	win, err := window.New(cfg.title, cfg.width, cfg.height)
	if err != nil {
		return err
	}
	defer win.Destroy()

	state, err := Init(ctx, win, opts...)
	if err != nil {
		return fmt.Errorf("tri: init: %w", err)
	}
	defer state.Release()

	Logger().Info("tri: running", "title", cfg.title, "adapter", state.AdapterInfo().Name)
	return loop(ctx, win, frameHandler{render: state.Render, win: win})
}

type eventSource interface {
	Poll() []event.Event
}

// loop polls src and dispatches each event until one of them asks to exit.
func loop(ctx context.Context, src eventSource, h Handler) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, ev := range src.Poll() {
			if Dispatch(ev, h) == event.Exit {
				return nil
			}
		}
	}
}

// surfaceErrorBackoff is how long the loop waits for window events after a
// frame failed on the surface. A minimized window keeps failing until it is
// restored.
const surfaceErrorBackoff = 100 * time.Millisecond

type redrawWaiter interface {
	RequestRedraw()
	Wait(d time.Duration)
}

// frameHandler renders a frame and schedules redraws on the window.
type frameHandler struct {
	render func() error
	win    redrawWaiter
}

func (f frameHandler) Redraw() error {
	err := f.render()
	if IsSurfaceError(err) {
		f.win.Wait(surfaceErrorBackoff)
	}
	return err
}

func (f frameHandler) RequestRedraw() { f.win.RequestRedraw() }
