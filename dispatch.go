// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tri

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/tri/event"
)

// Handler is what Dispatch drives: something that can draw a frame and ask
// the window for the next one.
type Handler interface {
	// Redraw draws one frame.
	Redraw() error

	// RequestRedraw schedules a RedrawRequested event.
	RequestRedraw()
}

// Dispatch handles one window event and reports whether the loop should
// keep running.
//
// CloseRequested and a press of Escape exit. Resize and scale-factor
// changes are logged only; the surface keeps its initial size.
// RedrawRequested draws a frame and a failed frame is logged, not fatal.
// MainEventsCleared requests the next redraw, so the window renders
// continuously.
func Dispatch(ev event.Event, h Handler) event.ControlFlow {
	log := Logger()
	log.Debug("tri: event", "event", ev)

	switch e := ev.(type) {
	case event.CloseRequested:
		log.Info("tri: close requested")
		return event.Exit

	case event.KeyboardInput:
		if e.Pressed && e.Key == gpucontext.KeyEscape {
			log.Info("tri: escape pressed")
			return event.Exit
		}

	case event.Resized:
		log.Info("tri: window resized", "width", e.Width, "height", e.Height)

	case event.ScaleFactorChanged:
		log.Info("tri: scale factor changed", "scale", e.Scale, "width", e.Width, "height", e.Height)

	case event.RedrawRequested:
		if err := h.Redraw(); err != nil {
			if IsSurfaceError(err) {
				log.Warn("tri: surface error", "err", err)
			} else {
				log.Error("tri: render failed", "err", err)
			}
		}

	case event.MainEventsCleared:
		h.RequestRedraw()
	}
	return event.Continue
}
