// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package window opens a GLFW window without a client graphics API and turns
// its callbacks into event.Event values.
//
// GLFW must be driven from the main OS thread. Callers lock it with
// runtime.LockOSThread in an init function before calling New.
package window

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/tri/event"
)

// ErrUnsupportedPlatform is returned by NativeHandles on platforms where no
// surface can be created from a GLFW window.
var ErrUnsupportedPlatform = errors.New("window: unsupported platform for surface creation")

// Window is a resizable GLFW window.
type Window struct {
	win    *glfw.Window
	events queue
}

var _ gpucontext.WindowProvider = (*Window)(nil)

// New initializes GLFW and opens a window with the given title and size in
// screen coordinates.
func New(title string, width, height int) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("window: glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("window: create: %w", err)
	}

	w := &Window{win: win}
	// The first frame is drawn without waiting for a request.
	w.events.requestRedraw()
	w.installCallbacks()
	return w, nil
}

func (w *Window) installCallbacks() {
	w.win.SetCloseCallback(func(*glfw.Window) {
		w.events.push(event.CloseRequested{})
	})
	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		if ev, ok := keyboardInput(key, action, mods); ok {
			w.events.push(ev)
		}
	})
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.events.push(event.Resized{Width: width, Height: height})
	})
	w.win.SetContentScaleCallback(func(_ *glfw.Window, x, _ float32) {
		width, height := w.win.GetFramebufferSize()
		w.events.push(event.ScaleFactorChanged{Scale: float64(x), Width: width, Height: height})
	})
}

// Poll processes pending window system events and returns them in arrival
// order, followed by RedrawRequested when a redraw is pending and
// MainEventsCleared.
func (w *Window) Poll() []event.Event {
	glfw.PollEvents()
	return w.events.drain()
}

// Wait blocks until a window system event arrives or d elapses. Events that
// arrive are queued for the next Poll.
func (w *Window) Wait(d time.Duration) {
	glfw.WaitEventsTimeout(d.Seconds())
}

// Size returns the window size in screen coordinates.
func (w *Window) Size() (width, height int) {
	return w.win.GetSize()
}

// FramebufferSize returns the drawable size in pixels.
func (w *Window) FramebufferSize() (width, height int) {
	return w.win.GetFramebufferSize()
}

// ScaleFactor returns the horizontal content scale.
func (w *Window) ScaleFactor() float64 {
	x, _ := w.win.GetContentScale()
	if x <= 0 {
		return 1
	}
	return float64(x)
}

// RequestRedraw makes the next Poll report RedrawRequested.
func (w *Window) RequestRedraw() {
	w.events.requestRedraw()
}

// Destroy closes the window and terminates GLFW.
func (w *Window) Destroy() {
	if w.win == nil {
		return
	}
	w.win.Destroy()
	w.win = nil
	glfw.Terminate()
}
