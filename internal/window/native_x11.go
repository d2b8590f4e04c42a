// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build (linux || freebsd) && !wayland

package window

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// NativeHandles returns the X11 Display* and Window.
func (w *Window) NativeHandles() (display, window uintptr, err error) {
	display = uintptr(unsafe.Pointer(glfw.GetX11Display()))
	window = uintptr(w.win.GetX11Window())
	if display == 0 || window == 0 {
		return 0, 0, fmt.Errorf("window: no X11 handles (display=%#x window=%#x)", display, window)
	}
	return display, window, nil
}
