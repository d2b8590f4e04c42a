// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !windows && !((linux || freebsd) && !wayland)

package window

import (
	"fmt"
	"runtime"
)

// NativeHandles is not implemented on this platform. On macOS the Metal
// backend needs a CAMetalLayer, which GLFW does not create.
func (w *Window) NativeHandles() (display, window uintptr, err error) {
	return 0, 0, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, runtime.GOOS)
}
