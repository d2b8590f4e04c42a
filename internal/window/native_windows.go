// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build windows

package window

import (
	"errors"
	"unsafe"
)

// NativeHandles returns the HWND. Win32 surfaces need no display handle.
func (w *Window) NativeHandles() (display, window uintptr, err error) {
	hwnd := uintptr(unsafe.Pointer(w.win.GetWin32Window()))
	if hwnd == 0 {
		return 0, 0, errors.New("window: no HWND")
	}
	return 0, hwnd, nil
}
