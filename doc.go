// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package tri draws a hard-coded colored shape with WebGPU.
//
// # Overview
//
// tri walks through the usual WebGPU setup one step at a time:
//
//	instance → surface → adapter → device/queue → surface configuration → pipeline → vertex buffer
//
// and then renders one frame per RedrawRequested event until the window is
// closed or Escape is pressed. The shape is a pentagon outline cut into two
// counter-clockwise triangles (A, B, E and B, C, E) filled in purple over a
// dark blue background.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/tri"
//	    _ "github.com/gogpu/wgpu/hal/allbackends"
//	)
//
//	func init() { runtime.LockOSThread() }
//
//	func main() {
//	    if err := tri.Run(context.Background(), tri.WithTitle("tri")); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Headless
//
// Snapshot runs the same sequence without a window and returns the frame as
// an *image.RGBA:
//
//	img, err := tri.Snapshot(ctx, 800, 600)
//
// # Logging
//
// By default tri produces no log output. Use SetLogger to enable it; the
// logger is shared with the wgpu stack:
//
//	tri.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
//
// # Non-goals
//
// The surface is configured once. Resize and scale-factor events are logged
// but not acted on, and surface loss is reported, not recovered from.
package tri
