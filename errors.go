// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tri

import (
	"errors"

	"github.com/gogpu/wgpu"
)

// Package errors.
var (
	// ErrReleased is returned when a State is used after Release.
	ErrReleased = errors.New("tri: state released")

	// ErrInvalidSize is returned when a surface or snapshot has a zero dimension.
	ErrInvalidSize = errors.New("tri: invalid size")

	// ErrNoSurfaceFormat is returned when the adapter reports no usable
	// format for the surface.
	ErrNoSurfaceFormat = errors.New("tri: surface reports no formats")

	// ErrNoQueue is returned when the device was created without a queue,
	// which happens on adapters without a HAL backend.
	ErrNoQueue = errors.New("tri: device has no queue")

	// ErrNoSurface is returned by Render on a State created without a surface.
	ErrNoSurface = errors.New("tri: no surface")

	// ErrShaderEntryPoint is returned when the shader lacks vs_main or fs_main.
	ErrShaderEntryPoint = errors.New("tri: shader entry point missing")
)

// IsSurfaceError reports whether err is one of the runtime surface failures
// a frame can hit: surface lost, surface outdated, acquire timeout, or out of
// memory. None of them are recovered from; the caller decides whether to
// keep rendering.
func IsSurfaceError(err error) bool {
	return errors.Is(err, wgpu.ErrSurfaceLost) ||
		errors.Is(err, wgpu.ErrSurfaceOutdated) ||
		errors.Is(err, wgpu.ErrTimeout) ||
		errors.Is(err, wgpu.ErrOutOfMemory)
}
