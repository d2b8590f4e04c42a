// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tri

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"
)

// SurfaceTarget is a window a surface can be created for.
type SurfaceTarget interface {
	// NativeHandles returns the platform display and window handles in the
	// form wgpu.Instance.CreateSurface expects.
	NativeHandles() (display, window uintptr, err error)

	// FramebufferSize returns the drawable size in physical pixels.
	FramebufferSize() (width, height int)
}

// isSRGB reports whether f is one of the sRGB swapchain formats.
func isSRGB(f gputypes.TextureFormat) bool {
	return f == gputypes.TextureFormatRGBA8UnormSrgb || f == gputypes.TextureFormatBGRA8UnormSrgb
}

// surfaceConfig picks the surface configuration from the adapter's reported
// capabilities. The shader writes linear color, so an sRGB format is
// preferred; without one the first reported format is used and colors come
// out darker. Present and alpha modes default to the first reported mode.
func surfaceConfig(caps *wgpu.SurfaceCapabilities, width, height int, presentMode *wgpu.PresentMode) (*wgpu.SurfaceConfiguration, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: surface %dx%d", ErrInvalidSize, width, height)
	}
	if caps == nil || len(caps.Formats) == 0 {
		return nil, ErrNoSurfaceFormat
	}

	format := caps.Formats[0]
	for _, f := range caps.Formats {
		if isSRGB(f) {
			format = f
			break
		}
	}

	cfg := &wgpu.SurfaceConfiguration{
		Width:       uint32(width),
		Height:      uint32(height),
		Format:      format,
		Usage:       wgpu.TextureUsageRenderAttachment,
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   gputypes.CompositeAlphaModeAuto,
	}
	if len(caps.PresentModes) > 0 {
		cfg.PresentMode = caps.PresentModes[0]
	}
	if presentMode != nil {
		cfg.PresentMode = *presentMode
	}
	if len(caps.AlphaModes) > 0 {
		cfg.AlphaMode = caps.AlphaModes[0]
	}
	return cfg, nil
}
