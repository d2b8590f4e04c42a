// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tri

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"
)

func TestSurfaceConfigPrefersSRGB(t *testing.T) {
	caps := &wgpu.SurfaceCapabilities{
		Formats: []gputypes.TextureFormat{
			gputypes.TextureFormatBGRA8Unorm,
			gputypes.TextureFormatBGRA8UnormSrgb,
			gputypes.TextureFormatRGBA8UnormSrgb,
		},
		PresentModes: []gputypes.PresentMode{wgpu.PresentModeMailbox, wgpu.PresentModeFifo},
		AlphaModes:   []gputypes.CompositeAlphaMode{gputypes.CompositeAlphaModeOpaque},
	}

	cfg, err := surfaceConfig(caps, 640, 480, nil)
	if err != nil {
		t.Fatalf("surfaceConfig: %v", err)
	}
	if cfg.Format != gputypes.TextureFormatBGRA8UnormSrgb {
		t.Errorf("Format = %v, want first sRGB format BGRA8UnormSrgb", cfg.Format)
	}
	if cfg.Width != 640 || cfg.Height != 480 {
		t.Errorf("size = %dx%d, want 640x480", cfg.Width, cfg.Height)
	}
	if cfg.Usage != wgpu.TextureUsageRenderAttachment {
		t.Errorf("Usage = %v, want RenderAttachment", cfg.Usage)
	}
	if cfg.PresentMode != wgpu.PresentModeMailbox {
		t.Errorf("PresentMode = %v, want first reported (Mailbox)", cfg.PresentMode)
	}
	if cfg.AlphaMode != gputypes.CompositeAlphaModeOpaque {
		t.Errorf("AlphaMode = %v, want Opaque", cfg.AlphaMode)
	}
}

func TestSurfaceConfigFallsBackToFirstFormat(t *testing.T) {
	caps := &wgpu.SurfaceCapabilities{
		Formats: []gputypes.TextureFormat{gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm},
	}
	cfg, err := surfaceConfig(caps, 1, 1, nil)
	if err != nil {
		t.Fatalf("surfaceConfig: %v", err)
	}
	if cfg.Format != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format = %v, want RGBA8Unorm", cfg.Format)
	}
	if cfg.PresentMode != wgpu.PresentModeFifo {
		t.Errorf("PresentMode = %v, want Fifo when none reported", cfg.PresentMode)
	}
	if cfg.AlphaMode != gputypes.CompositeAlphaModeAuto {
		t.Errorf("AlphaMode = %v, want Auto when none reported", cfg.AlphaMode)
	}
}

func TestSurfaceConfigPresentModeOverride(t *testing.T) {
	caps := &wgpu.SurfaceCapabilities{
		Formats:      []gputypes.TextureFormat{gputypes.TextureFormatBGRA8UnormSrgb},
		PresentModes: []gputypes.PresentMode{wgpu.PresentModeFifo},
	}
	immediate := wgpu.PresentModeImmediate
	cfg, err := surfaceConfig(caps, 10, 10, &immediate)
	if err != nil {
		t.Fatalf("surfaceConfig: %v", err)
	}
	if cfg.PresentMode != wgpu.PresentModeImmediate {
		t.Errorf("PresentMode = %v, want Immediate", cfg.PresentMode)
	}
}

func TestSurfaceConfigErrors(t *testing.T) {
	good := &wgpu.SurfaceCapabilities{Formats: []gputypes.TextureFormat{gputypes.TextureFormatBGRA8Unorm}}
	tests := []struct {
		name          string
		caps          *wgpu.SurfaceCapabilities
		width, height int
		want          error
	}{
		{"nil caps", nil, 100, 100, ErrNoSurfaceFormat},
		{"no formats", &wgpu.SurfaceCapabilities{}, 100, 100, ErrNoSurfaceFormat},
		{"zero width", good, 0, 100, ErrInvalidSize},
		{"negative height", good, 100, -1, ErrInvalidSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := surfaceConfig(tt.caps, tt.width, tt.height, nil)
			if !errors.Is(err, tt.want) {
				t.Errorf("surfaceConfig() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestIsSRGB(t *testing.T) {
	tests := []struct {
		f    gputypes.TextureFormat
		want bool
	}{
		{gputypes.TextureFormatRGBA8UnormSrgb, true},
		{gputypes.TextureFormatBGRA8UnormSrgb, true},
		{gputypes.TextureFormatRGBA8Unorm, false},
		{gputypes.TextureFormatBGRA8Unorm, false},
	}
	for _, tt := range tests {
		if got := isSRGB(tt.f); got != tt.want {
			t.Errorf("isSRGB(%v) = %v, want %v", tt.f, got, tt.want)
		}
	}
}
