// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tri

import (
	"fmt"
	"os"
	"strings"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"
)

// GraphicsAPIEnv names the environment variable that selects the GPU backend
// when no explicit backend option is given.
const GraphicsAPIEnv = "GOGPU_GRAPHICS_API"

// Option configures initialization, rendering and the window.
//
// Example:
//
//	err := tri.Run(ctx,
//	    tri.WithTitle("testing"),
//	    tri.WithBackends(wgpu.BackendsVulkan),
//	)
type Option func(*config)

// config holds everything an Option can change.
type config struct {
	title           string
	width, height   int
	backends        wgpu.Backends
	powerPreference wgpu.PowerPreference
	presentMode     *wgpu.PresentMode
	clearColor      gputypes.Color
}

// defaultConfig returns the defaults: an 800x600 window, every backend,
// no power preference, the surface's first present mode and a dark blue
// clear color.
func defaultConfig() config {
	backends := wgpu.BackendsAll
	if b, err := ParseBackends(os.Getenv(GraphicsAPIEnv)); err == nil && b != 0 {
		backends = b
	}
	return config{
		title:           "tri",
		width:           800,
		height:          600,
		backends:        backends,
		powerPreference: wgpu.PowerPreferenceNone,
		clearColor:      ClearColor,
	}
}

func newConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(c *config) {
		c.title = title
	}
}

// WithSize sets the initial window (or snapshot) size in pixels.
// Non-positive values keep the default.
func WithSize(width, height int) Option {
	return func(c *config) {
		if width > 0 {
			c.width = width
		}
		if height > 0 {
			c.height = height
		}
	}
}

// WithBackends restricts the instance to the given backends.
// A zero value keeps the default.
func WithBackends(b wgpu.Backends) Option {
	return func(c *config) {
		if b != 0 {
			c.backends = b
		}
	}
}

// WithPowerPreference sets the adapter power preference.
func WithPowerPreference(p wgpu.PowerPreference) Option {
	return func(c *config) {
		c.powerPreference = p
	}
}

// WithPresentMode overrides the present mode. Without it the first mode the
// surface reports is used.
func WithPresentMode(m wgpu.PresentMode) Option {
	return func(c *config) {
		c.presentMode = &m
	}
}

// WithClearColor overrides the color each frame is cleared to.
func WithClearColor(col gputypes.Color) Option {
	return func(c *config) {
		c.clearColor = col
	}
}

// ParseBackends maps a backend name to a backend set. The empty string maps
// to zero, meaning "no preference".
func ParseBackends(s string) (wgpu.Backends, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return 0, nil
	case "all":
		return wgpu.BackendsAll, nil
	case "primary":
		return wgpu.BackendsPrimary, nil
	case "vulkan", "vk":
		return wgpu.BackendsVulkan, nil
	case "metal":
		return wgpu.BackendsMetal, nil
	case "dx12", "d3d12":
		return wgpu.BackendsDX12, nil
	case "gl", "gles":
		return wgpu.BackendsGL, nil
	default:
		return 0, fmt.Errorf("tri: unknown backend %q", s)
	}
}

// ParsePowerPreference maps "low", "high" or "none" to a power preference.
func ParsePowerPreference(s string) (wgpu.PowerPreference, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return wgpu.PowerPreferenceNone, nil
	case "low", "low-power":
		return wgpu.PowerPreferenceLowPower, nil
	case "high", "high-performance":
		return wgpu.PowerPreferenceHighPerformance, nil
	default:
		return wgpu.PowerPreferenceNone, fmt.Errorf("tri: unknown power preference %q", s)
	}
}
