// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tri

import (
	"context"
	"errors"
	"image/color"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"

	// CPU backend: init, pipeline, draw and readback run without a GPU.
	// Its texture-to-buffer copy ignores the row pitch, so snapshot widths
	// in tests are multiples of 64 (256-byte rows).
	_ "github.com/gogpu/wgpu/hal/software"
)

// skipWithoutGPU skips the test when err says no usable device is available.
func skipWithoutGPU(t *testing.T, err error) {
	t.Helper()
	if errors.Is(err, ErrNoQueue) || errors.Is(err, wgpu.ErrNoAdapters) || errors.Is(err, wgpu.ErrNoBackends) {
		t.Skipf("skipping: no GPU device: %v", err)
	}
}

func TestSnapshotInvalidSize(t *testing.T) {
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		_, err := Snapshot(context.Background(), size[0], size[1])
		if !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Snapshot(%d, %d) error = %v, want ErrInvalidSize", size[0], size[1], err)
		}
	}
}

func TestSnapshot(t *testing.T) {
	const w, h = 64, 48
	img, err := Snapshot(context.Background(), w, h)
	skipWithoutGPU(t, err)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	if b := img.Bounds(); b.Dx() != w || b.Dy() != h {
		t.Fatalf("bounds = %v, want %dx%d", b, w, h)
	}

	// Corners are outside the pentagon: clear color (0.1, 0.2, 0.3).
	assertPixel(t, img.RGBAAt(0, 0), color.RGBA{R: 26, G: 51, B: 77, A: 255}, "corner")
	// The origin lies inside triangle BCE: purple (0.5, 0, 0.5).
	assertPixel(t, img.RGBAAt(w/2, h/2), color.RGBA{R: 128, G: 0, B: 128, A: 255}, "center")
}

func TestSnapshotClearColorOption(t *testing.T) {
	img, err := Snapshot(context.Background(), 64, 16, WithClearColor(gputypes.Color{A: 1}))
	skipWithoutGPU(t, err)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	assertPixel(t, img.RGBAAt(0, 0), color.RGBA{A: 255}, "corner")
}

func assertPixel(t *testing.T, got, want color.RGBA, where string) {
	t.Helper()
	const tolerance = 2
	diff := func(a, b uint8) int {
		d := int(a) - int(b)
		if d < 0 {
			return -d
		}
		return d
	}
	if diff(got.R, want.R) > tolerance || diff(got.G, want.G) > tolerance ||
		diff(got.B, want.B) > tolerance || diff(got.A, want.A) > tolerance {
		t.Errorf("%s pixel = %v, want %v (±%d)", where, got, want, tolerance)
	}
}

func TestAlignedBytesPerRow(t *testing.T) {
	tests := []struct {
		width uint32
		want  uint32
	}{
		{1, 256},
		{64, 256},
		{65, 512},
		{800, 3328},
	}
	for _, tt := range tests {
		if got := alignedBytesPerRow(tt.width); got != tt.want {
			t.Errorf("alignedBytesPerRow(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestUnpadRows(t *testing.T) {
	const width, height, stride = 2, 2, 12
	data := []byte{
		1, 2, 3, 4, 5, 6, 7, 8, 0, 0, 0, 0,
		9, 10, 11, 12, 13, 14, 15, 16, 0, 0, 0, 0,
	}
	img := unpadRows(data, width, height, stride)
	if got := img.RGBAAt(1, 0); got != (color.RGBA{5, 6, 7, 8}) {
		t.Errorf("pixel (1,0) = %v", got)
	}
	if got := img.RGBAAt(0, 1); got != (color.RGBA{9, 10, 11, 12}) {
		t.Errorf("pixel (0,1) = %v", got)
	}
	if len(img.Pix) != width*height*bytesPerPixel {
		t.Errorf("len(Pix) = %d, want %d", len(img.Pix), width*height*bytesPerPixel)
	}
}
