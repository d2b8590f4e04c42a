// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tri

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"
)

// SnapshotFormat is the color format Snapshot renders to.
const SnapshotFormat = gputypes.TextureFormatRGBA8Unorm

const (
	bytesPerPixel = 4

	// copyRowAlignment is the row pitch texture-to-buffer copies require.
	copyRowAlignment = 256

	// mapTimeout bounds the readback wait when ctx has no deadline.
	mapTimeout = 5 * time.Second
)

// Snapshot renders one frame of the triangle into an offscreen texture of
// the given size and returns its pixels. No window or surface is involved;
// otherwise the device, pipeline, vertex data and clear color are the ones
// Init and Render use.
func Snapshot(ctx context.Context, width, height int, opts ...Option) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: snapshot %dx%d", ErrInvalidSize, width, height)
	}

	s := &State{cfg: newConfig(opts)}
	defer s.Release()

	if err := s.init(ctx, nil, SnapshotFormat); err != nil {
		return nil, err
	}
	return s.snapshot(ctx, uint32(width), uint32(height))
}

func (s *State) snapshot(ctx context.Context, width, height uint32) (*image.RGBA, error) {
	texture, err := s.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "Snapshot Target",
		Size: wgpu.Extent3D{
			Width:              width,
			Height:             height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        SnapshotFormat,
		Usage:         wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageCopySrc,
	})
	if err != nil {
		return nil, fmt.Errorf("create snapshot texture: %w", err)
	}
	defer texture.Release()

	view, err := s.device.CreateTextureView(texture, nil)
	if err != nil {
		return nil, fmt.Errorf("create snapshot view: %w", err)
	}
	defer view.Release()

	rb, err := newReadback(s.device, texture, width, height)
	if err != nil {
		return nil, err
	}
	defer rb.release()

	cmd, err := s.encodeFrame(view, rb)
	if err != nil {
		return nil, err
	}
	if err := s.submit(cmd); err != nil {
		return nil, err
	}

	return rb.pixels(ctx)
}

// readback copies a rendered texture into a mappable buffer.
type readback struct {
	texture       *wgpu.Texture
	buffer        *wgpu.Buffer
	width, height uint32
	bytesPerRow   uint32
}

func newReadback(device *wgpu.Device, texture *wgpu.Texture, width, height uint32) (*readback, error) {
	rb := &readback{
		texture:     texture,
		width:       width,
		height:      height,
		bytesPerRow: alignedBytesPerRow(width),
	}
	buf, err := device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Snapshot Readback",
		Size:  rb.size(),
		Usage: wgpu.BufferUsageCopyDst | wgpu.BufferUsageMapRead,
	})
	if err != nil {
		return nil, fmt.Errorf("create readback buffer: %w", err)
	}
	rb.buffer = buf
	return rb, nil
}

// alignedBytesPerRow returns the row pitch for a texture width, padded to
// copyRowAlignment.
func alignedBytesPerRow(width uint32) uint32 {
	n := width * bytesPerPixel
	return (n + copyRowAlignment - 1) / copyRowAlignment * copyRowAlignment
}

func (rb *readback) size() uint64 {
	return uint64(rb.bytesPerRow) * uint64(rb.height)
}

func (rb *readback) record(encoder *wgpu.CommandEncoder) {
	encoder.CopyTextureToBuffer(rb.texture, rb.buffer, []wgpu.BufferTextureCopy{{
		BufferLayout: wgpu.ImageDataLayout{
			BytesPerRow:  rb.bytesPerRow,
			RowsPerImage: rb.height,
		},
		TextureBase: wgpu.ImageCopyTexture{Texture: rb.texture},
		Size: wgpu.Extent3D{
			Width:              rb.width,
			Height:             rb.height,
			DepthOrArrayLayers: 1,
		},
	}})
}

// pixels waits for the copy, maps the buffer and strips the row padding.
func (rb *readback) pixels(ctx context.Context) (*image.RGBA, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, mapTimeout)
		defer cancel()
	}

	size := rb.size()
	if err := rb.buffer.Map(ctx, wgpu.MapModeRead, 0, size); err != nil {
		return nil, fmt.Errorf("map readback buffer: %w", err)
	}
	rng, err := rb.buffer.MappedRange(0, size)
	if err != nil {
		_ = rb.buffer.Unmap()
		return nil, fmt.Errorf("mapped range: %w", err)
	}

	img := unpadRows(rng.Bytes(), int(rb.width), int(rb.height), int(rb.bytesPerRow))
	rng.Release()

	if err := rb.buffer.Unmap(); err != nil {
		return nil, fmt.Errorf("unmap readback buffer: %w", err)
	}
	return img, nil
}

// unpadRows copies tightly packed RGBA rows out of a buffer whose rows are
// stride bytes apart.
func unpadRows(data []byte, width, height, stride int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	row := width * bytesPerPixel
	for y := 0; y < height; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+row], data[y*stride:y*stride+row])
	}
	return img
}

func (rb *readback) release() {
	if rb.buffer != nil {
		rb.buffer.Release()
		rb.buffer = nil
	}
}
