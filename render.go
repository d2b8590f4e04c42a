// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tri

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"
)

// ClearColor is the default background.
var ClearColor = gputypes.Color{R: 0.1, G: 0.2, B: 0.3, A: 1.0}

// Render draws one frame to the surface and presents it.
//
// Errors from acquiring or presenting the frame are returned as is;
// IsSurfaceError classifies them. The surface is not reconfigured.
func (s *State) Render() error {
	if s.released {
		return ErrReleased
	}
	if s.surface == nil {
		return ErrNoSurface
	}

	frame, _, err := s.surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("acquire surface texture: %w", err)
	}

	view, err := frame.CreateView(nil)
	if err != nil {
		s.surface.DiscardTexture()
		return fmt.Errorf("create surface view: %w", err)
	}
	defer view.Release()

	cmd, err := s.encodeFrame(view, nil)
	if err != nil {
		s.surface.DiscardTexture()
		return err
	}

	if err := s.submit(cmd); err != nil {
		s.surface.DiscardTexture()
		return err
	}

	if err := s.surface.Present(frame); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	return nil
}

// encodeFrame records the render pass into view. When readback is non-nil
// a copy of the target texture into the readback buffer is recorded after
// the pass.
func (s *State) encodeFrame(view *wgpu.TextureView, readback *readback) (*wgpu.CommandBuffer, error) {
	encoder, err := s.device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{
		Label: "Render Encoder",
	})
	if err != nil {
		return nil, fmt.Errorf("create command encoder: %w", err)
	}

	pass, err := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "Render Pass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: s.cfg.clearColor,
		}},
	})
	if err != nil {
		encoder.DiscardEncoding()
		return nil, fmt.Errorf("begin render pass: %w", err)
	}

	pass.SetPipeline(s.pipeline.pipeline)
	pass.SetVertexBuffer(0, s.vertexBuffer, 0)
	pass.Draw(VertexCount, 1, 0, 0)

	if err := pass.End(); err != nil {
		encoder.DiscardEncoding()
		return nil, fmt.Errorf("end render pass: %w", err)
	}

	if readback != nil {
		readback.record(encoder)
	}

	cmd, err := encoder.Finish()
	if err != nil {
		encoder.DiscardEncoding()
		return nil, fmt.Errorf("finish encoder: %w", err)
	}
	return cmd, nil
}

// submit hands cmd to the queue. A command buffer the queue rejects is
// released here.
func (s *State) submit(cmd *wgpu.CommandBuffer) error {
	if _, err := s.queue.Submit(cmd); err != nil {
		cmd.Release()
		return fmt.Errorf("submit: %w", err)
	}
	return nil
}
