// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tri

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"
)

// renderPipeline bundles the pipeline with the objects it was built from so
// they can be released together.
type renderPipeline struct {
	shader   *wgpu.ShaderModule
	layout   *wgpu.PipelineLayout
	pipeline *wgpu.RenderPipeline
}

// pipelineDescriptor describes the triangle pipeline: one vertex buffer in
// VertexLayout, a triangle list with back faces culled, no depth buffer and a
// single color target of the given format that is overwritten, not blended.
func pipelineDescriptor(shader *wgpu.ShaderModule, layout *wgpu.PipelineLayout, format gputypes.TextureFormat) *wgpu.RenderPipelineDescriptor {
	return &wgpu.RenderPipelineDescriptor{
		Label:  "Render Pipeline",
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: VertexEntryPoint,
			Buffers:    []wgpu.VertexBufferLayout{VertexLayout()},
		},
		Primitive: gputypes.PrimitiveState{
			Topology:  gputypes.PrimitiveTopologyTriangleList,
			FrontFace: gputypes.FrontFaceCCW,
			CullMode:  gputypes.CullModeBack,
		},
		Multisample: gputypes.DefaultMultisampleState(),
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: FragmentEntryPoint,
			Targets: []gputypes.ColorTargetState{{
				Format:    format,
				Blend:     blendReplace(),
				WriteMask: gputypes.ColorWriteMaskAll,
			}},
		},
	}
}

func blendReplace() *gputypes.BlendState {
	b := gputypes.BlendStateReplace()
	return &b
}

// newRenderPipeline validates the embedded shader and builds the pipeline
// targeting format. On error nothing is leaked.
func newRenderPipeline(device *wgpu.Device, format gputypes.TextureFormat) (*renderPipeline, error) {
	if err := ValidateShader(ShaderSource); err != nil {
		return nil, err
	}

	shader, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "Shader",
		WGSL:  ShaderSource,
	})
	if err != nil {
		return nil, fmt.Errorf("create shader module: %w", err)
	}

	layout, err := device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label: "Render Pipeline Layout",
	})
	if err != nil {
		shader.Release()
		return nil, fmt.Errorf("create pipeline layout: %w", err)
	}

	pipeline, err := device.CreateRenderPipeline(pipelineDescriptor(shader, layout, format))
	if err != nil {
		layout.Release()
		shader.Release()
		return nil, fmt.Errorf("create render pipeline: %w", err)
	}

	Logger().Debug("tri: render pipeline created", "format", format)
	return &renderPipeline{shader: shader, layout: layout, pipeline: pipeline}, nil
}

func (p *renderPipeline) release() {
	if p == nil {
		return
	}
	if p.pipeline != nil {
		p.pipeline.Release()
		p.pipeline = nil
	}
	if p.layout != nil {
		p.layout.Release()
		p.layout = nil
	}
	if p.shader != nil {
		p.shader.Release()
		p.shader = nil
	}
}
