// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tri

import (
	"context"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"
)

// State holds every GPU object the triangle needs: the instance, the
// surface it presents to, the adapter and device, the configured swapchain,
// the render pipeline and the vertex buffer.
//
// State implements gpucontext.DeviceProvider.
//
// State is not safe for concurrent use. Rendering and presentation must
// happen on the thread that owns the window.
type State struct {
	cfg config

	instance      *wgpu.Instance
	surface       *wgpu.Surface
	adapter       *wgpu.Adapter
	device        *wgpu.Device
	queue         *wgpu.Queue
	surfaceConfig *wgpu.SurfaceConfiguration
	pipeline      *renderPipeline
	vertexBuffer  *wgpu.Buffer

	// targetFormat is the color format the pipeline renders to.
	targetFormat gputypes.TextureFormat
	released     bool
}

var _ gpucontext.DeviceProvider = (*State)(nil)

// Init runs the initialization sequence against target:
//
//  1. create the instance
//  2. create a surface from the target's native handles
//  3. request an adapter that can present to the surface
//  4. request a device and its queue
//  5. configure the surface for the target's framebuffer size
//  6. build the render pipeline
//  7. upload the vertex buffer
//
// On error every object created so far is released.
func Init(ctx context.Context, target SurfaceTarget, opts ...Option) (*State, error) {
	s := &State{cfg: newConfig(opts)}
	if err := s.init(ctx, target, gputypes.TextureFormatUndefined); err != nil {
		s.Release()
		return nil, err
	}
	return s, nil
}

// init runs the sequence. With a nil target no surface is created and the
// pipeline renders to format instead.
func (s *State) init(ctx context.Context, target SurfaceTarget, format gputypes.TextureFormat) error {
	log := Logger()

	instance, err := wgpu.CreateInstance(&wgpu.InstanceDescriptor{
		Backends: s.cfg.backends,
	})
	if err != nil {
		return fmt.Errorf("create instance: %w", err)
	}
	s.instance = instance

	if target != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
		display, window, err := target.NativeHandles()
		if err != nil {
			return fmt.Errorf("native window handles: %w", err)
		}
		surface, err := instance.CreateSurface(display, window)
		if err != nil {
			return fmt.Errorf("create surface: %w", err)
		}
		s.surface = surface
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference:   s.cfg.powerPreference,
		CompatibleSurface: s.surface,
	})
	if err != nil {
		return fmt.Errorf("request adapter: %w", err)
	}
	s.adapter = adapter

	info := adapter.Info()
	log.Info("tri: adapter selected",
		"name", info.Name,
		"backend", info.Backend,
		"type", info.DeviceType,
		"driver", info.Driver)

	if err := ctx.Err(); err != nil {
		return err
	}
	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label:          "Device",
		RequiredLimits: wgpu.DefaultLimits(),
	})
	if err != nil {
		return fmt.Errorf("request device: %w", err)
	}
	s.device = device

	s.queue = device.Queue()
	if s.queue == nil {
		return ErrNoQueue
	}

	if target != nil {
		if err := s.configureSurface(target); err != nil {
			return err
		}
		format = s.surfaceConfig.Format
	}
	s.targetFormat = format

	if err := ctx.Err(); err != nil {
		return err
	}
	pipeline, err := newRenderPipeline(device, format)
	if err != nil {
		return err
	}
	s.pipeline = pipeline

	vb, err := newVertexBuffer(device, s.queue, Shape())
	if err != nil {
		return err
	}
	s.vertexBuffer = vb

	log.Debug("tri: state initialized", "format", format)
	return nil
}

func (s *State) configureSurface(target SurfaceTarget) error {
	caps := s.adapter.GetSurfaceCapabilities(s.surface)
	width, height := target.FramebufferSize()

	sc, err := surfaceConfig(caps, width, height, s.cfg.presentMode)
	if err != nil {
		return err
	}
	if err := s.surface.Configure(s.device, sc); err != nil {
		return fmt.Errorf("configure surface: %w", err)
	}
	s.surfaceConfig = sc

	Logger().Debug("tri: surface configured",
		"width", sc.Width,
		"height", sc.Height,
		"format", sc.Format,
		"presentMode", sc.PresentMode,
		"alphaMode", sc.AlphaMode)
	return nil
}

// newVertexBuffer creates a vertex buffer holding vertices and uploads them.
func newVertexBuffer(device *wgpu.Device, queue *wgpu.Queue, vertices []Vertex) (*wgpu.Buffer, error) {
	data := EncodeVertices(vertices)

	buf, err := device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Vertex Buffer",
		Size:  uint64(len(data)),
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create vertex buffer: %w", err)
	}
	if err := queue.WriteBuffer(buf, 0, data); err != nil {
		buf.Release()
		return nil, fmt.Errorf("upload vertices: %w", err)
	}
	return buf, nil
}

// Release destroys all GPU objects in reverse creation order.
// It is safe to call more than once.
func (s *State) Release() {
	if s == nil || s.released {
		return
	}
	s.released = true

	if s.vertexBuffer != nil {
		s.vertexBuffer.Release()
		s.vertexBuffer = nil
	}
	s.pipeline.release()
	s.pipeline = nil
	if s.surface != nil && s.surfaceConfig != nil {
		s.surface.Unconfigure()
	}
	s.surfaceConfig = nil
	s.queue = nil
	if s.device != nil {
		s.device.Release()
		s.device = nil
	}
	if s.adapter != nil {
		s.adapter.Release()
		s.adapter = nil
	}
	if s.surface != nil {
		s.surface.Release()
		s.surface = nil
	}
	if s.instance != nil {
		s.instance.Release()
		s.instance = nil
	}
}

// Device returns the *wgpu.Device, or nil after Release.
func (s *State) Device() gpucontext.Device {
	if s.device == nil {
		return nil
	}
	return s.device
}

// Queue returns the *wgpu.Queue, or nil after Release.
func (s *State) Queue() gpucontext.Queue {
	if s.queue == nil {
		return nil
	}
	return s.queue
}

// Adapter returns the *wgpu.Adapter, or nil after Release.
func (s *State) Adapter() gpucontext.Adapter {
	if s.adapter == nil {
		return nil
	}
	return s.adapter
}

// SurfaceFormat returns the configured surface format, or
// TextureFormatUndefined when there is no surface.
func (s *State) SurfaceFormat() gputypes.TextureFormat {
	if s.surfaceConfig == nil {
		return gputypes.TextureFormatUndefined
	}
	return s.surfaceConfig.Format
}

// AdapterInfo reports the adapter name and type.
func (s *State) AdapterInfo() gpucontext.AdapterInfo {
	if s.adapter == nil {
		return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
	}
	info := s.adapter.Info()
	return gpucontext.AdapterInfo{Name: info.Name, Type: adapterType(info.DeviceType)}
}

func adapterType(t gputypes.DeviceType) gpucontext.AdapterType {
	switch t {
	case gputypes.DeviceTypeDiscreteGPU:
		return gpucontext.AdapterTypeDiscrete
	case gputypes.DeviceTypeIntegratedGPU:
		return gpucontext.AdapterTypeIntegrated
	case gputypes.DeviceTypeCPU:
		return gpucontext.AdapterTypeSoftware
	default:
		return gpucontext.AdapterTypeUnknown
	}
}
