// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tri

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestShape(t *testing.T) {
	shape := Shape()
	if len(shape) != VertexCount {
		t.Fatalf("len(Shape()) = %d, want %d", len(shape), VertexCount)
	}
	want := []string{"A", "B", "E", "B", "C", "E"}
	for i, name := range want {
		if shape[i] != Points[name] {
			t.Errorf("Shape()[%d] = %+v, want point %s", i, shape[i], name)
		}
	}
}

func TestShapeIsCounterClockwise(t *testing.T) {
	shape := Shape()
	for i := 0; i < len(shape); i += 3 {
		a, b, c := shape[i].Position, shape[i+1].Position, shape[i+2].Position
		cross := (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
		if cross <= 0 {
			t.Errorf("triangle %d is not counter-clockwise (cross = %v); back-face culling would drop it", i/3, cross)
		}
	}
}

func TestVertexLayout(t *testing.T) {
	l := VertexLayout()
	if l.ArrayStride != VertexSize {
		t.Errorf("ArrayStride = %d, want %d", l.ArrayStride, VertexSize)
	}
	if l.StepMode != gputypes.VertexStepModeVertex {
		t.Errorf("StepMode = %v, want Vertex", l.StepMode)
	}
	if len(l.Attributes) != 2 {
		t.Fatalf("len(Attributes) = %d, want 2", len(l.Attributes))
	}

	var end uint64
	for i, a := range l.Attributes {
		if a.ShaderLocation != uint32(i) {
			t.Errorf("attribute %d: ShaderLocation = %d", i, a.ShaderLocation)
		}
		if a.Format != gputypes.VertexFormatFloat32x3 {
			t.Errorf("attribute %d: Format = %v, want Float32x3", i, a.Format)
		}
		if a.Offset != end {
			t.Errorf("attribute %d: Offset = %d, want %d", i, a.Offset, end)
		}
		end = a.Offset + a.Format.Size()
	}
	if end != l.ArrayStride {
		t.Errorf("attributes cover %d bytes, stride is %d", end, l.ArrayStride)
	}
}

func TestEncodeVertices(t *testing.T) {
	shape := Shape()
	data := EncodeVertices(shape)
	if len(data) != VertexCount*VertexSize {
		t.Fatalf("len = %d, want %d", len(data), VertexCount*VertexSize)
	}

	for i, v := range shape {
		base := i * VertexSize
		for j := range 3 {
			got := math.Float32frombits(binary.LittleEndian.Uint32(data[base+4*j:]))
			if got != v.Position[j] {
				t.Errorf("vertex %d position[%d] = %v, want %v", i, j, got, v.Position[j])
			}
			got = math.Float32frombits(binary.LittleEndian.Uint32(data[base+colorOffset+4*j:]))
			if got != v.Color[j] {
				t.Errorf("vertex %d color[%d] = %v, want %v", i, j, got, v.Color[j])
			}
		}
	}
}

func TestEncodeVerticesEmpty(t *testing.T) {
	if got := EncodeVertices(nil); len(got) != 0 {
		t.Errorf("EncodeVertices(nil) = %d bytes, want 0", len(got))
	}
}
