// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tri

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f32"
)

// Vertex is a position and an RGB color, both three float32 components.
// The GPU layout is tightly packed: position at byte 0, color at byte 12.
type Vertex struct {
	Position f32.Vec3
	Color    f32.Vec3
}

const (
	// VertexSize is the stride of one Vertex in the vertex buffer.
	VertexSize = 24

	// VertexCount is the number of vertices drawn each frame.
	VertexCount = 6

	colorOffset = 12
)

var purple = f32.Vec3{0.5, 0.0, 0.5}

// Points are the five named corners of the pentagon. D is not drawn.
var Points = map[string]Vertex{
	"A": {Position: f32.Vec3{-0.0868241, 0.49240386, 0.0}, Color: purple},
	"B": {Position: f32.Vec3{-0.49513406, 0.06958647, 0.0}, Color: purple},
	"C": {Position: f32.Vec3{-0.21918549, -0.44939706, 0.0}, Color: purple},
	"D": {Position: f32.Vec3{0.35966998, -0.3473291, 0.0}, Color: purple},
	"E": {Position: f32.Vec3{0.44147372, 0.2347359, 0.0}, Color: purple},
}

// shapeOrder lists the two counter-clockwise triangles ABE and BCE.
var shapeOrder = [VertexCount]string{"A", "B", "E", "B", "C", "E"}

// Shape returns the vertices in draw order.
func Shape() []Vertex {
	out := make([]Vertex, 0, VertexCount)
	for _, name := range shapeOrder {
		out = append(out, Points[name])
	}
	return out
}

// VertexLayout describes Vertex to the render pipeline.
func VertexLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: VertexSize,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{
				Format:         gputypes.VertexFormatFloat32x3,
				Offset:         0,
				ShaderLocation: 0,
			},
			{
				Format:         gputypes.VertexFormatFloat32x3,
				Offset:         colorOffset,
				ShaderLocation: 1,
			},
		},
	}
}

// EncodeVertices packs vertices into little-endian float32 bytes, the layout
// VertexLayout describes.
func EncodeVertices(vs []Vertex) []byte {
	buf := make([]byte, 0, len(vs)*VertexSize)
	for _, v := range vs {
		for _, c := range v.Position {
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(c))
		}
		for _, c := range v.Color {
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(c))
		}
	}
	return buf
}
