// SPDX-License-Identifier: Unlicense OR MIT

// Package paint provides the geometry primitives rendered by a backend:
// triangle meshes of colored, optionally textured vertices, and stroked
// line segments.
package paint

import (
	"image/color"

	"orbeui.org/f32"
)

// Vertex is a single mesh vertex.
type Vertex struct {
	// Position is in the coordinate space of the containing mesh.
	Position f32.Point
	// UV is the texture coordinate, normalized to [0, 1]. Vertices of
	// untextured triangles carry a zero UV, which backends map to a
	// white texel.
	UV f32.Point
	// Color is the vertex color, multiplied with the texel.
	Color color.NRGBA
}

// Mesh is a vertex buffer together with a triangle index buffer.
// Every three indices describe one triangle. Triangles are drawn in
// index buffer order, so later triangles render on top of earlier
// ones.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Reset empties the mesh, keeping its allocations.
func (m *Mesh) Reset() {
	m.Vertices = m.Vertices[:0]
	m.Indices = m.Indices[:0]
}

// Clone returns a deep copy of the mesh.
func (m Mesh) Clone() Mesh {
	return Mesh{
		Vertices: append([]Vertex(nil), m.Vertices...),
		Indices:  append([]uint32(nil), m.Indices...),
	}
}

// AddColoredRect appends r as two solid triangles of color col,
// adding 4 vertices and 6 indices.
func (m *Mesh) AddColoredRect(r f32.Rectangle, col color.NRGBA) {
	m.AddQuad(r, f32.Rectangle{}, col)
}

// AddQuad appends r as two triangles with texture coordinates
// interpolated over uv, adding 4 vertices and 6 indices.
func (m *Mesh) AddQuad(r, uv f32.Rectangle, col color.NRGBA) {
	base := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices,
		Vertex{Position: r.Min, UV: uv.Min, Color: col},
		Vertex{Position: f32.Pt(r.Max.X, r.Min.Y), UV: f32.Pt(uv.Max.X, uv.Min.Y), Color: col},
		Vertex{Position: f32.Pt(r.Min.X, r.Max.Y), UV: f32.Pt(uv.Min.X, uv.Max.Y), Color: col},
		Vertex{Position: r.Max, UV: uv.Max, Color: col},
	)
	m.Indices = append(m.Indices,
		base, base+1, base+2,
		base+2, base+1, base+3,
	)
}

// Bounds recomputes the bounding rectangle of the mesh vertices.
// The bounds of an empty mesh are the empty rectangle at the origin.
func (m Mesh) Bounds() f32.Rectangle {
	if len(m.Vertices) == 0 {
		return f32.Rectangle{}
	}
	b := f32.Rectangle{Min: m.Vertices[0].Position, Max: m.Vertices[0].Position}
	for _, v := range m.Vertices[1:] {
		if v.Position.X < b.Min.X {
			b.Min.X = v.Position.X
		}
		if v.Position.Y < b.Min.Y {
			b.Min.Y = v.Position.Y
		}
		if v.Position.X > b.Max.X {
			b.Max.X = v.Position.X
		}
		if v.Position.Y > b.Max.Y {
			b.Max.Y = v.Position.Y
		}
	}
	return b
}

// Stroke describes a stroked line.
type Stroke struct {
	// Width of the stroked line, in dp.
	Width float32
	Color color.NRGBA
}

// Painter is the draw target for immediate drawing of shapes that are
// not part of a retained mesh, such as the text cursor.
type Painter interface {
	// LineSegment strokes a straight line between from and to.
	LineSegment(from, to f32.Point, s Stroke)
}

// Recorder is a Painter that records the segments drawn into it, for
// tests and deferred rendering.
type Recorder struct {
	Segments []Segment
}

// Segment is one recorded LineSegment call.
type Segment struct {
	From, To f32.Point
	Stroke   Stroke
}

// LineSegment implements Painter.
func (r *Recorder) LineSegment(from, to f32.Point, s Stroke) {
	r.Segments = append(r.Segments, Segment{From: from, To: to, Stroke: s})
}

// Reset discards the recorded segments.
func (r *Recorder) Reset() {
	r.Segments = r.Segments[:0]
}
