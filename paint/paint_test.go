// SPDX-License-Identifier: Unlicense OR MIT

package paint

import (
	"image/color"
	"testing"

	"orbeui.org/f32"
)

func TestAddColoredRect(t *testing.T) {
	var m Mesh
	col := color.NRGBA{G: 0xff, A: 0xff}
	m.AddColoredRect(f32.Rect(1, 2, 3, 4), col)
	if len(m.Vertices) != 4 || len(m.Indices) != 6 {
		t.Fatalf("got %d vertices and %d indices, want 4 and 6", len(m.Vertices), len(m.Indices))
	}
	for _, v := range m.Vertices {
		if v.Color != col {
			t.Errorf("vertex color %v, want %v", v.Color, col)
		}
		if v.UV != (f32.Point{}) {
			t.Errorf("solid rect vertex has uv %v", v.UV)
		}
	}
	if got, want := m.Bounds(), f32.Rect(1, 2, 3, 4); got != want {
		t.Errorf("bounds %v, want %v", got, want)
	}
}

func TestAddQuadIndices(t *testing.T) {
	var m Mesh
	m.AddColoredRect(f32.Rect(0, 0, 1, 1), color.NRGBA{A: 0xff})
	m.AddQuad(f32.Rect(1, 0, 2, 1), f32.Rect(0, 0, 1, 1), color.NRGBA{A: 0xff})
	want := []uint32{0, 1, 2, 2, 1, 3, 4, 5, 6, 6, 5, 7}
	if len(m.Indices) != len(want) {
		t.Fatalf("got %d indices, want %d", len(m.Indices), len(want))
	}
	for i, idx := range m.Indices {
		if idx != want[i] {
			t.Errorf("index %d: got %d, want %d", i, idx, want[i])
		}
	}
}

func TestBoundsEmpty(t *testing.T) {
	var m Mesh
	if got := m.Bounds(); got != (f32.Rectangle{}) {
		t.Errorf("empty mesh bounds %v, want zero", got)
	}
}

func TestReset(t *testing.T) {
	var m Mesh
	m.AddColoredRect(f32.Rect(0, 0, 1, 1), color.NRGBA{A: 0xff})
	m.Reset()
	if len(m.Vertices) != 0 || len(m.Indices) != 0 {
		t.Errorf("reset left %d vertices and %d indices", len(m.Vertices), len(m.Indices))
	}
}
