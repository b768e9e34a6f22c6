// SPDX-License-Identifier: Unlicense OR MIT

package selection

import (
	"image/color"
	"reflect"
	"testing"
	"time"

	"golang.org/x/image/math/fixed"

	"orbeui.org/cow"
	"orbeui.org/f32"
	"orbeui.org/paint"
	"orbeui.org/text"
)

var testVisuals = Visuals{
	Selection: SelectionStyle{
		BgFill: color.NRGBA{R: 0x00, G: 0x7a, B: 0xcc, A: 0xff},
	},
	TextCursor: CursorStyle{
		Stroke:      paint.Stroke{Width: 2, Color: color.NRGBA{A: 0xff}},
		Blink:       true,
		OnDuration:  500 * time.Millisecond,
		OffDuration: 500 * time.Millisecond,
	},
}

// testRow builds a row of evenly spaced single-rune glyph clusters
// with one glyph quad per cluster in its mesh.
func testRow(width, height float32, nglyphs int, newline, background bool) text.Row {
	adv := width / float32(nglyphs)
	row := text.Row{
		Size:            f32.Pt(width, height),
		EndsWithNewline: newline,
		RuneCount:       nglyphs,
	}
	if newline {
		row.RuneCount++
	}
	var mesh paint.Mesh
	if background {
		mesh.AddColoredRect(f32.Rect(0, 0, width, height), color.NRGBA{R: 0xff, A: 0xff})
	}
	start := len(mesh.Indices)
	for i := 0; i < nglyphs; i++ {
		x := adv * float32(i)
		row.Glyphs = append(row.Glyphs, text.Glyph{
			X:       fixed.Int26_6(x * 64),
			Advance: fixed.Int26_6(adv * 64),
			Runes:   1,
		})
		mesh.AddQuad(f32.Rect(x, 0, x+adv, height), f32.Rect(0, 0, 1, 1), color.NRGBA{A: 0xff})
	}
	row.Visuals = text.RowVisuals{
		Mesh:            mesh,
		MeshBounds:      mesh.Bounds(),
		GlyphIndexStart: start,
	}
	return row
}

func testGalley(rows ...text.Row) cow.Ref[text.Galley] {
	g := text.Galley{}
	for _, r := range rows {
		g.Rows = append(g.Rows, cow.New(r))
		g.Size.Y += r.Size.Y
		if r.Size.X > g.Size.X {
			g.Size.X = r.Size.X
		}
	}
	return cow.New(g)
}

// insertedBounds returns the bounding rectangle of the vertices
// referenced by a sink record.
func insertedBounds(t *testing.T, mesh paint.Mesh, rec RowVertexIndices) f32.Rectangle {
	t.Helper()
	var b f32.Rectangle
	for i, idx := range rec.VertexIndices {
		if int(idx) >= len(mesh.Vertices) {
			t.Fatalf("inserted index %d out of range (%d vertices)", idx, len(mesh.Vertices))
		}
		p := mesh.Vertices[idx].Position
		if i == 0 {
			b = f32.Rectangle{Min: p, Max: p}
			continue
		}
		if p.X < b.Min.X {
			b.Min.X = p.X
		}
		if p.Y < b.Min.Y {
			b.Min.Y = p.Y
		}
		if p.X > b.Max.X {
			b.Max.X = p.X
		}
		if p.Y > b.Max.Y {
			b.Max.Y = p.Y
		}
	}
	return b
}

func TestPaintSelectionEmptyNoop(t *testing.T) {
	galley := testGalley(testRow(100, 20, 10, false, true))
	before := galley.Load().Rows[0].Load().Visuals.Mesh.Clone()
	var sink []RowVertexIndices

	PaintSelection(&galley, testVisuals, text.CursorRange{
		Anchor: text.Cursor{Index: 4},
		Head:   text.Cursor{Index: 4},
	}, &sink)

	after := galley.Load().Rows[0].Load().Visuals.Mesh
	if !reflect.DeepEqual(before, after) {
		t.Errorf("empty selection modified the row mesh")
	}
	if len(sink) != 0 {
		t.Errorf("empty selection appended %d sink records", len(sink))
	}
}

func TestPaintSelectionIndexCount(t *testing.T) {
	galley := testGalley(
		testRow(100, 20, 10, false, false),
		testRow(100, 20, 10, false, true),
		testRow(100, 20, 10, false, false),
	)
	counts := make([]int, 3)
	for i, r := range galley.Load().Rows {
		counts[i] = len(r.Load().Visuals.Mesh.Indices)
	}

	PaintSelection(&galley, testVisuals, text.CursorRange{
		Anchor: text.Cursor{Index: 5},
		Head:   text.Cursor{Index: 23},
	}, nil)

	for i, r := range galley.Load().Rows {
		if got, want := len(r.Load().Visuals.Mesh.Indices), counts[i]+6; got != want {
			t.Errorf("row %d: got %d indices, want %d", i, got, want)
		}
	}
}

func TestPaintSelectionOrderInvariant(t *testing.T) {
	galley := testGalley(testRow(100, 20, 10, false, true))
	row := galley.Load().Rows[0].Load()
	start := row.Visuals.GlyphIndexStart
	background := append([]uint32(nil), row.Visuals.Mesh.Indices[:start]...)
	glyphs := append([]uint32(nil), row.Visuals.Mesh.Indices[start:]...)
	var sink []RowVertexIndices

	PaintSelection(&galley, testVisuals, text.CursorRange{
		Anchor: text.Cursor{Index: 2},
		Head:   text.Cursor{Index: 8},
	}, &sink)

	row = galley.Load().Rows[0].Load()
	if got := row.Visuals.GlyphIndexStart; got != start {
		t.Errorf("glyph index start changed: got %d, want %d", got, start)
	}
	indices := row.Visuals.Mesh.Indices
	if !reflect.DeepEqual(indices[:start], background) {
		t.Errorf("background indices changed: got %v, want %v", indices[:start], background)
	}
	if got := indices[start : start+6]; !reflect.DeepEqual(got, sink[0].VertexIndices[:]) {
		t.Errorf("selection indices not at glyph offset: got %v, want %v", got, sink[0].VertexIndices)
	}
	if got := indices[start+6:]; !reflect.DeepEqual(got, glyphs) {
		t.Errorf("glyph indices reordered: got %v, want %v", got, glyphs)
	}
}

func TestPaintSelectionGeometry(t *testing.T) {
	galley := testGalley(testRow(100, 20, 10, false, false))
	var sink []RowVertexIndices

	PaintSelection(&galley, testVisuals, text.CursorRange{
		Anchor: text.Cursor{Index: 2},
		Head:   text.Cursor{Index: 8},
	}, &sink)

	if len(sink) != 1 {
		t.Fatalf("got %d sink records, want 1", len(sink))
	}
	row := galley.Load().Rows[0].Load()
	want := f32.Rect(20, 0, 80, 20)
	if got := insertedBounds(t, row.Visuals.Mesh, sink[0]); got != want {
		t.Errorf("highlight bounds: got %v, want %v", got, want)
	}
	for _, idx := range sink[0].VertexIndices {
		if got := row.Visuals.Mesh.Vertices[idx].Color; got != testVisuals.Selection.BgFill {
			t.Errorf("highlight color: got %v, want %v", got, testVisuals.Selection.BgFill)
		}
	}
}

func TestPaintSelectionMultiRow(t *testing.T) {
	galley := testGalley(
		testRow(100, 20, 10, false, false),
		testRow(100, 20, 10, false, false),
		testRow(100, 20, 10, false, false),
	)
	var sink []RowVertexIndices

	// Row 0 column 5 through row 2 column 3.
	PaintSelection(&galley, testVisuals, text.CursorRange{
		Anchor: text.Cursor{Index: 5},
		Head:   text.Cursor{Index: 23},
	}, &sink)

	want := []f32.Rectangle{
		f32.Rect(50, 0, 100, 20),
		f32.Rect(0, 0, 100, 20),
		f32.Rect(0, 0, 30, 20),
	}
	if len(sink) != len(want) {
		t.Fatalf("got %d sink records, want %d", len(sink), len(want))
	}
	for i, rec := range sink {
		if rec.Row != i {
			t.Errorf("record %d: got row %d, want %d", i, rec.Row, i)
		}
		mesh := galley.Load().Rows[rec.Row].Load().Visuals.Mesh
		if got := insertedBounds(t, mesh, rec); got != want[i] {
			t.Errorf("row %d highlight bounds: got %v, want %v", i, got, want[i])
		}
	}
}

func TestPaintSelectionReversedRange(t *testing.T) {
	galley := testGalley(testRow(100, 20, 10, false, false))
	var sink []RowVertexIndices

	PaintSelection(&galley, testVisuals, text.CursorRange{
		Anchor: text.Cursor{Index: 8},
		Head:   text.Cursor{Index: 2},
	}, &sink)

	row := galley.Load().Rows[0].Load()
	want := f32.Rect(20, 0, 80, 20)
	if got := insertedBounds(t, row.Visuals.Mesh, sink[0]); got != want {
		t.Errorf("highlight bounds: got %v, want %v", got, want)
	}
}

func TestPaintSelectionNewlineSliver(t *testing.T) {
	galley := testGalley(
		testRow(40, 20, 4, true, false),
		testRow(40, 20, 4, false, false),
	)
	var sink []RowVertexIndices

	// The whole first row plus part of the second.
	PaintSelection(&galley, testVisuals, text.CursorRange{
		Anchor: text.Cursor{Index: 0},
		Head:   text.Cursor{Index: 7},
	}, &sink)

	mesh := galley.Load().Rows[0].Load().Visuals.Mesh
	want := f32.Rect(0, 0, 50, 20)
	if got := insertedBounds(t, mesh, sink[0]); got != want {
		t.Errorf("newline row highlight bounds: got %v, want %v", got, want)
	}
}

func TestPaintSelectionMeshBounds(t *testing.T) {
	galley := testGalley(testRow(100, 20, 10, false, false))

	PaintSelection(&galley, testVisuals, text.CursorRange{
		Anchor: text.Cursor{Index: 0},
		Head:   text.Cursor{Index: 10},
	}, nil)

	row := galley.Load().Rows[0].Load()
	if got, want := row.Visuals.MeshBounds, row.Visuals.Mesh.Bounds(); got != want {
		t.Errorf("mesh bounds not recomputed: got %v, want %v", got, want)
	}
}

func TestPaintSelectionCopyOnWrite(t *testing.T) {
	galley := testGalley(testRow(100, 20, 10, false, false))
	shared := galley.Share()
	defer shared.Drop()
	before := len(shared.Load().Rows[0].Load().Visuals.Mesh.Indices)

	PaintSelection(&galley, testVisuals, text.CursorRange{
		Anchor: text.Cursor{Index: 2},
		Head:   text.Cursor{Index: 8},
	}, nil)

	if got := len(shared.Load().Rows[0].Load().Visuals.Mesh.Indices); got != before {
		t.Errorf("shared holder observed mutation: got %d indices, want %d", got, before)
	}
	if got := len(galley.Load().Rows[0].Load().Visuals.Mesh.Indices); got != before+6 {
		t.Errorf("painted galley: got %d indices, want %d", got, before+6)
	}
}

type repaintRecorder struct {
	wakes []time.Duration
}

func (r *repaintRecorder) RequestRepaintAfter(d time.Duration) {
	r.wakes = append(r.wakes, d)
}

func TestPaintCursorEnd(t *testing.T) {
	var rec paint.Recorder
	PaintCursorEnd(&rec, testVisuals, f32.Rect(10, 0, 20, 30))
	if len(rec.Segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(rec.Segments))
	}
	seg := rec.Segments[0]
	if seg.From != f32.Pt(15, 0) || seg.To != f32.Pt(15, 30) {
		t.Errorf("cursor segment %v-%v, want (15,0)-(15,30)", seg.From, seg.To)
	}
	if seg.Stroke != testVisuals.TextCursor.Stroke {
		t.Errorf("cursor stroke %v, want %v", seg.Stroke, testVisuals.TextCursor.Stroke)
	}
}

func TestPaintCursorBlink(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		drawn   bool
		wake    time.Duration
	}{
		{elapsed: 700 * time.Millisecond, drawn: true, wake: 300 * time.Millisecond},
		// One full cycle later the phase repeats.
		{elapsed: 1700 * time.Millisecond, drawn: true, wake: 300 * time.Millisecond},
		{elapsed: 1200 * time.Millisecond, drawn: true, wake: 300 * time.Millisecond},
		{elapsed: 600 * time.Millisecond, drawn: false, wake: 400 * time.Millisecond},
		{elapsed: 0, drawn: true, wake: 500 * time.Millisecond},
	}
	for _, tc := range tests {
		var rec paint.Recorder
		var sched repaintRecorder
		PaintCursor(&sched, testVisuals, &rec, f32.Rect(0, 0, 2, 20), tc.elapsed)
		if drawn := len(rec.Segments) > 0; drawn != tc.drawn {
			t.Errorf("elapsed %v: drawn %v, want %v", tc.elapsed, drawn, tc.drawn)
		}
		if len(sched.wakes) != 1 {
			t.Fatalf("elapsed %v: got %d wakeups, want 1", tc.elapsed, len(sched.wakes))
		}
		if sched.wakes[0] != tc.wake {
			t.Errorf("elapsed %v: wakeup after %v, want %v", tc.elapsed, sched.wakes[0], tc.wake)
		}
	}
}

func TestPaintCursorBlinkDisabled(t *testing.T) {
	vis := testVisuals
	vis.TextCursor.Blink = false
	for _, elapsed := range []time.Duration{0, 600 * time.Millisecond, 3 * time.Second} {
		var rec paint.Recorder
		var sched repaintRecorder
		PaintCursor(&sched, vis, &rec, f32.Rect(0, 0, 2, 20), elapsed)
		if len(rec.Segments) != 1 {
			t.Errorf("elapsed %v: got %d segments, want 1", elapsed, len(rec.Segments))
		}
		if len(sched.wakes) != 0 {
			t.Errorf("elapsed %v: got %d wakeups, want none", elapsed, len(sched.wakes))
		}
	}
}
