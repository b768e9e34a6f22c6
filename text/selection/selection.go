// SPDX-License-Identifier: Unlicense OR MIT

// Package selection paints text selection highlights and the text
// cursor. Selection highlights are spliced into the draw mesh of each
// affected row so that they render above the row background but below
// the glyphs.
package selection

import (
	"image/color"
	"time"

	"orbeui.org/cow"
	"orbeui.org/f32"
	"orbeui.org/paint"
	"orbeui.org/text"
)

// Visuals is the style of selections and the text cursor.
type Visuals struct {
	Selection  SelectionStyle
	TextCursor CursorStyle
}

// SelectionStyle is the style of the selection highlight.
type SelectionStyle struct {
	// BgFill is the fill color of the highlight rectangles.
	BgFill color.NRGBA
}

// CursorStyle is the style of the text cursor.
type CursorStyle struct {
	// Stroke draws the cursor line.
	Stroke paint.Stroke
	// Blink enables cursor blinking.
	Blink bool
	// OnDuration is how long the cursor stays visible during one
	// blink cycle. Must be positive when Blink is set.
	OnDuration time.Duration
	// OffDuration is how long the cursor stays hidden during one
	// blink cycle.
	OffDuration time.Duration
}

// Context schedules repaints for blink animation.
type Context interface {
	// RequestRepaintAfter asks the frame scheduler to repaint no
	// later than d from now.
	RequestRepaintAfter(d time.Duration)
}

// RowVertexIndices records the six mesh indices inserted into one row
// by PaintSelection.
type RowVertexIndices struct {
	// Row is the index of the row within the galley.
	Row int
	// VertexIndices are the inserted index values, in the order they
	// appear in the index buffer.
	VertexIndices [6]uint32
}

// PaintSelection splices a highlight rectangle for the selected part
// of each row in r into that row's mesh. The galley is mutated
// through its copy-on-write handle, so other holders of the galley or
// of individual rows keep their unmodified geometry. If sink is
// non-nil, the inserted indices of each affected row are appended to
// it.
//
// An empty range is a no-op and leaves the galley untouched.
func PaintSelection(galley *cow.Ref[text.Galley], vis Visuals, r text.CursorRange, sink *[]RowVertexIndices) {
	if r.Empty() {
		return
	}
	g := galley.MakeMut()
	min, max := r.Sorted()
	minRC := g.LayoutFromCursor(min)
	maxRC := g.LayoutFromCursor(max)
	for ri := minRC.Row; ri <= maxRC.Row; ri++ {
		row := g.Rows[ri].MakeMut()
		var left float32
		if ri == minRC.Row {
			left = row.XOffset(minRC.Column)
		}
		var right float32
		if ri == maxRC.Row {
			right = row.XOffset(maxRC.Column)
		} else {
			right = row.Size.X
			if row.EndsWithNewline {
				// Extend the highlight past the row to show that
				// the newline is part of the selection.
				right += row.Height() / 2
			}
		}
		rect := f32.Rect(left, 0, right, row.Height())
		inserted := spliceHighlight(&row.Visuals, rect, vis.Selection.BgFill)
		row.Visuals.MeshBounds = row.Visuals.Mesh.Bounds()
		if sink != nil {
			*sink = append(*sink, RowVertexIndices{Row: ri, VertexIndices: inserted})
		}
	}
}

// spliceHighlight inserts rect into the mesh at the glyph index
// offset, so that the highlight draws after the background decoration
// but before the glyphs. The glyph index offset itself stays valid:
// glyph triangles move six slots later and the offset still separates
// decoration from glyphs.
func spliceHighlight(v *text.RowVisuals, rect f32.Rectangle, col color.NRGBA) [6]uint32 {
	mesh := &v.Mesh
	oldEnd := len(mesh.Indices)
	mesh.AddColoredRect(rect, col)
	var inserted [6]uint32
	copy(inserted[:], mesh.Indices[oldEnd:])
	// Shift the glyph indices six slots forward, back to front so the
	// overlapping ranges do not clobber each other, then place the new
	// indices in the vacated slots.
	for i := len(mesh.Indices) - 1; i >= v.GlyphIndexStart+6; i-- {
		mesh.Indices[i] = mesh.Indices[i-6]
	}
	copy(mesh.Indices[v.GlyphIndexStart:], inserted[:])
	return inserted
}

// PaintCursorEnd draws the cursor as a vertical stroke through the
// center of rect. It always draws, regardless of blink state.
func PaintCursorEnd(p paint.Painter, vis Visuals, rect f32.Rectangle) {
	x := (rect.Min.X + rect.Max.X) / 2
	p.LineSegment(f32.Pt(x, rect.Min.Y), f32.Pt(x, rect.Max.Y), vis.TextCursor.Stroke)
}

// PaintCursor draws the cursor at rect, blinking according to the
// style. The blink state is a pure function of the time since the
// last user interaction, so the cursor stays in phase across dropped
// frames without any persisted state. When the cursor is drawn, a
// repaint is requested for the moment it should disappear; when it is
// hidden, for the moment it should reappear.
func PaintCursor(ctx Context, vis Visuals, p paint.Painter, rect f32.Rectangle, sinceInteraction time.Duration) {
	if !vis.TextCursor.Blink {
		PaintCursorEnd(p, vis, rect)
		return
	}
	on := vis.TextCursor.OnDuration
	total := on + vis.TextCursor.OffDuration
	phase := sinceInteraction % total
	if phase < on {
		PaintCursorEnd(p, vis, rect)
		ctx.RequestRepaintAfter(on - phase)
	} else {
		ctx.RequestRepaintAfter(total - phase)
	}
}
