// SPDX-License-Identifier: Unlicense OR MIT

// Package text implements shaped text layout. A paragraph of text is
// laid out into a Galley, an ordered sequence of visual rows that each
// carry their own draw mesh.
package text

import (
	"golang.org/x/image/math/fixed"

	"orbeui.org/cow"
	"orbeui.org/f32"
	"orbeui.org/paint"
)

// A Glyph is one shaped glyph cluster of a row.
type Glyph struct {
	// ID identifies the glyph within the face it was shaped with.
	ID GlyphID
	// X is the offset of the cluster from the left edge of the row.
	X fixed.Int26_6
	// Advance is the width of the cluster.
	Advance fixed.Int26_6
	// Runes is the number of source runes represented by the cluster.
	Runes int
}

// GlyphID uniquely identifies a glyph within its face.
type GlyphID uint32

// RowVisuals is the renderable geometry of a Row.
type RowVisuals struct {
	// Mesh holds the row's triangles in draw order: background
	// decoration first, then glyphs.
	Mesh paint.Mesh
	// MeshBounds is the bounding rectangle of Mesh.
	MeshBounds f32.Rectangle
	// GlyphIndexStart is the offset in Mesh.Indices where glyph
	// triangles begin. Everything before it is background decoration
	// that draws behind the glyphs.
	GlyphIndexStart int
}

// A Row is one visual line of a galley. Coordinates are local to the
// row, with the origin at its top left corner.
type Row struct {
	// Glyphs are the shaped glyph clusters in visual order.
	Glyphs []Glyph
	// Size is the horizontal and vertical extent of the row.
	Size f32.Point
	// EndsWithNewline reports whether the row ends with a hard line
	// break.
	EndsWithNewline bool
	// RuneCount is the number of source runes in the row, including
	// any trailing newline.
	RuneCount int
	// Visuals is the row's draw mesh.
	Visuals RowVisuals
}

// Clone returns a deep copy of the row.
func (r Row) Clone() Row {
	r.Glyphs = append([]Glyph(nil), r.Glyphs...)
	r.Visuals.Mesh = r.Visuals.Mesh.Clone()
	return r
}

// Height returns the vertical extent of the row.
func (r *Row) Height() float32 {
	return r.Size.Y
}

// XOffset returns the horizontal offset of the given column within
// the row. Columns are counted in runes from the start of the row; a
// column at or past the end of the row's glyphs maps to the row's
// full width.
func (r *Row) XOffset(column int) float32 {
	rem := column
	for _, g := range r.Glyphs {
		if rem < g.Runes {
			return float32(g.X) / 64
		}
		rem -= g.Runes
	}
	return r.Size.X
}

// A Galley is an immutable laid-out paragraph of text. Rows are held
// through copy-on-write handles so that galleys may share rows with
// their clones until one of them is mutated.
type Galley struct {
	// Rows are the visual lines, top to bottom.
	Rows []cow.Ref[Row]
	// Text is the source text.
	Text string
	// Size is the bounding size of the laid out text.
	Size f32.Point
}

// Clone returns a copy of the galley sharing the receiver's rows.
func (g Galley) Clone() Galley {
	rows := make([]cow.Ref[Row], len(g.Rows))
	for i, r := range g.Rows {
		rows[i] = r.Share()
	}
	g.Rows = rows
	return g
}

// RuneCount returns the number of runes of source text.
func (g *Galley) RuneCount() int {
	n := 0
	for _, r := range g.Rows {
		n += r.Load().RuneCount
	}
	return n
}

// A Cursor is a position within the text of a galley, counted in
// runes from the start of the text.
type Cursor struct {
	Index int
}

// A RowCol is a cursor position resolved against a galley's rows.
type RowCol struct {
	// Row is the index of the row containing the cursor.
	Row int
	// Column is the rune offset of the cursor within the row.
	Column int
}

// LayoutFromCursor resolves c to the row and column it falls on.
// Cursors out of range are clamped to the first or last valid
// position.
func (g *Galley) LayoutFromCursor(c Cursor) RowCol {
	rem := c.Index
	if rem < 0 {
		rem = 0
	}
	for i, rh := range g.Rows {
		row := rh.Load()
		if rem < row.RuneCount || i == len(g.Rows)-1 {
			if rem > row.RuneCount {
				rem = row.RuneCount
			}
			return RowCol{Row: i, Column: rem}
		}
		rem -= row.RuneCount
	}
	return RowCol{}
}

// A CursorRange is a text selection between two cursors. Anchor is
// where the selection started and Head is where it ends; Head moves
// when the user presses shift-arrow.
type CursorRange struct {
	Anchor Cursor
	Head   Cursor
}

// Empty reports whether the selection contains no runes.
func (r CursorRange) Empty() bool {
	return r.Anchor == r.Head
}

// Sorted returns the two cursors ordered by document position.
func (r CursorRange) Sorted() (min, max Cursor) {
	if r.Anchor.Index <= r.Head.Index {
		return r.Anchor, r.Head
	}
	return r.Head, r.Anchor
}
