// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"testing"

	"golang.org/x/image/math/fixed"

	"orbeui.org/cow"
	"orbeui.org/f32"
)

func makeRow(advances []float32, runes []int, newline bool) Row {
	row := Row{EndsWithNewline: newline}
	var x float32
	for i, adv := range advances {
		row.Glyphs = append(row.Glyphs, Glyph{
			X:       fixed.Int26_6(x * 64),
			Advance: fixed.Int26_6(adv * 64),
			Runes:   runes[i],
		})
		x += adv
		row.RuneCount += runes[i]
	}
	row.Size = f32.Pt(x, 20)
	if newline {
		row.RuneCount++
	}
	return row
}

func TestXOffset(t *testing.T) {
	row := makeRow([]float32{10, 15, 5}, []int{1, 2, 1}, false)
	tests := []struct {
		column int
		want   float32
	}{
		{column: 0, want: 0},
		{column: 1, want: 10},
		// Column 2 is inside the two-rune cluster.
		{column: 2, want: 10},
		{column: 3, want: 25},
		{column: 4, want: 30},
		// Past the end of the row.
		{column: 9, want: 30},
	}
	for _, tc := range tests {
		if got := row.XOffset(tc.column); got != tc.want {
			t.Errorf("XOffset(%d) = %v, want %v", tc.column, got, tc.want)
		}
	}
}

func TestLayoutFromCursor(t *testing.T) {
	g := Galley{
		Rows: []cow.Ref[Row]{
			cow.New(makeRow([]float32{10, 10, 10}, []int{1, 1, 1}, true)),
			cow.New(makeRow([]float32{10, 10}, []int{1, 1}, false)),
		},
	}
	tests := []struct {
		index int
		want  RowCol
	}{
		{index: 0, want: RowCol{Row: 0, Column: 0}},
		{index: 3, want: RowCol{Row: 0, Column: 3}},
		// Past the newline, onto the second row.
		{index: 4, want: RowCol{Row: 1, Column: 0}},
		{index: 6, want: RowCol{Row: 1, Column: 2}},
		// Out of range clamps to the last valid position.
		{index: 100, want: RowCol{Row: 1, Column: 2}},
		{index: -5, want: RowCol{Row: 0, Column: 0}},
	}
	for _, tc := range tests {
		if got := g.LayoutFromCursor(Cursor{Index: tc.index}); got != tc.want {
			t.Errorf("LayoutFromCursor(%d) = %+v, want %+v", tc.index, got, tc.want)
		}
	}
}

func TestGalleyCloneSharesRows(t *testing.T) {
	g := Galley{
		Rows: []cow.Ref[Row]{cow.New(makeRow([]float32{10}, []int{1}, false))},
	}
	clone := g.Clone()
	if !g.Rows[0].Shared() {
		t.Errorf("clone did not share the row handle")
	}
	if clone.Rows[0].Load() != g.Rows[0].Load() {
		t.Errorf("cloned row handle refers to a different row")
	}
	clone.Rows[0].MakeMut().Size.X = 99
	if got := g.Rows[0].Load().Size.X; got != 10 {
		t.Errorf("original row mutated through clone: width %v", got)
	}
}

func TestCursorRangeSorted(t *testing.T) {
	r := CursorRange{Anchor: Cursor{Index: 8}, Head: Cursor{Index: 2}}
	min, max := r.Sorted()
	if min.Index != 2 || max.Index != 8 {
		t.Errorf("Sorted() = %d, %d; want 2, 8", min.Index, max.Index)
	}
	if r.Empty() {
		t.Errorf("non-empty range reported empty")
	}
	if !(CursorRange{Anchor: Cursor{Index: 3}, Head: Cursor{Index: 3}}).Empty() {
		t.Errorf("empty range not reported empty")
	}
}
