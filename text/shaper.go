// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"image/color"
	"math"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/exp/slices"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"orbeui.org/cow"
	"orbeui.org/f32"
	"orbeui.org/font"
	"orbeui.org/io/system"
	"orbeui.org/paint"
)

// Parameters describe the constraints of a text layout.
type Parameters struct {
	// Font selects the face used to shape the text.
	Font font.Font
	// PxPerEm is the size of the text in pixels.
	PxPerEm fixed.Int26_6
	// MaxWidth is the maximum width of a row in pixels. Zero or
	// negative means no limit.
	MaxWidth int
	// Locale provides the default language and direction of the text.
	Locale system.Locale
	// Color is the fill color of the glyph quads.
	Color color.NRGBA
	// Background, if its alpha is nonzero, fills each row behind the
	// glyphs.
	Background color.NRGBA
}

// Shaper converts strings of text into galleys. It is not safe for
// concurrent use.
type Shaper struct {
	faces []font.FontFace

	shaper        shaping.HarfbuzzShaper
	wrapper       shaping.LineWrapper
	bidiParagraph bidi.Paragraph

	outScratch []shaping.Output
}

// NewShaper constructs a Shaper from the given font collection. Faces
// are prioritized in the order in which they occur, with the first
// face being the default.
func NewShaper(collection []font.FontFace) *Shaper {
	return &Shaper{faces: collection}
}

// LayoutString shapes and wraps txt and returns the laid out galley
// in an exclusively owned handle.
func (s *Shaper) LayoutString(params Parameters, txt string) cow.Ref[Galley] {
	g := Galley{Text: txt}
	runes := []rune(txt)
	start := 0
	for {
		end := start
		hasNewline := false
		for end < len(runes) {
			if runes[end] == '\n' {
				hasNewline = true
				break
			}
			end++
		}
		s.layoutParagraph(&g, params, runes[start:end], hasNewline)
		if !hasNewline {
			break
		}
		start = end + 1
		if start == len(runes) {
			// A trailing newline produces a final empty row.
			s.layoutParagraph(&g, params, nil, false)
			break
		}
	}
	var y float32
	for _, rh := range g.Rows {
		row := rh.Load()
		if row.Size.X > g.Size.X {
			g.Size.X = row.Size.X
		}
		y += row.Size.Y
	}
	g.Size.Y = y
	return cow.New(g)
}

func (s *Shaper) layoutParagraph(g *Galley, params Parameters, para []rune, endsWithNewline bool) {
	face := s.faceFor(params.Font)
	lc := langConfig{
		Language:  language.NewLanguage(defaultLanguage(params.Locale.Language)),
		Direction: mapDirection(params.Locale.Direction),
		Script:    detectScript(para),
	}
	maxWidth := params.MaxWidth
	if maxWidth <= 0 {
		maxWidth = math.MaxInt32
	}
	if len(para) == 0 {
		// Shape an empty run to pick up the face's line metrics.
		out := s.shaper.Shape(toInput(face, params.PxPerEm, lc, nil))
		s.appendRow(g, params, shaping.Line{out}, endsWithNewline)
		return
	}
	inputs := s.splitBidi(toInput(face, params.PxPerEm, lc, para))
	s.outScratch = s.outScratch[:0]
	for _, in := range inputs {
		s.outScratch = append(s.outScratch, s.shaper.Shape(in))
	}
	lines, _ := s.wrapper.WrapParagraph(shaping.WrapConfig{}, maxWidth, para, shaping.NewSliceIterator(s.outScratch))
	for i, line := range lines {
		s.appendRow(g, params, line, endsWithNewline && i == len(lines)-1)
	}
}

// splitBidi divides the input on bidirectional boundaries, setting the
// text direction of each returned run.
func (s *Shaper) splitBidi(input shaping.Input) []shaping.Input {
	var splitInputs []shaping.Input
	def := bidi.LeftToRight
	if input.Direction == di.DirectionRTL {
		def = bidi.RightToLeft
	}
	s.bidiParagraph.SetString(string(input.Text), bidi.DefaultDirection(def))
	out, err := s.bidiParagraph.Order()
	if err != nil || out.NumRuns() <= 1 {
		return []shaping.Input{input}
	}
	for i := 0; i < out.NumRuns(); i++ {
		currentInput := input
		run := out.Run(i)
		_, endRune := run.Pos()
		currentInput.RunEnd = endRune + 1
		if run.Direction() == bidi.RightToLeft {
			currentInput.Direction = di.DirectionRTL
		} else {
			currentInput.Direction = di.DirectionLTR
		}
		splitInputs = append(splitInputs, currentInput)
		input.RunStart = currentInput.RunEnd
	}
	return splitInputs
}

// appendRow converts one wrapped line into a Row with its mesh and
// appends it to the galley.
func (s *Shaper) appendRow(g *Galley, params Parameters, line shaping.Line, endsWithNewline bool) {
	var (
		width           fixed.Int26_6
		ascent, descent fixed.Int26_6
		runeCount       int
		glyphs          []Glyph
	)
	for _, run := range line {
		glyphs = appendRunClusters(glyphs, run, width)
		width += run.Advance
		runeCount += run.Runes.Count
		if a := run.LineBounds.Ascent; a > ascent {
			ascent = a
		}
		if d := -run.LineBounds.Descent + run.LineBounds.Gap; d > descent {
			descent = d
		}
	}
	size := f32.Point{
		X: float32(width) / 64,
		Y: float32((ascent + descent).Ceil()),
	}
	if endsWithNewline {
		runeCount++
	}

	var mesh paint.Mesh
	glyphStart := 0
	if params.Background.A != 0 {
		mesh.AddColoredRect(f32.Rect(0, 0, size.X, size.Y), params.Background)
		glyphStart = len(mesh.Indices)
	}
	for _, gl := range glyphs {
		x := float32(gl.X) / 64
		adv := float32(gl.Advance) / 64
		mesh.AddQuad(f32.Rect(x, 0, x+adv, size.Y), f32.Rect(0, 0, 1, 1), params.Color)
	}

	row := Row{
		Glyphs:          glyphs,
		Size:            size,
		EndsWithNewline: endsWithNewline,
		RuneCount:       runeCount,
		Visuals: RowVisuals{
			MeshBounds:      mesh.Bounds(),
			GlyphIndexStart: glyphStart,
		},
	}
	row.Visuals.Mesh = mesh
	g.Rows = append(g.Rows, cow.New(row))
}

// appendRunClusters converts the glyphs of one shaped run into
// clusters in logical rune order, positioned visually starting at
// runStart.
func appendRunClusters(dst []Glyph, run shaping.Output, runStart fixed.Int26_6) []Glyph {
	type cluster struct {
		textIndex int
		runes     int
		x         fixed.Int26_6
		advance   fixed.Int26_6
		id        GlyphID
	}
	var clusters []cluster
	x := runStart
	for _, g := range run.Glyphs {
		if n := len(clusters); n > 0 && clusters[n-1].textIndex == g.ClusterIndex {
			clusters[n-1].advance += g.XAdvance
		} else {
			clusters = append(clusters, cluster{
				textIndex: g.ClusterIndex,
				runes:     g.RuneCount,
				x:         x,
				advance:   g.XAdvance,
				id:        GlyphID(g.GlyphID),
			})
		}
		x += g.XAdvance
	}
	// Glyphs of right-to-left runs arrive in visual order, which is
	// reverse rune order.
	slices.SortStableFunc(clusters, func(a, b cluster) int {
		return a.textIndex - b.textIndex
	})
	for _, c := range clusters {
		dst = append(dst, Glyph{
			ID:      c.id,
			X:       c.x,
			Advance: c.advance,
			Runes:   c.runes,
		})
	}
	return dst
}

type langConfig struct {
	Language  language.Language
	Direction di.Direction
	Script    language.Script
}

// toInput converts its parameters into a shaping.Input.
func toInput(face font.Face, ppem fixed.Int26_6, lc langConfig, runes []rune) shaping.Input {
	var input shaping.Input
	input.Direction = lc.Direction
	input.Text = runes
	input.Size = ppem
	input.Face = face.Face()
	input.Language = lc.Language
	input.Script = lc.Script
	input.RunStart = 0
	input.RunEnd = len(runes)
	return input
}

func (s *Shaper) faceFor(fnt font.Font) font.Face {
	if len(s.faces) == 0 {
		panic("no font faces loaded")
	}
	for _, ff := range s.faces {
		if ff.Font == fnt {
			return ff.Face
		}
	}
	for _, ff := range s.faces {
		if ff.Font.Typeface == fnt.Typeface {
			return ff.Face
		}
	}
	return s.faces[0].Face
}

func mapDirection(d system.TextDirection) di.Direction {
	if d.Progression() == system.TowardOrigin {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-common rune of the
// text.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if s := language.LookupScript(r); s != language.Common {
			return s
		}
	}
	return language.Latin
}

func defaultLanguage(lang string) string {
	if lang == "" {
		return "en"
	}
	return lang
}
