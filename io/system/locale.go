// SPDX-License-Identifier: Unlicense OR MIT

package system

// Locale provides language information for the current system.
type Locale struct {
	// Language is the BCP-47 tag for the primary language.
	Language string
	// Direction is the primary direction of text in the language.
	Direction TextDirection
}

// TextDirection is the direction of text flow.
type TextDirection byte

const (
	// LTR is left-to-right text.
	LTR TextDirection = iota
	// RTL is right-to-left text.
	RTL
)

// Progression returns TowardOrigin for RTL text and FromOrigin for
// LTR text.
func (d TextDirection) Progression() Progression {
	if d == RTL {
		return TowardOrigin
	}
	return FromOrigin
}

func (d TextDirection) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	default:
		panic("invalid direction")
	}
}

// Progression describes the order glyphs are laid out relative
// to the text origin.
type Progression byte

const (
	// FromOrigin means that glyphs are positioned at increasing
	// distance from the origin.
	FromOrigin Progression = iota
	// TowardOrigin means that glyphs are positioned at decreasing
	// distance from the origin.
	TowardOrigin
)
