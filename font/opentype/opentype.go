// SPDX-License-Identifier: Unlicense OR MIT

// Package opentype implements text layout and shaping for OpenType
// files.
package opentype

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
)

// Face is a thread-safe representation of a loaded font. For efficiency,
// applications should construct a face for any given font file once, reusing
// it across different text shapers.
type Face struct {
	font *font.Font
}

// Parse constructs a Face from source bytes.
func Parse(src []byte) (Face, error) {
	parsed, err := font.ParseTTF(bytes.NewReader(src))
	if err != nil {
		return Face{}, fmt.Errorf("opentype: failed parsing truetype font: %w", err)
	}
	return Face{font: parsed.Font}, nil
}

// Face returns a thread-unsafe wrapper for this Face suitable for use by a
// single shaper. Face may be invoked any number of times and is safe so long
// as each return value is only used by one goroutine.
func (f Face) Face() *font.Face {
	return font.NewFace(f.font)
}
