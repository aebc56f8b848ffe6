package sizer

import "golang.org/x/image/font/sfnt"
import "github.com/tinne26/asciipng/fract"

var _ Sizer = CellSizer{}

// Places every glyph on a fixed character cell, ignoring the advances
// and kerning of the font. Proportional fonts then line up on the same
// columns as monospaced ones. The baseline still comes from the font.
type CellSizer struct {
	CellWidth fract.Unit
	DefaultSizer
}

// Satisfies the [Sizer] interface.
func (self CellSizer) Advance(*sfnt.Font, *sfnt.Buffer, fract.Unit, sfnt.GlyphIndex) fract.Unit {
	return self.CellWidth
}

// Satisfies the [Sizer] interface. Always zero.
func (CellSizer) Kern(*sfnt.Font, *sfnt.Buffer, fract.Unit, sfnt.GlyphIndex, sfnt.GlyphIndex) fract.Unit {
	return 0
}
