package sizer

import "golang.org/x/image/font/sfnt"
import "github.com/tinne26/asciipng/fract"

// A Sizer positions glyphs within a row: how far below the top of the
// row the baseline sits, how far the pen moves after each glyph, and
// the kerning between consecutive glyphs.
//
// Rows themselves are placed by the grid, so sizers never decide the
// distance between rows. Sizer methods can't fail: the font is expected
// to have been validated for the text being drawn.
type Sizer interface {
	// Returns the offset from the top of a row to its baseline.
	Baseline(*sfnt.Font, *sfnt.Buffer, fract.Unit) fract.Unit

	// Returns the pen advance for the given glyph.
	Advance(*sfnt.Font, *sfnt.Buffer, fract.Unit, sfnt.GlyphIndex) fract.Unit

	// Returns the kerning adjustment between two consecutive glyphs.
	Kern(*sfnt.Font, *sfnt.Buffer, fract.Unit, sfnt.GlyphIndex, sfnt.GlyphIndex) fract.Unit
}
