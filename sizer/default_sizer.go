package sizer

import "fmt"

import "golang.org/x/image/font"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"
import "github.com/tinne26/asciipng/fract"

var _ Sizer = DefaultSizer{}

// Spaces glyphs as the font says, with unhinted metrics. The baseline
// is the font ascent rounded up to a whole pixel, so that glyphs sit on
// pixel boundaries and never poke above the row top.
type DefaultSizer struct{}

// Satisfies the [Sizer] interface.
func (DefaultSizer) Baseline(f *sfnt.Font, buffer *sfnt.Buffer, size fract.Unit) fract.Unit {
	metrics, err := f.Metrics(buffer, fixed.Int26_6(size), font.HintingNone)
	if err != nil { panic(fmt.Sprintf("font metrics at size %d: %s", size, err)) }
	return fract.Unit(metrics.Ascent).Ceil()
}

// Satisfies the [Sizer] interface.
func (DefaultSizer) Advance(f *sfnt.Font, buffer *sfnt.Buffer, size fract.Unit, index sfnt.GlyphIndex) fract.Unit {
	advance, err := f.GlyphAdvance(buffer, index, fixed.Int26_6(size), font.HintingNone)
	if err != nil { panic(fmt.Sprintf("advance of glyph %d: %s", index, err)) }
	return fract.Unit(advance)
}

// Satisfies the [Sizer] interface. Fonts without kerning data
// report zero.
func (DefaultSizer) Kern(f *sfnt.Font, buffer *sfnt.Buffer, size fract.Unit, prev, next sfnt.GlyphIndex) fract.Unit {
	kern, err := f.Kern(buffer, prev, next, fixed.Int26_6(size), font.HintingNone)
	switch err {
	case nil:
		return fract.Unit(kern)
	case sfnt.ErrNotFound:
		return 0
	default:
		panic(fmt.Sprintf("kerning between glyphs %d and %d: %s", prev, next, err))
	}
}
