// Package mask turns glyph outlines into alpha masks.
//
// Outlines come from [sfnt.Font.LoadGlyph]() relative to the glyph
// origin on the baseline, with y growing downwards. Masks keep those
// coordinates, shifted by the subpixel part of the pen position, so
// placing one on the canvas is a whole pixel translation.
//
// [sfnt.Font.LoadGlyph]: https://pkg.go.dev/golang.org/x/image/font/sfnt#Font.LoadGlyph
package mask
