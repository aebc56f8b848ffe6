package mask

import "image"

import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/asciipng/fract"

var _ Rasterizer = (*SharpRasterizer)(nil)

// A rasterizer that quantizes all mask values to fully opaque or fully
// transparent. Block element art drawn on cells narrower than the glyph
// advances gets antialiased seams between neighbouring glyphs; this
// rasterizer removes them.
//
// Values at or above Threshold become opaque. The zero value uses 128.
type SharpRasterizer struct {
	Threshold uint8
	DefaultRasterizer
}

// Satisfies the [Rasterizer] interface.
func (self *SharpRasterizer) Rasterize(outline sfnt.Segments, origin fract.Point) (*image.Alpha, error) {
	mask, err := self.DefaultRasterizer.Rasterize(outline, origin)
	if err != nil || mask == nil { return mask, err }

	threshold := self.Threshold
	if threshold == 0 { threshold = 128 }
	for i, value := range mask.Pix {
		if value < threshold {
			mask.Pix[i] = 0
		} else {
			mask.Pix[i] = 255
		}
	}
	return mask, nil
}
