package mask

import "image"

import "golang.org/x/image/math/fixed"
import "github.com/tinne26/asciipng/fract"

// The pixel area a glyph covers once shifted by the subpixel part of
// the pen position. Outline points are projected into the frame,
// whose top-left pixel is (0, 0) for the vector rasterizer.
type glyphFrame struct {
	shift  fract.Point     // subpixel pen offset
	pixels image.Rectangle // relative to the glyph origin
}

func newGlyphFrame(bounds fixed.Rectangle26_6, pen fract.Point) glyphFrame {
	shift := pen.FractShift()
	return glyphFrame{
		shift: shift,
		pixels: fract.FromFixedRect(bounds).Add(shift).ImageRect(),
	}
}

// Returns the outline point in frame coordinates, as the float32 pair
// expected by [vector.Rasterizer].
//
// [vector.Rasterizer]: https://pkg.go.dev/golang.org/x/image/vector#Rasterizer
func (self *glyphFrame) project(point fixed.Point26_6) (float32, float32) {
	x := fract.Unit(point.X) + self.shift.X - fract.FromInt(self.pixels.Min.X)
	y := fract.Unit(point.Y) + self.shift.Y - fract.FromInt(self.pixels.Min.Y)
	return x.ToFloat32(), y.ToFloat32()
}
