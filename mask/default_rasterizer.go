package mask

import "image"
import "image/draw"

import "golang.org/x/image/vector"
import "golang.org/x/image/font/sfnt"
import "github.com/tinne26/asciipng/fract"

var _ Rasterizer = (*DefaultRasterizer)(nil)

// Antialiased rasterizer on top of [vector.Rasterizer], reused across
// glyphs. The zero value is ready to use.
//
// [vector.Rasterizer]: https://pkg.go.dev/golang.org/x/image/vector#Rasterizer
type DefaultRasterizer struct {
	rasterizer vector.Rasterizer
}

// Satisfies the [Rasterizer] interface.
func (self *DefaultRasterizer) Rasterize(outline sfnt.Segments, pen fract.Point) (*image.Alpha, error) {
	frame := newGlyphFrame(outline.Bounds(), pen)
	self.rasterizer.Reset(frame.pixels.Dx(), frame.pixels.Dy())
	self.rasterizer.DrawOp = draw.Src

	for _, segment := range outline {
		args := &segment.Args
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			self.rasterizer.MoveTo(frame.project(args[0]))
		case sfnt.SegmentOpLineTo:
			self.rasterizer.LineTo(frame.project(args[0]))
		case sfnt.SegmentOpQuadTo:
			cx, cy := frame.project(args[0])
			x, y := frame.project(args[1])
			self.rasterizer.QuadTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := frame.project(args[0])
			c2x, c2y := frame.project(args[1])
			x, y := frame.project(args[2])
			self.rasterizer.CubeTo(c1x, c1y, c2x, c2y, x, y)
		default:
			panic("unexpected segment op")
		}
	}

	mask := image.NewAlpha(image.Rect(0, 0, frame.pixels.Dx(), frame.pixels.Dy()))
	self.rasterizer.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	mask.Rect = frame.pixels
	return mask, nil
}
