package fract

import "image"

// A pen position on the canvas, in units.
type Point struct {
	X Unit
	Y Unit
}

func UnitsToPoint(x, y Unit) Point { return Point{ X: x, Y: y } }

// Pen position at the given pixel, e.g. the top-left corner of a row.
func IntsToPoint(x, y int) Point {
	return Point{ X: FromInt(x), Y: FromInt(y) }
}

// Returns the pixel containing the point. A glyph mask rasterized for
// this pen position is placed on the canvas with this offset.
func (self Point) FloorImagePoint() image.Point {
	return image.Pt(self.X.ToIntFloor(), self.Y.ToIntFloor())
}

// Returns the subpixel part of the point. Rasterizers only need this
// part of the pen position, as masks are translated by whole pixels.
func (self Point) FractShift() Point {
	return Point{ X: self.X.FractShift(), Y: self.Y.FractShift() }
}
