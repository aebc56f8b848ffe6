package fract

import "image"

import "golang.org/x/image/math/fixed"

// Glyph bounds in units. Like [image.Rectangle], Max is exclusive.
type Rect struct {
	Min Point
	Max Point
}

// Converts the bounds reported by [sfnt.Segments.Bounds]().
//
// [sfnt.Segments.Bounds]: https://pkg.go.dev/golang.org/x/image/font/sfnt#Segments.Bounds
func FromFixedRect(bounds fixed.Rectangle26_6) Rect {
	return Rect{
		Min: UnitsToPoint(Unit(bounds.Min.X), Unit(bounds.Min.Y)),
		Max: UnitsToPoint(Unit(bounds.Max.X), Unit(bounds.Max.Y)),
	}
}

// Returns the rect moved by the given offset.
func (self Rect) Add(offset Point) Rect {
	self.Min.X += offset.X
	self.Min.Y += offset.Y
	self.Max.X += offset.X
	self.Max.Y += offset.Y
	return self
}

// Returns the pixels touched by the rect, even partially.
func (self Rect) ImageRect() image.Rectangle {
	return image.Rect(
		self.Min.X.ToIntFloor(), self.Min.Y.ToIntFloor(),
		self.Max.X.ToIntCeil(), self.Max.Y.ToIntCeil(),
	)
}
