package fract

import "math"

// A 26.6 fixed point value: 64 units per pixel. Pen positions, font
// sizes and glyph bounds stay in this representation until a glyph
// mask is placed on the canvas.
type Unit int32

// Converts a whole number of pixels to units.
func FromInt(pixels int) Unit { return Unit(pixels) << 6 }

// Converts a pixel size to the nearest unit, ties rounding up
// (14.5px is 928, 1/128px is 1).
func FromFloat64Up(pixels float64) Unit {
	return Unit(math.Floor(pixels*64 + 0.5))
}

// Returns the subpixel part of the value, always in [0, 63].
func (self Unit) FractShift() Unit { return self & 63 }

func (self Unit) ToFloat32() float32 { return float32(self)/64 }

// Whole pixel conversions. Negative values round towards
// negative infinity like their positive counterparts.
func (self Unit) ToIntFloor() int { return int(self >> 6) }
func (self Unit) ToIntCeil() int  { return int((self + 63) >> 6) }

// Pixel aligned variants, still in units.
func (self Unit) Floor() Unit  { return self - self.FractShift() }
func (self Unit) Ceil() Unit   { return (self + 63).Floor() }
func (self Unit) HalfUp() Unit { return (self + 32).Floor() }
