// Package fract holds the 26.6 fixed point [Unit] used for pen
// positions and glyph bounds, plus the [Point] and [Rect] pairs.
//
// Values share the representation of [fixed.Int26_6], so they convert
// to and from [golang.org/x/image/font/sfnt] arguments directly. They
// are only turned into whole pixels when a glyph mask is placed on the
// canvas.
//
// [fixed.Int26_6]: https://pkg.go.dev/golang.org/x/image/math/fixed#Int26_6
package fract
