package mask

import "image"

import "golang.org/x/image/font/sfnt"
import "github.com/tinne26/asciipng/fract"

// Rasterizer converts a glyph outline into an alpha mask.
//
// The mask bounds must be relative to the glyph origin plus the
// subpixel part of the pen position: the renderer only translates
// masks by whole pixels. Rasterizers can't be used concurrently.
type Rasterizer interface {
	Rasterize(outline sfnt.Segments, pen fract.Point) (*image.Alpha, error)
}

// Rasterizes the outline at the given pen position. Returns a nil mask
// when the outline has nothing to fill, like the space glyph or
// outlines that only move the pen.
func Rasterize(outline sfnt.Segments, rasterizer Rasterizer, pen fract.Point) (*image.Alpha, error) {
	if !hasContours(outline) { return nil, nil }
	return rasterizer.Rasterize(outline, pen)
}

func hasContours(outline sfnt.Segments) bool {
	for _, segment := range outline {
		if segment.Op != sfnt.SegmentOpMoveTo { return true }
	}
	return false
}
