package asciipng

import "image"
import "strconv"
import "log/slog"

import "golang.org/x/image/draw"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

import "github.com/tinne26/asciipng/font"
import "github.com/tinne26/asciipng/mask"
import "github.com/tinne26/asciipng/fract"

// Draws a single row of text with its top-left corner at the given
// pixel coordinates. The baseline offset, glyph advances and kerning
// come from the renderer's sizer. Line breaks are not interpreted;
// callers split text in rows first (see [SplitRows]()).
//
// Nothing is clipped or wrapped: glyphs falling outside the target
// bounds are simply not visible. Runes missing from the font are
// drawn with the font's notdef glyph. Font errors panic; fonts from
// [font.Resolve]() have been checked against the text they draw.
func (self *Renderer) DrawRow(target draw.Image, row string, x, y int) {
	if row == "" { return }
	if target == nil { panic("can't draw on nil target") }
	if target.Bounds().Empty() { return }

	sfntFont, size := self.handle.Font, self.handle.Size
	position := fract.IntsToPoint(x, y)
	position.Y += self.fontSizer.Baseline(sfntFont, &self.buffer, size)

	var prevIndex sfnt.GlyphIndex
	lineStart := true
	for _, codePoint := range row {
		index := self.getGlyphIndex(codePoint)

		// apply kerning unless at row start
		if lineStart {
			lineStart = false
		} else {
			position.X += self.fontSizer.Kern(sfntFont, &self.buffer, size, prevIndex, index)
		}
		position.X = position.X.HalfUp()

		self.drawGlyph(target, index, position)
		position.X += self.fontSizer.Advance(sfntFont, &self.buffer, size, index)
		prevIndex = index
	}
}

// Draws each row of the text block at the origin given by the grid.
// Runes the font can't represent are reported once, at debug level.
func (self *Renderer) DrawText(target draw.Image, text TextBlock, grid Grid) {
	self.reportMissingRunes(text)
	for i, origin := range grid.Layout(text) {
		self.DrawRow(target, text[i], origin.X, origin.Y)
	}
}

func (self *Renderer) reportMissingRunes(text TextBlock) {
	missing, err := font.GetMissingRunes(self.handle.Font, text.String())
	if err != nil {
		self.logger.Debug("missing runes check failed", slog.String("error", err.Error()))
		return
	}
	if len(missing) == 0 { return }
	self.logger.Debug(
		"font lacks glyphs, drawing notdef",
		slog.String("font", self.handle.Name),
		slog.String("runes", string(missing)),
	)
}

func (self *Renderer) getGlyphIndex(codePoint rune) sfnt.GlyphIndex {
	index, err := self.handle.Font.GlyphIndex(&self.buffer, codePoint)
	if err != nil { panic("font.GlyphIndex error: " + err.Error()) }
	return index // 0 (notdef) when missing
}

func (self *Renderer) drawGlyph(target draw.Image, index sfnt.GlyphIndex, origin fract.Point) {
	segments, err := self.handle.Font.LoadGlyph(&self.buffer, index, fixed.Int26_6(self.handle.Size), nil)
	if err != nil {
		panic("font.LoadGlyph(index = " + strconv.Itoa(int(index)) + ") error: " + err.Error())
	}

	// segments are only valid until the next buffer use,
	// so they must be rasterized right away
	alphaMask, err := mask.Rasterize(segments, self.rasterizer, origin)
	if err != nil { panic("glyph mask rasterization failed: " + err.Error()) }
	self.drawMask(target, origin, alphaMask)
}

// Composites the glyph mask over the target with the renderer's
// color. Pixels outside the mask are left untouched, which keeps
// the canvas background transparent.
func (self *Renderer) drawMask(target draw.Image, origin fract.Point, alphaMask *image.Alpha) {
	if alphaMask == nil { return } // spaces and empty glyphs will be nil

	// compute src and target rects within bounds
	shift := origin.FloorImagePoint()
	targetRect := target.Bounds().Intersect(alphaMask.Rect.Add(shift))
	if targetRect.Empty() { return }
	maskPoint := targetRect.Min.Sub(shift)
	draw.DrawMask(target, targetRect, self.colorSrc, image.Point{}, alphaMask, maskPoint, draw.Over)
}
