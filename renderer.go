package asciipng

import "io"
import "image"
import "image/color"
import "log/slog"

import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/asciipng/font"
import "github.com/tinne26/asciipng/mask"
import "github.com/tinne26/asciipng/sizer"

// The [Renderer] draws rows of text on a target image with a single
// font handle and a single color.
//
// Renderers hold an [sfnt.Buffer] and can't be used concurrently.
// They don't own the target image; the caller decides when it is
// created and when it gets persisted.
type Renderer struct {
	handle *font.Handle
	buffer sfnt.Buffer

	colorSrc   *image.Uniform
	fontSizer  sizer.Sizer
	rasterizer mask.Rasterizer
	logger     *slog.Logger
}

// Creates a new [Renderer] for the given font handle. The default
// color is opaque white, with a [sizer.DefaultSizer] and a
// [mask.DefaultRasterizer]. The handle is expected to come from
// [font.Resolve](), which checks that its glyphs can be drawn.
func NewRenderer(handle *font.Handle) *Renderer {
	if handle == nil || handle.Font == nil { panic("can't create a renderer with a nil font") }
	renderer := &Renderer{
		handle: handle,
		fontSizer: sizer.DefaultSizer{},
		rasterizer: &mask.DefaultRasterizer{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	renderer.SetColor(color.RGBA{255, 255, 255, 255})
	return renderer
}

// Sets the color to be used on subsequent draw operations.
func (self *Renderer) SetColor(fontColor color.RGBA) {
	self.colorSrc = image.NewUniform(fontColor)
}

// Sets the sizer used to obtain the row baseline, glyph advances
// and kerning.
func (self *Renderer) SetSizer(fontSizer sizer.Sizer) {
	if fontSizer == nil { panic("nil sizer") }
	self.fontSizer = fontSizer
}

// Sets the rasterizer used to convert glyph outlines to masks.
func (self *Renderer) SetRasterizer(rasterizer mask.Rasterizer) {
	if rasterizer == nil { panic("nil rasterizer") }
	self.rasterizer = rasterizer
}

// Sets the logger used to report missing glyphs. A nil logger
// discards everything.
func (self *Renderer) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	self.logger = logger
}
