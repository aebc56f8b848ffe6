// asciipng renders a block of ASCII art into a PNG image with a
// transparent background. It is used to build the header graphic
// of the project documentation.
//
// The whole process is a single call:
//   width, height, err := asciipng.Render(asciipng.Header(), "assets/header.png")
//
// The canvas size is derived from the text geometry using fixed
// character cells ([Grid]), not from the font metrics. The font is
// the first loadable path of a short candidate list, or the built-in
// Go Mono font when none is available, so rendering never fails
// because of missing system fonts.
//
// For lower level access, [RenderImage]() returns the canvas without
// writing it, and a [Renderer] can draw rows on any [draw.Image].
package asciipng
