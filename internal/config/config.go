// Package config holds the constants the header image is built from.
package config

import "image/color"

import "github.com/lucasb-eyer/go-colorful"

const (
	CharWidth  = 8  // approximate monospace cell width, in pixels
	CharHeight = 16 // approximate line height, in pixels
	Padding    = 20 // on each side

	FontSizePx = 14.0
	ColorHex   = "#AA5CC3" // jellyfin purple

	DefaultOutputPath = "assets/jellywatch-header.png"
)

// Tried in order; the first one that loads wins.
var fontCandidates = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSansMono.ttf",
	"/System/Library/Fonts/Monaco.dfont",
	"/usr/share/fonts/truetype/liberation/LiberationMono-Regular.ttf",
}

// Config groups the constants above so they can be passed around
// as a single value. Use [Default]() outside of tests.
type Config struct {
	CharWidth  int
	CharHeight int
	Padding    int

	FontSizePx     float64
	FontCandidates []string
	ColorHex       string
}

// Returns the configuration used to build the header image.
func Default() Config {
	return Config{
		CharWidth:  CharWidth,
		CharHeight: CharHeight,
		Padding:    Padding,
		FontSizePx: FontSizePx,
		FontCandidates: append([]string(nil), fontCandidates...),
		ColorHex:   ColorHex,
	}
}

// Returns the foreground color, always fully opaque.
func (self Config) Color() (color.RGBA, error) {
	c, err := colorful.Hex(self.ColorHex)
	if err != nil { return color.RGBA{}, err }
	r, g, b := c.RGB255()
	return color.RGBA{ R: r, G: g, B: b, A: 255 }, nil
}
