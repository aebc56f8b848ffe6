package asciipng

import "encoding/binary"
import "image"
import "image/color"
import "os"
import "path/filepath"
import "testing"

import "golang.org/x/image/font/gofont/gomono"

import "github.com/tinne26/asciipng/font"
import "github.com/tinne26/asciipng/internal/config"

// Default configuration without font candidates, so tests always
// render with the built-in font regardless of the system fonts.
func testConfig() config.Config {
	cfg := config.Default()
	cfg.FontCandidates = nil
	return cfg
}

func testRenderer() *Renderer {
	renderer := NewRenderer(font.Default(config.FontSizePx))
	renderer.SetColor(color.RGBA{ R: 0xAA, G: 0x5C, B: 0xC3, A: 255 })
	return renderer
}

// Returns the bounding box of all pixels with non-zero alpha.
func inkBounds(img *image.RGBA) image.Rectangle {
	var ink image.Rectangle
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if img.RGBAAt(x, y).A == 0 { continue }
			ink = ink.Union(image.Rect(x, y, x + 1, y + 1))
		}
	}
	return ink
}

// Writes a copy of Go Mono whose glyph table is overwritten with
// garbage. The file still parses as a font.
func writeBrokenGlyphsFont(t *testing.T) string {
	t.Helper()
	data := append([]byte(nil), gomono.TTF...)
	numTables := int(binary.BigEndian.Uint16(data[4:]))
	for i := 0; i < numTables; i++ {
		record := data[12 + 16*i:]
		if string(record[:4]) != "glyf" { continue }
		offset := int(binary.BigEndian.Uint32(record[8:]))
		length := int(binary.BigEndian.Uint32(record[12:]))
		for j := offset; j < offset + length; j++ { data[j] = 0x7F }
	}
	path := filepath.Join(t.TempDir(), "broken-glyphs.ttf")
	if err := os.WriteFile(path, data, 0o600); err != nil { t.Fatal(err) }
	return path
}
