package font

import "encoding/binary"
import "os"
import "path/filepath"
import "testing"

func writeTempFont(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil { t.Fatal(err) }
	return path
}

// Returns the offset and length of the given table in a single font
// file, as listed in its table directory.
func findTable(t *testing.T, data []byte, tag string) (offset, length int) {
	t.Helper()
	numTables := int(binary.BigEndian.Uint16(data[4:]))
	for i := 0; i < numTables; i++ {
		record := data[12 + 16*i:]
		if string(record[:4]) != tag { continue }
		return int(binary.BigEndian.Uint32(record[8:])), int(binary.BigEndian.Uint32(record[12:]))
	}
	t.Fatalf("table %q not found", tag)
	return 0, 0
}

// Returns a copy of the font whose glyph outlines all claim more
// contours than their data can hold. Everything else is untouched, so
// the font still parses and maps runes.
func corruptGlyphData(t *testing.T, data []byte) []byte {
	t.Helper()
	corrupt := append([]byte(nil), data...)
	offset, length := findTable(t, corrupt, "glyf")
	for i := offset; i < offset + length; i++ {
		corrupt[i] = 0x7F
	}
	return corrupt
}

// Packs single font files into a TrueType collection, in order.
func buildCollection(t *testing.T, fonts ...[]byte) []byte {
	t.Helper()
	header := 12 + 4*len(fonts)
	out := make([]byte, header)
	copy(out, "ttcf")
	binary.BigEndian.PutUint32(out[4:], 0x00010000)
	binary.BigEndian.PutUint32(out[8:], uint32(len(fonts)))
	for i, data := range fonts {
		for len(out) % 4 != 0 { out = append(out, 0) }
		base := len(out)
		binary.BigEndian.PutUint32(out[12 + 4*i:], uint32(base))

		// table offsets are relative to the start of the collection
		font := append([]byte(nil), data...)
		numTables := int(binary.BigEndian.Uint16(font[4:]))
		for j := 0; j < numTables; j++ {
			record := font[12 + 16*j:]
			binary.BigEndian.PutUint32(record[8:], binary.BigEndian.Uint32(record[8:]) + uint32(base))
		}
		out = append(out, font...)
	}
	return out
}
