package font

import "errors"

import "golang.org/x/image/font/sfnt"

var ErrNotFound = errors.New("font property not found or empty")

// Returns the full name of the font, falling back to its family
// name. If neither is present, [ErrNotFound] is returned.
func GetName(f *sfnt.Font) (string, error) {
	var buffer sfnt.Buffer
	for _, id := range []sfnt.NameID{ sfnt.NameIDFull, sfnt.NameIDFamily } {
		name, err := f.Name(&buffer, id)
		if err == nil && name != "" { return name, nil }
		if err != nil && err != sfnt.ErrNotFound { return "", err }
	}
	return "", ErrNotFound
}

// Returns the runes of the text the font has no glyph for, without
// repetitions and in order of first appearance. Line breaks are never
// reported. These runes are drawn with the notdef glyph.
func GetMissingRunes(f *sfnt.Font, text string) ([]rune, error) {
	var buffer sfnt.Buffer
	var missing []rune
	seen := make(map[rune]struct{})
	for _, codePoint := range text {
		if codePoint == '\n' { continue }
		if _, found := seen[codePoint]; found { continue }
		seen[codePoint] = struct{}{}
		index, err := f.GlyphIndex(&buffer, codePoint)
		if err != nil { return missing, err }
		if index == 0 { missing = append(missing, codePoint) }
	}
	return missing, nil
}
