package font

import "io"
import "log/slog"

import "golang.org/x/image/font"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/font/gofont/gomono"
import "golang.org/x/image/math/fixed"
import "github.com/tinne26/asciipng/fract"

// Name reported by [Default]() when the embedded font has no
// readable name.
const DefaultName = "Go Mono"

// A Handle is a parsed font bound to the path it was loaded from and
// the pixel size it must be rendered at. The same type is returned
// whichever candidate succeeded, including the built-in default.
type Handle struct {
	Font *sfnt.Font
	Name string
	Path string // empty for the built-in default
	Size fract.Unit
}

// Returns whether the handle holds the built-in default font.
func (self *Handle) IsDefault() bool { return self.Path == "" }

// Returns a handle for the built-in Go Mono font at the given
// pixel size.
func Default(sizePx float64) *Handle {
	face, err := sfnt.Parse(gomono.TTF)
	if err != nil { panic("embedded gomono font parse error: " + err.Error()) }
	name, err := GetName(face)
	if err != nil { name = DefaultName }
	return &Handle{ Font: face, Name: name, Size: fract.FromFloat64Up(sizePx) }
}

// Returns a handle for the first candidate that loads and can draw
// every rune of the sample text (runes without a glyph are fine, they
// map to notdef; glyph data that fails to load isn't). Candidates are
// skipped without error, each skip being logged at debug level with
// its [SkipReason]. When no candidate is usable, [Default]() is
// returned. The logger may be nil.
func Resolve(candidates []string, sizePx float64, sample string, logger *slog.Logger) *Handle {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	size := fract.FromFloat64Up(sizePx)
	for _, path := range candidates {
		handle, err := loadCandidate(path, size, sample)
		if err != nil {
			logger.Debug("skip font candidate",
				slog.String("path", path),
				slog.String("reason", ReasonOf(err).String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		logger.Debug("font resolved", slog.String("path", path), slog.String("name", handle.Name))
		return handle
	}

	handle := Default(sizePx)
	logger.Debug("no font candidate available, using default", slog.String("name", handle.Name))
	return handle
}

func loadCandidate(path string, size fract.Unit, sample string) (*Handle, error) {
	face, name, err := Load(path)
	if err != nil { return nil, err }
	if err := checkGlyphs(face, size, sample); err != nil {
		return nil, &LoadError{ Path: path, Reason: SkipBroken, Err: err }
	}
	return &Handle{ Font: face, Name: name, Path: path, Size: size }, nil
}

// Runs every font call the renderer makes for the sample text, so a
// font with corrupt tables is rejected here instead of failing midway
// through a drawing.
func checkGlyphs(face *sfnt.Font, size fract.Unit, sample string) error {
	var buffer sfnt.Buffer
	ppem := fixed.Int26_6(size)
	if _, err := face.Metrics(&buffer, ppem, font.HintingNone); err != nil {
		return err
	}

	checked := make(map[sfnt.GlyphIndex]struct{})
	var prev sfnt.GlyphIndex
	rowStart := true
	for _, codePoint := range sample {
		if codePoint == '\n' {
			rowStart = true
			continue
		}
		index, err := face.GlyphIndex(&buffer, codePoint)
		if err != nil { return err }
		if !rowStart {
			_, err := face.Kern(&buffer, prev, index, ppem, font.HintingNone)
			if err != nil && err != sfnt.ErrNotFound { return err }
		}
		prev, rowStart = index, false

		if _, found := checked[index]; found { continue }
		checked[index] = struct{}{}
		if _, err := face.LoadGlyph(&buffer, index, ppem, nil); err != nil { return err }
		if _, err := face.GlyphAdvance(&buffer, index, ppem, font.HintingNone); err != nil {
			return err
		}
	}
	return nil
}
