package font

import "errors"
import "fmt"
import "io/fs"
import "os"
import "path/filepath"
import "strings"

import "golang.org/x/image/font/sfnt"

// Why a font candidate was skipped.
type SkipReason uint8

const (
	SkipMissing     SkipReason = iota + 1 // the file can't be read
	SkipUnsupported                       // the extension isn't a format sfnt parses
	SkipInvalid                           // the data doesn't parse as a font
	SkipBroken                            // parses, but fails to produce glyphs
)

func (self SkipReason) String() string {
	switch self {
	case SkipMissing:     return "missing"
	case SkipUnsupported: return "unsupported format"
	case SkipInvalid:     return "invalid font data"
	case SkipBroken:      return "broken glyph data"
	default:
		return fmt.Sprintf("SkipReason(%d)", uint8(self))
	}
}

// The error returned by [Load]() and [Resolve]() checks.
type LoadError struct {
	Path   string
	Reason SkipReason
	Err    error
}

func (self *LoadError) Error() string {
	return fmt.Sprintf("font %q: %s: %s", self.Path, self.Reason, self.Err)
}

func (self *LoadError) Unwrap() error { return self.Err }

// Returns the skip reason if err is a [*LoadError], or zero otherwise.
func ReasonOf(err error) SkipReason {
	var loadErr *LoadError
	if errors.As(err, &loadErr) { return loadErr.Reason }
	return 0
}

var errUnsupported = errors.New("only .ttf, .otf, .ttc and .otc files are supported")

type fontFormat uint8

const (
	formatUnsupported fontFormat = iota
	formatSingle
	formatCollection
)

// Formats are told apart by extension, case-insensitively. Mac .dfont
// resource forks are not supported by sfnt.
func formatOf(path string) fontFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf":
		return formatSingle
	case ".ttc", ".otc":
		return formatCollection
	default:
		return formatUnsupported
	}
}

// Loads the font at the given path, taking the first face of font
// collections. The returned name is the font's full name, or the file
// name when the font has no readable name. Errors are always
// [*LoadError] values.
func Load(path string) (*sfnt.Font, string, error) {
	format := formatOf(path)
	if format == formatUnsupported {
		return nil, "", &LoadError{ Path: path, Reason: SkipUnsupported, Err: errUnsupported }
	}

	data, err := os.ReadFile(path)
	if err != nil {
		reason := SkipMissing
		if !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, fs.ErrPermission) {
			reason = SkipInvalid // directories and read failures
		}
		return nil, "", &LoadError{ Path: path, Reason: reason, Err: err }
	}

	face, err := parse(data, format)
	if err != nil {
		return nil, "", &LoadError{ Path: path, Reason: SkipInvalid, Err: err }
	}
	name, err := GetName(face)
	if err != nil {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return face, name, nil
}

func parse(data []byte, format fontFormat) (*sfnt.Font, error) {
	if format == formatSingle { return sfnt.Parse(data) }

	collection, err := sfnt.ParseCollection(data)
	if err != nil { return nil, err }
	if collection.NumFonts() == 0 { return nil, errors.New("empty font collection") }
	return collection.Font(0)
}
