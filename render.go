package asciipng

import "io"
import "os"
import "fmt"
import "image"
import "image/png"
import "log/slog"

import "github.com/k1LoW/errors"

import "github.com/tinne26/asciipng/font"
import "github.com/tinne26/asciipng/mask"
import "github.com/tinne26/asciipng/internal/config"

type settings struct {
	config config.Config
	logger *slog.Logger
	sharp  bool
}

// Option configures [Render]() and [RenderImage]().
type Option func(*settings) error

// Sets the logger. Font resolution and missing glyphs are only
// reported at debug level. By default, logs are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) error {
		s.logger = logger
		return nil
	}
}

// Replaces the default configuration (cell size, padding, font size,
// font candidates and color).
func WithConfig(cfg config.Config) Option {
	return func(s *settings) error {
		if cfg.CharWidth <= 0 || cfg.CharHeight <= 0 || cfg.Padding < 0 {
			return fmt.Errorf("invalid grid configuration: cell %dx%d, padding %d", cfg.CharWidth, cfg.CharHeight, cfg.Padding)
		}
		if cfg.FontSizePx <= 0 {
			return fmt.Errorf("invalid font size: %v", cfg.FontSizePx)
		}
		s.config = cfg
		return nil
	}
}

// Disables antialiasing: every pixel is either fully transparent or
// drawn with the full text color.
func WithSharpEdges() Option {
	return func(s *settings) error {
		s.sharp = true
		return nil
	}
}

func newSettings(opts []Option) (*settings, error) {
	s := &settings{ config: config.Default() }
	for _, opt := range opts {
		if err := opt(s); err != nil { return nil, err }
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s, nil
}

// Draws the given text block on a new transparent canvas and returns
// it. The canvas size comes from the grid (see [Grid.Dimensions]()),
// and the font is resolved from the configured candidates, falling
// back to the built-in default font.
func RenderImage(text TextBlock, opts ...Option) (_ *image.RGBA, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	s, err := newSettings(opts)
	if err != nil { return nil, err }

	grid := GridFromConfig(s.config)
	width, height, err := grid.Dimensions(text)
	if err != nil { return nil, err }
	textColor, err := s.config.Color()
	if err != nil { return nil, err }

	// all channels start at zero: transparent black
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))

	handle := font.Resolve(s.config.FontCandidates, s.config.FontSizePx, text.String(), s.logger)
	renderer := NewRenderer(handle)
	renderer.SetColor(textColor)
	renderer.SetLogger(s.logger)
	if s.sharp {
		renderer.SetRasterizer(&mask.SharpRasterizer{})
	}
	renderer.DrawText(canvas, text, grid)

	s.logger.Debug("rendered text block",
		slog.Int("rows", text.Rows()), slog.Int("columns", text.Columns()),
		slog.Int("width", width), slog.Int("height", height),
		slog.String("font", handle.Name), slog.Bool("fallback", handle.IsDefault()),
	)
	return canvas, nil
}

// Renders the given text block and writes it as a PNG file to the given
// path, replacing any existing file. Returns the image dimensions.
func Render(text TextBlock, path string, opts ...Option) (width, height int, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	canvas, err := RenderImage(text, opts...)
	if err != nil { return 0, 0, err }
	if err := SavePNG(path, canvas); err != nil { return 0, 0, err }
	bounds := canvas.Bounds()
	return bounds.Dx(), bounds.Dy(), nil
}

// Encodes the image as PNG into the given path, truncating the file
// if it already exists. The file is closed on every path, and close
// errors are reported too.
func SavePNG(path string, img image.Image) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	file, err := os.Create(path)
	if err != nil { return err }
	defer func() {
		err = errors.Join(err, file.Close())
	}()
	return png.Encode(file, img)
}
