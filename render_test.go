package asciipng

import "bytes"
import "errors"
import "image"
import "image/png"
import "log/slog"
import "os"
import "path/filepath"
import "strings"
import "testing"

import "github.com/tinne26/asciipng/internal/config"

func TestRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "header.png")
	width, height, err := Render(Header(), path, WithConfig(testConfig()))
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if width != 544 || height != 120 {
		t.Fatalf("expected 544x120, got %dx%d", width, height)
	}

	file, err := os.Open(path)
	if err != nil { t.Fatal(err) }
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil { t.Fatalf("invalid png: %s", err) }
	if img.Bounds() != image.Rect(0, 0, 544, 120) {
		t.Fatalf("unexpected decoded bounds %v", img.Bounds())
	}

	// corners are on the padding, so fully transparent
	for _, pt := range []image.Point{{0, 0}, {543, 0}, {0, 119}, {543, 119}} {
		if _, _, _, a := img.At(pt.X, pt.Y).RGBA(); a != 0 {
			t.Fatalf("expected transparent pixel at %v", pt)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	dir := t.TempDir()
	pathA, pathB := filepath.Join(dir, "a.png"), filepath.Join(dir, "b.png")
	for _, path := range []string{pathA, pathB} {
		if _, _, err := Render(Header(), path, WithConfig(testConfig())); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
	}
	a, err := os.ReadFile(pathA)
	if err != nil { t.Fatal(err) }
	b, err := os.ReadFile(pathB)
	if err != nil { t.Fatal(err) }
	if !bytes.Equal(a, b) {
		t.Fatal("expected identical output on identical input")
	}
}

func TestRenderOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := os.WriteFile(path, bytes.Repeat([]byte("x"), 1 << 20), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Render(TextBlock{ "ab" }, path, WithConfig(testConfig())); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	file, err := os.Open(path)
	if err != nil { t.Fatal(err) }
	defer file.Close()
	cfg, err := png.DecodeConfig(file)
	if err != nil { t.Fatalf("stale contents after overwrite: %s", err) }
	if cfg.Width != 2*8 + 40 || cfg.Height != 16 + 40 {
		t.Fatalf("unexpected size %dx%d", cfg.Width, cfg.Height)
	}
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()

	// missing parent directories are not created
	path := filepath.Join(dir, "missing", "out.png")
	if _, _, err := Render(Header(), path, WithConfig(testConfig())); err == nil {
		t.Fatal("expected error writing into a missing directory")
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatal("expected no output file")
	}

	// a directory can't be replaced
	if _, _, err := Render(Header(), dir, WithConfig(testConfig())); err == nil {
		t.Fatal("expected error writing to a directory")
	}

	path = filepath.Join(dir, "empty.png")
	_, _, err := Render(nil, path, WithConfig(testConfig()))
	if !errors.Is(err, ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatal("expected no output file for an empty block")
	}
}

func TestRenderOptions(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.Config)
	}{
		{"zero width", func(cfg *config.Config) { cfg.CharWidth = 0 }},
		{"negative height", func(cfg *config.Config) { cfg.CharHeight = -16 }},
		{"negative padding", func(cfg *config.Config) { cfg.Padding = -1 }},
		{"zero font size", func(cfg *config.Config) { cfg.FontSizePx = 0 }},
		{"bad color", func(cfg *config.Config) { cfg.ColorHex = "purple" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.modify(&cfg)
			if _, err := RenderImage(Header(), WithConfig(cfg)); err == nil {
				t.Fatal("expected error")
			}
		})
	}

	// custom grid
	cfg := testConfig()
	cfg.CharWidth, cfg.CharHeight, cfg.Padding = 10, 20, 0
	img, err := RenderImage(TextBlock{ "abc", "d" }, WithConfig(cfg), WithLogger(nil))
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if img.Bounds() != image.Rect(0, 0, 30, 40) {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	if inkBounds(img).Empty() { t.Fatal("expected ink") }
}

func TestRenderSharpEdges(t *testing.T) {
	img, err := RenderImage(Header(), WithConfig(testConfig()), WithSharpEdges())
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	var opaque int
	for i := 3; i < len(img.Pix); i += 4 {
		switch img.Pix[i] {
		case 0:
		case 255: opaque += 1
		default:
			t.Fatalf("unexpected alpha %d with sharp edges", img.Pix[i])
		}
	}
	if opaque == 0 { t.Fatal("expected ink") }
}

func TestRenderSkipsFontWithBrokenGlyphs(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{ Level: slog.LevelDebug }))
	cfg := testConfig()
	cfg.FontCandidates = []string{ writeBrokenGlyphsFont(t) }

	var img *image.RGBA
	var err error
	if !doesNotPanic(func() { img, err = RenderImage(Header(), WithConfig(cfg), WithLogger(logger)) }) {
		t.Fatal("unexpected panic with a broken candidate font")
	}
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if inkBounds(img).Empty() { t.Fatal("expected ink from the fallback font") }
	for _, want := range []string{ "broken glyph data", "fallback=true" } {
		if !strings.Contains(logs.String(), want) {
			t.Fatalf("expected %q in logs, got:\n%s", want, logs.String())
		}
	}
}
