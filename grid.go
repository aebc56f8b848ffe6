package asciipng

import "image"

import "github.com/tinne26/asciipng/internal/config"

// A Grid places rows of text on fixed character cells. Cell sizes are
// approximations of a monospace font at the configured size and are not
// measured from the actual font, so the resulting canvas isn't
// guaranteed to be visually tight.
type Grid struct {
	CellWidth  int
	CellHeight int
	Padding    int // on each side
}

// Returns the grid defined by the given configuration.
func GridFromConfig(cfg config.Config) Grid {
	return Grid{ CellWidth: cfg.CharWidth, CellHeight: cfg.CharHeight, Padding: cfg.Padding }
}

// Returns the canvas size required for the given text block:
//   width  = columns*CellWidth  + 2*Padding
//   height = rows*CellHeight + 2*Padding
// If the block has no rows, [ErrEmptyText] is returned.
func (self Grid) Dimensions(text TextBlock) (width, height int, err error) {
	if text.Rows() == 0 { return 0, 0, ErrEmptyText }
	width  = text.Columns()*self.CellWidth + 2*self.Padding
	height = text.Rows()*self.CellHeight + 2*self.Padding
	return width, height, nil
}

// Returns the top-left position of the given row index.
func (self Grid) Origin(row int) image.Point {
	return image.Pt(self.Padding, self.Padding + row*self.CellHeight)
}

// Returns the top-left position of each row of the given text block,
// in order.
func (self Grid) Layout(text TextBlock) []image.Point {
	origins := make([]image.Point, text.Rows())
	for i := range origins {
		origins[i] = self.Origin(i)
	}
	return origins
}
