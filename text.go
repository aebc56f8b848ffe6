package asciipng

import "errors"
import "strings"
import "unicode/utf8"

import _ "embed"

//go:embed header.txt
var headerText string

// Returned when trying to lay out a text block without rows.
var ErrEmptyText = errors.New("text block has no rows")

// An ordered sequence of rows of text. Rows are measured in
// characters (runes), and are not required to have the same
// length.
type TextBlock []string

// Returns the embedded header art. The returned block is a fresh
// copy each time, so callers can't alter the embedded text.
func Header() TextBlock {
	return SplitRows(headerText)
}

// Splits the given text into rows at line breaks. A single trailing
// line break doesn't create an extra empty row. An empty string
// results in an empty block.
func SplitRows(text string) TextBlock {
	text = strings.TrimSuffix(text, "\n")
	if text == "" { return nil }
	return strings.Split(text, "\n")
}

// Returns the number of rows in the block.
func (self TextBlock) Rows() int { return len(self) }

// Returns the length of the longest row, in runes.
func (self TextBlock) Columns() int {
	var columns int
	for _, row := range self {
		columns = maxInt(columns, utf8.RuneCountInString(row))
	}
	return columns
}

// Returns the rows joined with line breaks.
func (self TextBlock) String() string {
	return strings.Join(self, "\n")
}

func maxInt(a, b int) int {
	if a >= b { return a }
	return b
}
