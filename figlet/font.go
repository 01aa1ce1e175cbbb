// Package figlet loads FIGlet-style bitmap fonts.
//
// A font holds exactly one glyph for every printable ASCII code (32..126).
// Glyphs are placed on fixed columns by the compositor; the format's
// smushing and kerning rules are deliberately not implemented.
package figlet

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

const (
	// FirstCode and LastCode bound the character range every font covers.
	FirstCode = 32
	LastCode  = 126
	// GlyphCount is the number of required glyphs.
	GlyphCount = LastCode - FirstCode + 1

	// FallbackCode is drawn for characters outside the font's range.
	FallbackCode = '?'
)

// Glyph is the picture of a single character: Height rows of equal
// width. Spaces in a row are transparent.
type Glyph struct {
	Code  rune
	Rows  []string
	Width int
}

// Height returns the number of rows in the glyph.
func (g Glyph) Height() int { return len(g.Rows) }

// Runes returns row y as a slice of runes, padded to the glyph width.
func (g Glyph) Runes(y int) []rune {
	r := []rune(g.Rows[y])
	for len(r) < g.Width {
		r = append(r, ' ')
	}
	return r
}

// cells measures glyph rows. East Asian ambiguous runes (block and box
// drawing characters among them) count as one column regardless of the
// process locale.
var cells = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// newGlyph pads every row to the widest one so the glyph is rectangular.
func newGlyph(code rune, rows []string) Glyph {
	width := 0
	for _, row := range rows {
		width = max(width, cells.StringWidth(row))
	}
	padded := make([]string, len(rows))
	for i, row := range rows {
		padded[i] = cells.FillRight(row, width)
	}
	return Glyph{Code: code, Rows: padded, Width: width}
}

// Font is an immutable set of 95 glyphs sharing one height.
type Font struct {
	Name      string
	Height    int
	Baseline  int
	Hardblank rune
	MaxLength int
	OldLayout int
	Comment   string

	glyphs [GlyphCount]Glyph
}

// Glyph returns the glyph for r and whether the font defines it.
func (f *Font) Glyph(r rune) (Glyph, bool) {
	if r < FirstCode || r > LastCode {
		return Glyph{}, false
	}
	return f.glyphs[r-FirstCode], true
}

// Lookup returns the glyph for r, falling back to the glyph for '?' when
// r lies outside the printable ASCII range.
func (f *Font) Lookup(r rune) Glyph {
	if g, ok := f.Glyph(r); ok {
		return g
	}
	return f.glyphs[FallbackCode-FirstCode]
}

// Validate checks the invariants every font must satisfy: a positive
// height, and one glyph per code whose rows all match that height and
// hold only single-column runes.
func (f *Font) Validate() error {
	if f.Height < 1 {
		return &FontFormatError{Reason: fmt.Sprintf("height %d is not positive", f.Height)}
	}
	for i, g := range f.glyphs {
		code := rune(FirstCode + i)
		if g.Code != code {
			return &FontFormatError{Reason: fmt.Sprintf("glyph %d is missing", code)}
		}
		if g.Height() != f.Height {
			return &FontFormatError{Reason: fmt.Sprintf(
				"glyph %d has %d rows, want %d", code, g.Height(), f.Height)}
		}
		for _, row := range g.Rows {
			if err := checkRow(row); err != nil {
				return &FontFormatError{Reason: fmt.Sprintf("glyph %d: %v", code, err)}
			}
			if cells.StringWidth(row) != g.Width {
				return &FontFormatError{Reason: fmt.Sprintf(
					"glyph %d is not rectangular", code)}
			}
		}
	}
	return nil
}

// checkRow rejects runes that do not occupy exactly one terminal column,
// since every glyph character maps onto one grid cell.
func checkRow(row string) error {
	for _, r := range row {
		if w := cells.RuneWidth(r); w != 1 {
			return fmt.Errorf("rune %q has display width %d", r, w)
		}
	}
	return nil
}

// FontFormatError reports a font definition that violates the format.
// Line is 1-based and zero when the problem is not tied to a line.
type FontFormatError struct {
	Line   int
	Reason string
	Err    error
}

func (e *FontFormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("font format: line %d: %s", e.Line, e.Reason)
	}
	return "font format: " + e.Reason
}

func (e *FontFormatError) Unwrap() error { return e.Err }
