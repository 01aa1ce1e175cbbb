package figlet

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Signature is the magic prefix of every font header. The character that
// follows it is the font's hardblank.
const Signature = "flf2a"

// MaxHeight bounds the glyph height a header may declare.
const MaxHeight = 1024

// Header holds the fields of a font's first line. Only Height and
// CommentLines drive parsing; the rest are kept for reference.
type Header struct {
	Hardblank      rune
	Height         int
	Baseline       int
	MaxLength      int
	OldLayout      int
	CommentLines   int
	PrintDirection int
	FullLayout     int
	CodetagCount   int
}

// ParseHeader parses a font header line such as
// "flf2a$ 6 5 16 15 13 0 24463 229".
func ParseHeader(line string) (Header, error) {
	var h Header
	line = strings.TrimRight(line, "\r")
	if !strings.HasPrefix(line, Signature) {
		return h, &FontFormatError{Line: 1, Reason: fmt.Sprintf(
			"header does not start with %q", Signature)}
	}
	hb, size := utf8.DecodeRuneInString(line[len(Signature):])
	if size == 0 || hb == ' ' || hb == utf8.RuneError {
		return h, &FontFormatError{Line: 1, Reason: "header has no hardblank"}
	}
	h.Hardblank = hb

	fields := strings.Fields(line[len(Signature)+size:])
	if len(fields) < 5 {
		return h, &FontFormatError{Line: 1, Reason: fmt.Sprintf(
			"header has %d numeric fields, want at least 5", len(fields))}
	}
	targets := []*int{
		&h.Height, &h.Baseline, &h.MaxLength, &h.OldLayout, &h.CommentLines,
		&h.PrintDirection, &h.FullLayout, &h.CodetagCount,
	}
	names := []string{
		"height", "baseline", "max length", "old layout", "comment lines",
		"print direction", "full layout", "codetag count",
	}
	for i, f := range fields {
		if i >= len(targets) {
			break
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return h, &FontFormatError{
				Line:   1,
				Reason: fmt.Sprintf("header %s %q is not an integer", names[i], f),
				Err:    err,
			}
		}
		*targets[i] = v
	}
	if h.Height < 1 {
		return h, &FontFormatError{Line: 1, Reason: fmt.Sprintf(
			"height %d is not positive", h.Height)}
	}
	if h.Height > MaxHeight {
		return h, &FontFormatError{Line: 1, Reason: fmt.Sprintf(
			"height %d exceeds %d", h.Height, MaxHeight)}
	}
	if h.CommentLines < 0 {
		return h, &FontFormatError{Line: 1, Reason: fmt.Sprintf(
			"comment line count %d is negative", h.CommentLines)}
	}
	return h, nil
}

// lineReader hands out lines while counting them for error messages.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func (lr *lineReader) next() (string, bool, error) {
	if !lr.sc.Scan() {
		return "", false, lr.sc.Err()
	}
	lr.line++
	return strings.TrimRight(lr.sc.Text(), "\r"), true, nil
}

// Parse reads a font definition: a header line, the declared number of
// comment lines, then Height lines for each code from 32 to 126. Each
// glyph line is terminated by its end mark (the line's last character);
// a doubled end mark terminates the glyph. End marks are stripped and
// hardblanks become spaces. Code-tagged glyphs past the required set are
// ignored.
func Parse(r io.Reader) (*Font, error) {
	lr := &lineReader{sc: bufio.NewScanner(r)}
	lr.sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	first, ok, err := lr.next()
	if err != nil {
		return nil, &FontFormatError{Line: 1, Reason: "reading header", Err: err}
	}
	if !ok {
		return nil, &FontFormatError{Line: 1, Reason: "empty font definition"}
	}
	h, err := ParseHeader(first)
	if err != nil {
		return nil, err
	}

	font := &Font{
		Height:    h.Height,
		Baseline:  h.Baseline,
		Hardblank: h.Hardblank,
		MaxLength: h.MaxLength,
		OldLayout: h.OldLayout,
	}

	var comments []string
	for i := 0; i < h.CommentLines; i++ {
		line, ok, err := lr.next()
		if err != nil || !ok {
			return nil, &FontFormatError{
				Line:   lr.line + 1,
				Reason: fmt.Sprintf("input ends inside comment block (%d of %d lines)", i, h.CommentLines),
				Err:    err,
			}
		}
		comments = append(comments, line)
	}
	font.Comment = strings.Join(comments, "\n")

	for code := rune(FirstCode); code <= LastCode; code++ {
		rows, err := readGlyph(lr, code, h)
		if err != nil {
			return nil, err
		}
		font.glyphs[code-FirstCode] = newGlyph(code, rows)
	}
	return font, nil
}

// ParseString is Parse over an in-memory definition.
func ParseString(def string) (*Font, error) {
	return Parse(strings.NewReader(def))
}

// readGlyph consumes the Height lines of one glyph.
func readGlyph(lr *lineReader, code rune, h Header) ([]string, error) {
	var rows []string
	for i := 0; i < h.Height; i++ {
		line, ok, err := lr.next()
		if err != nil || !ok {
			return nil, &FontFormatError{
				Line: lr.line + 1,
				Reason: fmt.Sprintf("input ends inside glyph %d (%d of %d glyphs read)",
					code, code-FirstCode, GlyphCount),
				Err: err,
			}
		}
		row, marks := stripEndMarks(line)
		if marks == 0 {
			return nil, &FontFormatError{Line: lr.line, Reason: fmt.Sprintf(
				"glyph %d row %d has no end mark", code, i+1)}
		}
		last := i == h.Height-1
		switch {
		case last && marks < 2:
			return nil, &FontFormatError{Line: lr.line, Reason: fmt.Sprintf(
				"glyph %d does not end after %d rows", code, h.Height)}
		case !last && marks > 1:
			return nil, &FontFormatError{Line: lr.line, Reason: fmt.Sprintf(
				"glyph %d ends after %d rows, want %d", code, i+1, h.Height)}
		}
		row = strings.ReplaceAll(row, string(h.Hardblank), " ")
		if err := checkRow(row); err != nil {
			return nil, &FontFormatError{
				Line:   lr.line,
				Reason: fmt.Sprintf("glyph %d row %d", code, i+1),
				Err:    err,
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// stripEndMarks removes trailing whitespace, then up to two copies of the
// line's final character. It returns the remaining row and how many end
// marks were found (0 for a blank line, otherwise 1 or 2).
func stripEndMarks(line string) (string, int) {
	line = strings.TrimRight(line, " \t")
	mark, size := utf8.DecodeLastRuneInString(line)
	if size == 0 {
		return "", 0
	}
	marks := 0
	for marks < 2 && strings.HasSuffix(line, string(mark)) {
		line = line[:len(line)-size]
		marks++
	}
	return line, marks
}
