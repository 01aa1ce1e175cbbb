package ansibanner

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/wbrown/ansibanner/figlet"
)

// Align selects how each text line sits inside the banner width.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

var alignNames = map[Align]string{
	AlignLeft:   "left",
	AlignCenter: "center",
	AlignRight:  "right",
}

func (a Align) String() string {
	if s, ok := alignNames[a]; ok {
		return s
	}
	return fmt.Sprintf("Align(%d)", int(a))
}

// ParseAlign accepts "left", "center" (or "centre") and "right".
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return AlignLeft, nil
	case "center", "centre", "middle":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return AlignLeft, configErrorf("align", "unknown alignment %q", s)
}

func (a Align) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Align) UnmarshalText(b []byte) error {
	v, err := ParseAlign(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// offset returns the left margin for a run of width w in a space of
// width total. Centering puts the odd extra column on the right.
func (a Align) offset(w, total int) int {
	extra := max(total-w, 0)
	switch a {
	case AlignCenter:
		return extra / 2
	case AlignRight:
		return extra
	default:
		return 0
	}
}

// ComposeOptions controls glyph placement.
type ComposeOptions struct {
	// Kerning is the number of blank columns between adjacent glyphs.
	Kerning int
	// LineGap is the number of blank rows between text lines.
	LineGap int
	// Align positions each line within the widest line.
	Align Align
}

func (o ComposeOptions) validate() error {
	if o.Kerning < 0 {
		return configErrorf("kerning", "must not be negative, got %d", o.Kerning)
	}
	if o.LineGap < 0 {
		return configErrorf("line_gap", "must not be negative, got %d", o.LineGap)
	}
	if _, ok := alignNames[o.Align]; !ok {
		return configErrorf("align", "unknown alignment %d", int(o.Align))
	}
	return nil
}

// splitLines normalises line endings and tabs and drops other control
// characters.
func splitLines(text string) [][]rune {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\t", " ")
	var lines [][]rune
	for _, line := range strings.Split(text, "\n") {
		rs := make([]rune, 0, len(line))
		for _, r := range line {
			if !unicode.IsControl(r) {
				rs = append(rs, r)
			}
		}
		lines = append(lines, rs)
	}
	return lines
}

// hasRenderable reports whether any line holds a character other than a
// space. Runes the font lacks count, since they draw the fallback glyph.
func hasRenderable(lines [][]rune) bool {
	for _, line := range lines {
		for _, r := range line {
			if r != ' ' {
				return true
			}
		}
	}
	return false
}

// lineWidth is the number of columns a line of glyphs occupies.
func lineWidth(line []rune, font *figlet.Font, kerning int) int {
	if len(line) == 0 {
		return 0
	}
	w := kerning * (len(line) - 1)
	for _, r := range line {
		w += font.Lookup(r).Width
	}
	return w
}

// Compose lays text out with font onto a new grid. Each line is the
// left-to-right concatenation of its glyphs separated by opts.Kerning
// blank columns; lines are stacked with opts.LineGap blank rows between
// them and aligned independently within the widest line. Non-space glyph
// characters become visible cells; the grid carries no color yet.
//
// Characters outside printable ASCII are drawn with the font's fallback
// glyph. Compose returns an *EmptyTextError when text has nothing but
// whitespace.
func Compose(text string, font *figlet.Font, opts ComposeOptions) (*Grid, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	lines := splitLines(text)
	if !hasRenderable(lines) {
		return nil, &EmptyTextError{Text: text}
	}

	widths := make([]int, len(lines))
	total := 0
	for i, line := range lines {
		widths[i] = lineWidth(line, font, opts.Kerning)
		total = max(total, widths[i])
	}
	height := len(lines)*font.Height + (len(lines)-1)*opts.LineGap

	g := NewGrid(total, height)
	for i, line := range lines {
		top := i * (font.Height + opts.LineGap)
		x := opts.Align.offset(widths[i], total)
		for _, r := range line {
			glyph := font.Lookup(r)
			placeGlyph(g, glyph, x, top)
			x += glyph.Width + opts.Kerning
		}
	}
	return g, nil
}

// placeGlyph stamps the non-space characters of glyph at (x, y).
func placeGlyph(g *Grid, glyph figlet.Glyph, x, y int) {
	for row := 0; row < glyph.Height(); row++ {
		for col, r := range glyph.Runes(row) {
			if r == ' ' {
				continue
			}
			*g.cell(x+col, y+row) = Cell{Rune: r, Visible: true}
		}
	}
}
