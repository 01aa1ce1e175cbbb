package ansibanner

import (
	"fmt"
	"strings"
)

// FrameChars are the six characters of a box.
type FrameChars struct {
	TopLeft, TopRight, BottomLeft, BottomRight rune
	Horizontal, Vertical                       rune
}

// Built-in box styles.
var frameStyles = map[string]FrameChars{
	"single":  {'┌', '┐', '└', '┘', '─', '│'},
	"double":  {'╔', '╗', '╚', '╝', '═', '║'},
	"rounded": {'╭', '╮', '╰', '╯', '─', '│'},
	"heavy":   {'┏', '┓', '┗', '┛', '━', '┃'},
	"ascii":   {'+', '+', '+', '+', '-', '|'},
}

// FrameStyle returns the characters of a named box style.
func FrameStyle(name string) (FrameChars, error) {
	fc, ok := frameStyles[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return FrameChars{}, configErrorf("frame.style", "unknown style %q", name)
	}
	return fc, nil
}

// ParseFrameChars reads a custom box from six characters in the order
// top-left, top-right, bottom-left, bottom-right, horizontal, vertical,
// written either together or separated by commas.
func ParseFrameChars(s string) (FrameChars, error) {
	rs := []rune(s)
	if parts := strings.Split(s, ","); len(parts) == 6 {
		rs = rs[:0]
		for _, p := range parts {
			pr := []rune(strings.TrimSpace(p))
			if len(pr) != 1 {
				return FrameChars{}, configErrorf("frame.chars", "want single characters, got %q", p)
			}
			rs = append(rs, pr[0])
		}
	}
	if len(rs) != 6 {
		return FrameChars{}, configErrorf("frame.chars", "want 6 characters, got %d", len(rs))
	}
	return FrameChars{rs[0], rs[1], rs[2], rs[3], rs[4], rs[5]}, nil
}

func (fc FrameChars) String() string {
	return string([]rune{fc.TopLeft, fc.TopRight, fc.BottomLeft, fc.BottomRight, fc.Horizontal, fc.Vertical})
}

// Frame draws a one-cell box around the banner. The box is painted with
// Gradient when set, otherwise with Color when set, and left uncolored
// otherwise.
type Frame struct {
	Chars    FrameChars
	Color    *RGB
	Gradient *Gradient
}

// Apply returns g enclosed in the box, two cells wider and taller.
func (f Frame) Apply(g *Grid) *Grid {
	w, h := g.Width()+2, g.Height()+2
	out := NewGrid(w, h)
	put := func(x, y int, r rune) {
		*out.cell(x, y) = Cell{Rune: r, Visible: true}
	}
	put(0, 0, f.Chars.TopLeft)
	put(w-1, 0, f.Chars.TopRight)
	put(0, h-1, f.Chars.BottomLeft)
	put(w-1, h-1, f.Chars.BottomRight)
	for x := 1; x < w-1; x++ {
		put(x, 0, f.Chars.Horizontal)
		put(x, h-1, f.Chars.Horizontal)
	}
	for y := 1; y < h-1; y++ {
		put(0, y, f.Chars.Vertical)
		put(w-1, y, f.Chars.Vertical)
	}

	switch {
	case f.Gradient != nil:
		f.Gradient.Apply(out)
	case f.Color != nil:
		Solid(out, *f.Color)
	}
	out.Blit(g, 1, 1)
	return out
}

func (f Frame) String() string {
	return fmt.Sprintf("frame(%s)", f.Chars)
}
