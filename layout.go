package ansibanner

import (
	"strconv"
	"strings"
)

// Padding is blank space around the banner, in cells.
type Padding struct {
	Top    int `yaml:"top"`
	Right  int `yaml:"right"`
	Bottom int `yaml:"bottom"`
	Left   int `yaml:"left"`
}

// UniformPadding pads every side by n.
func UniformPadding(n int) Padding {
	return Padding{Top: n, Right: n, Bottom: n, Left: n}
}

// ParsePadding accepts one value for all sides, two for vertical and
// horizontal, or four in top,right,bottom,left order, separated by commas.
func ParsePadding(s string) (Padding, error) {
	parts := strings.Split(s, ",")
	vals := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Padding{}, &ConfigError{Field: "padding", Reason: "not an integer: " + p, Err: err}
		}
		vals[i] = v
	}
	var pad Padding
	switch len(vals) {
	case 1:
		pad = UniformPadding(vals[0])
	case 2:
		pad = Padding{Top: vals[0], Right: vals[1], Bottom: vals[0], Left: vals[1]}
	case 4:
		pad = Padding{Top: vals[0], Right: vals[1], Bottom: vals[2], Left: vals[3]}
	default:
		return Padding{}, configErrorf("padding", "want 1, 2 or 4 values, got %d", len(vals))
	}
	return pad, pad.validate()
}

func (p Padding) validate() error {
	if p.Top < 0 || p.Right < 0 || p.Bottom < 0 || p.Left < 0 {
		return configErrorf("padding", "must not be negative: %+v", p)
	}
	return nil
}

// Layout places the finished banner block on its final canvas.
type Layout struct {
	Padding Padding
	// Width, when positive, is the exact output width: narrower banners are
	// aligned inside it and wider ones are clipped.
	Width int
	// MaxWidth, when positive, caps the output width by clipping.
	MaxWidth int
	Align    Align
}

func (l Layout) validate() error {
	if err := l.Padding.validate(); err != nil {
		return err
	}
	if l.Width < 0 {
		return configErrorf("width", "must not be negative, got %d", l.Width)
	}
	if l.MaxWidth < 0 {
		return configErrorf("max_width", "must not be negative, got %d", l.MaxWidth)
	}
	return nil
}

// targetWidth resolves Width and MaxWidth against the current width. It
// returns -1 when the width is left alone.
func (l Layout) targetWidth(current int) int {
	target := -1
	if l.Width > 0 {
		target = l.Width
	}
	if l.MaxWidth > 0 {
		if target < 0 {
			target = min(current, l.MaxWidth)
		} else {
			target = min(target, l.MaxWidth)
		}
	}
	return target
}

// Apply pads g, then widens or clips it to the requested width according
// to the alignment. Clipping keeps the left, middle or right part of the
// banner for left, center and right alignment respectively.
func (l Layout) Apply(g *Grid) *Grid {
	p := l.Padding
	out := NewGrid(g.Width()+p.Left+p.Right, g.Height()+p.Top+p.Bottom)
	out.Blit(g, p.Left, p.Top)

	target := l.targetWidth(out.Width())
	switch {
	case target < 0 || target == out.Width():
		return out
	case target > out.Width():
		wide := NewGrid(target, out.Height())
		wide.Blit(out, l.Align.offset(out.Width(), target), 0)
		return wide
	default:
		return clipWidth(out, target, l.Align)
	}
}

func clipWidth(g *Grid, target int, align Align) *Grid {
	start := align.offset(target, g.Width())
	out := NewGrid(target, g.Height())
	for y := 0; y < g.Height(); y++ {
		copy(out.cells[y*target:(y+1)*target], g.cells[y*g.width+start:y*g.width+start+target])
	}
	return out
}
