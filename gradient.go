package ansibanner

import (
	"fmt"
	"math"
	"strings"
)

// Axis is the direction along which a gradient runs.
type Axis int

const (
	Vertical Axis = iota
	Horizontal
	Diagonal
)

var axisNames = map[Axis]string{
	Vertical:   "vertical",
	Horizontal: "horizontal",
	Diagonal:   "diagonal",
}

func (a Axis) String() string {
	if s, ok := axisNames[a]; ok {
		return s
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// ParseAxis accepts "vertical", "horizontal" and "diagonal" and their
// first letters.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "v", "vertical":
		return Vertical, nil
	case "h", "horizontal":
		return Horizontal, nil
	case "d", "diagonal":
		return Diagonal, nil
	}
	return Vertical, configErrorf("gradient.axis", "unknown axis %q", s)
}

func (a Axis) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Axis) UnmarshalText(b []byte) error {
	v, err := ParseAxis(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// normalized maps index i along a dimension of length n onto [0, 1]. A
// single row or column sits at 0.
func normalized(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

// position returns the gradient coordinate of cell (x, y) in a w x h grid.
func (a Axis) position(x, y, w, h int) float64 {
	switch a {
	case Horizontal:
		return normalized(x, w)
	case Diagonal:
		return (normalized(x, w) + normalized(y, h)) / 2
	default:
		return normalized(y, h)
	}
}

// Gradient maps a position in [0, 1] to a color by piecewise-linear
// interpolation between evenly spaced palette stops.
type Gradient struct {
	stops Palette
	axis  Axis
}

// NewGradient validates the palette and axis up front so that applying the
// gradient cannot fail.
func NewGradient(p Palette, axis Axis) (*Gradient, error) {
	if len(p) == 0 {
		return nil, configErrorf("gradient.stops", "at least one color is required")
	}
	if _, ok := axisNames[axis]; !ok {
		return nil, configErrorf("gradient.axis", "unknown axis %d", int(axis))
	}
	stops := make(Palette, len(p))
	copy(stops, p)
	return &Gradient{stops: stops, axis: axis}, nil
}

// Axis returns the gradient direction.
func (g *Gradient) Axis() Axis { return g.axis }

// Stops returns a copy of the palette.
func (g *Gradient) Stops() Palette {
	out := make(Palette, len(g.stops))
	copy(out, g.stops)
	return out
}

// At returns the color at position t, clamped to [0, 1]. Position 0 is
// the first stop and 1 the last, both exactly.
func (g *Gradient) At(t float64) RGB {
	n := len(g.stops)
	if n == 1 {
		return g.stops[0]
	}
	t = clamp01(t)
	scaled := t * float64(n-1)
	idx := min(int(math.Floor(scaled)), n-2)
	return g.stops[idx].Lerp(g.stops[idx+1], scaled-float64(idx))
}

// Apply sets the foreground of every visible cell from its position
// along the gradient axis. Empty cells are left alone.
func (g *Gradient) Apply(grid *Grid) {
	w, h := grid.Width(), grid.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := grid.cell(x, y)
			if c.Visible {
				c.SetFG(g.At(g.axis.position(x, y, w, h)))
			}
		}
	}
}

// Solid paints every visible cell with one color.
func Solid(grid *Grid, color RGB) {
	for i := range grid.cells {
		if grid.cells[i].Visible {
			grid.cells[i].SetFG(color)
		}
	}
}
