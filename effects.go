package ansibanner

// Post-effects run on a fully composited, colored grid and always return
// a new grid. When several are enabled they run in the order shadow,
// edge shade, outline: edge shading looks at the occupancy the shadow
// produced, and the outline traces whatever silhouette results.

// Shadow is a darkened copy of the banner drawn beneath it at an offset.
type Shadow struct {
	DX, DY int
	// Alpha is how much the shadow darkens the source color, in [0, 1].
	Alpha float64
}

func (s Shadow) validate() error {
	if s.Alpha < 0 || s.Alpha > 1 {
		return configErrorf("shadow.alpha", "must be in [0, 1], got %g", s.Alpha)
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// shadeOf darkens a cell's foreground, treating uncolored cells as white
// so the shadow stays distinguishable in color modes.
func shadeOf(c Cell, amount float64) RGB {
	base := White
	if c.HasFG {
		base = c.FG
	}
	return base.Darken(amount)
}

// Apply returns a grid grown by |DX| columns and |DY| rows holding the
// shadow and, on top of it, the original cells. Original cells win
// wherever the two overlap.
func (s Shadow) Apply(g *Grid) *Grid {
	if s.DX == 0 && s.DY == 0 {
		return g.Clone()
	}
	ox, oy := max(-s.DX, 0), max(-s.DY, 0)
	out := NewGrid(g.Width()+abs(s.DX), g.Height()+abs(s.DY))
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			src := *g.cell(x, y)
			if !src.Visible {
				continue
			}
			shadow := src
			shadow.SetFG(shadeOf(src, s.Alpha))
			*out.cell(ox+x+s.DX, oy+y+s.DY) = shadow
		}
	}
	out.Blit(g, ox, oy)
	return out
}

// neighbors4 and neighbors8 are (dx, dy) offsets. The order matters for
// EdgeShade, where the first visible source claims an empty cell.
var (
	neighbors4 = [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	neighbors8 = [][2]int{
		{0, -1}, {0, 1}, {-1, 0}, {1, 0},
		{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
	}
)

// EdgeShade fills the empty cells bordering the banner with a darkened
// halo character.
type EdgeShade struct {
	// Darken is applied to the color of the neighbouring source cell.
	Darken float64
	Rune   rune
}

func (e EdgeShade) validate() error {
	if e.Darken < 0 || e.Darken > 1 {
		return configErrorf("edge_shade.darken", "must be in [0, 1], got %g", e.Darken)
	}
	if e.Rune == 0 {
		return configErrorf("edge_shade.char", "a shade character is required")
	}
	return nil
}

// Apply returns a copy of g in which every empty cell 8-adjacent to an
// occupied one shows e.Rune in a darkened version of that neighbour's
// color. Sources are visited in row-major order and the first one to
// reach an empty cell decides its color.
func (e EdgeShade) Apply(g *Grid) *Grid {
	out := g.Clone()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			src := *g.cell(x, y)
			if !src.Visible {
				continue
			}
			for _, d := range neighbors8 {
				nx, ny := x+d[0], y+d[1]
				if !out.inBounds(nx, ny) {
					continue
				}
				target := out.cell(nx, ny)
				if target.Visible {
					continue
				}
				*target = Cell{Rune: e.Rune, Visible: true}
				target.SetFG(shadeOf(src, e.Darken))
			}
		}
	}
	return out
}

// Outline marks the silhouette of the banner: occupied cells with an
// empty or off-grid neighbour.
type Outline struct {
	// Neighborhood is 4 or 8.
	Neighborhood int
	// Rune replaces boundary characters; zero keeps them.
	Rune rune
	// Color recolors boundary cells; when nil they are darkened by Darken
	// instead.
	Color  *RGB
	Darken float64
}

func (o Outline) validate() error {
	if o.Neighborhood != 4 && o.Neighborhood != 8 {
		return configErrorf("outline.neighborhood", "must be 4 or 8, got %d", o.Neighborhood)
	}
	if o.Darken < 0 || o.Darken > 1 {
		return configErrorf("outline.darken", "must be in [0, 1], got %g", o.Darken)
	}
	return nil
}

// IsBoundary reports whether the occupied cell at (x, y) touches empty
// space within the neighbourhood.
func (o Outline) IsBoundary(g *Grid, x, y int) bool {
	if !g.inBounds(x, y) || !g.cell(x, y).Visible {
		return false
	}
	offsets := neighbors4
	if o.Neighborhood == 8 {
		offsets = neighbors8
	}
	for _, d := range offsets {
		nx, ny := x+d[0], y+d[1]
		if !g.inBounds(nx, ny) || !g.cell(nx, ny).Visible {
			return true
		}
	}
	return false
}

// Apply returns a copy of g with its boundary cells re-charactered and
// recolored. Boundaries are judged on g, so the changes never cascade.
func (o Outline) Apply(g *Grid) *Grid {
	out := g.Clone()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if !o.IsBoundary(g, x, y) {
				continue
			}
			c := out.cell(x, y)
			if o.Rune != 0 {
				c.Rune = o.Rune
			}
			if o.Color != nil {
				c.SetFG(*o.Color)
			} else if o.Darken > 0 {
				c.SetFG(shadeOf(*c, o.Darken))
			}
		}
	}
	return out
}
