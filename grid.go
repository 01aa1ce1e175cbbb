package ansibanner

import (
	"fmt"
	"strings"
)

// Cell is one character position on the banner canvas. A cell that is not
// Visible is empty: it prints as a plain space with no color, whatever
// its other fields hold.
type Cell struct {
	Rune    rune
	FG      RGB
	BG      RGB
	HasFG   bool
	HasBG   bool
	Visible bool
}

// EmptyCell is the value every new grid is filled with.
var EmptyCell = Cell{Rune: ' '}

// SetFG assigns a foreground color.
func (c *Cell) SetFG(color RGB) {
	c.FG = color
	c.HasFG = true
}

// SetBG assigns a background color.
func (c *Cell) SetBG(color RGB) {
	c.BG = color
	c.HasBG = true
}

// Grid is a fixed-size rectangle of cells stored in row-major order. Its
// dimensions never change once created; effects that need a different
// size build a new Grid.
type Grid struct {
	width, height int
	cells         []Cell
}

// NewGrid returns a width x height grid of empty cells. Negative
// dimensions are treated as zero.
func NewGrid(width, height int) *Grid {
	width, height = max(width, 0), max(height, 0)
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for i := range g.cells {
		g.cells[i] = EmptyCell
	}
	return g
}

// GridFromRows builds a grid from rows of text, padding short rows with
// empty cells. Every non-space rune becomes a visible, uncolored cell.
func GridFromRows(rows ...string) *Grid {
	width := 0
	runes := make([][]rune, len(rows))
	for i, row := range rows {
		runes[i] = []rune(row)
		width = max(width, len(runes[i]))
	}
	g := NewGrid(width, len(rows))
	for y, row := range runes {
		for x, r := range row {
			if r != ' ' {
				g.cells[y*width+x] = Cell{Rune: r, Visible: true}
			}
		}
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the cell at column x, row y.
func (g *Grid) At(x, y int) (Cell, error) {
	if !g.inBounds(x, y) {
		return Cell{}, fmt.Errorf("at (%d,%d) in %dx%d grid: %w",
			x, y, g.width, g.height, ErrOutOfBounds)
	}
	return g.cells[y*g.width+x], nil
}

// Set replaces the cell at column x, row y.
func (g *Grid) Set(x, y int, c Cell) error {
	if !g.inBounds(x, y) {
		return fmt.Errorf("set (%d,%d) in %dx%d grid: %w",
			x, y, g.width, g.height, ErrOutOfBounds)
	}
	g.cells[y*g.width+x] = c
	return nil
}

// cell is the unchecked accessor used by the pipeline stages, which only
// ever iterate over coordinates they derived from the grid itself.
func (g *Grid) cell(x, y int) *Cell {
	return &g.cells[y*g.width+x]
}

// Row returns a copy of row y.
func (g *Grid) Row(y int) ([]Cell, error) {
	if y < 0 || y >= g.height {
		return nil, fmt.Errorf("row %d in %dx%d grid: %w",
			y, g.width, g.height, ErrOutOfBounds)
	}
	row := make([]Cell, g.width)
	copy(row, g.cells[y*g.width:(y+1)*g.width])
	return row, nil
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{width: g.width, height: g.height, cells: make([]Cell, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Blit copies the visible cells of src onto g with src's top-left corner
// at column x, row y. Cells that land outside g are dropped; empty cells
// of src leave g untouched.
func (g *Grid) Blit(src *Grid, x, y int) {
	for sy := 0; sy < src.height; sy++ {
		for sx := 0; sx < src.width; sx++ {
			c := src.cells[sy*src.width+sx]
			if !c.Visible || !g.inBounds(x+sx, y+sy) {
				continue
			}
			g.cells[(y+sy)*g.width+x+sx] = c
		}
	}
}

// rowBlank reports whether row y holds no visible cell.
func (g *Grid) rowBlank(y int) bool {
	for x := 0; x < g.width; x++ {
		if g.cells[y*g.width+x].Visible {
			return false
		}
	}
	return true
}

// TrimVertical returns a copy of g without the fully blank rows at its top
// and bottom. Interior blank rows and columns are never removed, so
// trimming an already trimmed grid is a no-op. A grid with no visible
// cell trims to height zero.
func (g *Grid) TrimVertical() *Grid {
	top, bottom := 0, g.height
	for top < bottom && g.rowBlank(top) {
		top++
	}
	for bottom > top && g.rowBlank(bottom-1) {
		bottom--
	}
	out := &Grid{width: g.width, height: bottom - top}
	out.cells = make([]Cell, out.width*out.height)
	copy(out.cells, g.cells[top*g.width:bottom*g.width])
	return out
}

// VisibleCount returns the number of occupied cells.
func (g *Grid) VisibleCount() int {
	n := 0
	for _, c := range g.cells {
		if c.Visible {
			n++
		}
	}
	return n
}

// String renders the grid as plain text, one line per row, with empty
// cells as spaces and no trailing newline.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.width; x++ {
			c := g.cells[y*g.width+x]
			if c.Visible {
				sb.WriteRune(c.Rune)
			} else {
				sb.WriteByte(' ')
			}
		}
	}
	return sb.String()
}

// Lines is String split into rows.
func (g *Grid) Lines() []string {
	if g.height == 0 {
		return nil
	}
	return strings.Split(g.String(), "\n")
}
