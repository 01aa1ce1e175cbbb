package ansibanner

import (
	"fmt"
	"strings"
)

// FullBlock is the character used by the blocks fill.
const FullBlock = '█'

// FillKind selects what character an occupied cell displays.
type FillKind int

const (
	// FillKeep keeps the font's own characters.
	FillKeep FillKind = iota
	// FillBlocks draws every occupied cell as a full block.
	FillBlocks
	// FillSolid draws every occupied cell with Fill.Char.
	FillSolid
	// FillPixel draws Fill.Char on an ordered subset of the occupied
	// cells chosen by Fill.Density; the rest become empty.
	FillPixel
)

var fillNames = map[FillKind]string{
	FillKeep:   "keep",
	FillBlocks: "blocks",
	FillSolid:  "solid",
	FillPixel:  "pixel",
}

func (k FillKind) String() string {
	if s, ok := fillNames[k]; ok {
		return s
	}
	return fmt.Sprintf("FillKind(%d)", int(k))
}

// ParseFillKind accepts the names printed by String.
func ParseFillKind(s string) (FillKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FillKeep, nil
	}
	for k, name := range fillNames {
		if name == s {
			return k, nil
		}
	}
	return FillKeep, configErrorf("fill", "unknown fill %q", s)
}

// Fill describes how occupied cells are drawn.
type Fill struct {
	Kind FillKind
	// Char is the character for solid and pixel fills. Zero means a full
	// block.
	Char rune
	// Density is the fraction of occupied cells a pixel fill keeps, in
	// (0, 1]. Zero means 1.
	Density float64
}

func (f Fill) char() rune {
	if f.Char == 0 {
		return FullBlock
	}
	return f.Char
}

func (f Fill) density() float64 {
	if f.Density == 0 {
		return 1
	}
	return f.Density
}

func (f Fill) validate() error {
	if _, ok := fillNames[f.Kind]; !ok {
		return configErrorf("fill", "unknown fill kind %d", int(f.Kind))
	}
	if f.Density < 0 || f.Density > 1 {
		return configErrorf("fill.density", "must be in (0, 1], got %g", f.Density)
	}
	return nil
}

// bayer4 is the 4x4 ordered-dither index matrix.
var bayer4 = [4][4]int{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// pixelOn reports whether a pixel fill of the given density keeps the cell
// at (x, y). The decision depends only on the position.
func pixelOn(x, y int, density float64) bool {
	threshold := (float64(bayer4[y%4][x%4]) + 0.5) / 16
	return threshold < density
}

// FillStage is the character-selection step of the pipeline: the fill,
// optionally followed by ramp dithering.
type FillStage struct {
	Fill   Fill
	Dither *Dither
}

// NewFillStage validates the fill and dither settings.
func NewFillStage(fill Fill, dither *Dither) (*FillStage, error) {
	if err := fill.validate(); err != nil {
		return nil, err
	}
	if dither != nil {
		if err := dither.validate(); err != nil {
			return nil, err
		}
	}
	return &FillStage{Fill: fill, Dither: dither}, nil
}

// Apply rewrites the characters of the occupied cells in place. Ramp
// dithering replaces solid fills only; the keep fill retains the font's
// characters and ignores it.
func (s *FillStage) Apply(g *Grid) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := g.cell(x, y)
			if !c.Visible {
				continue
			}
			switch s.Fill.Kind {
			case FillKeep:
				continue
			case FillBlocks:
				c.Rune = FullBlock
			case FillSolid:
				c.Rune = s.Fill.char()
			case FillPixel:
				if !pixelOn(x, y, s.Fill.density()) {
					*c = EmptyCell
					continue
				}
				c.Rune = s.Fill.char()
			}
			if s.Dither != nil {
				c.Rune = s.Dither.pick(x, y, cellBrightness(*c))
			}
		}
	}
}

// cellBrightness is the normalised luminance of the cell's foreground.
// Uncolored cells count as fully bright.
func cellBrightness(c Cell) float64 {
	if !c.HasFG {
		return 1
	}
	return c.FG.Luminance()
}
