package ansibanner

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// DefaultRamp runs from sparse to dense.
var DefaultRamp = []rune("░▒▓█")

// DitherMode selects the positional rule used by the ditherers.
type DitherMode int

const (
	// DitherChecker is an ordered pattern over (row + col) mod period.
	DitherChecker DitherMode = iota + 1
	// DitherNoise is a seeded per-cell hash.
	DitherNoise
)

func (m DitherMode) String() string {
	switch m {
	case DitherChecker:
		return "checker"
	case DitherNoise:
		return "noise"
	}
	return fmt.Sprintf("DitherMode(%d)", int(m))
}

// ParseDitherMode accepts "checker" and "noise".
func ParseDitherMode(s string) (DitherMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "checker":
		return DitherChecker, nil
	case "noise":
		return DitherNoise, nil
	}
	return 0, configErrorf("dither.mode", "unknown mode %q", s)
}

// Dither picks a ramp character for each filled cell from its brightness.
// Every decision is a pure function of the cell's coordinates, its
// brightness and these settings.
type Dither struct {
	Mode DitherMode
	// Ramp lists the candidate characters from sparse to dense.
	Ramp []rune
	// Period is the checker pattern length.
	Period int
	// Seed and Threshold drive noise mode. Threshold (0..255) scales how
	// far the noise may push a cell away from its brightness level.
	Seed      uint32
	Threshold uint8
}

func (d *Dither) validate() error {
	switch d.Mode {
	case DitherChecker:
		if d.Period < 1 {
			return configErrorf("dither.period", "must be at least 1, got %d", d.Period)
		}
	case DitherNoise:
	default:
		return configErrorf("dither.mode", "unknown mode %d", int(d.Mode))
	}
	if len(d.Ramp) == 0 {
		return configErrorf("dither.ramp", "must not be empty")
	}
	return nil
}

// pick returns the ramp character for cell (x, y) at brightness b.
func (d *Dither) pick(x, y int, b float64) rune {
	n := len(d.Ramp)
	if n == 1 {
		return d.Ramp[0]
	}
	b = clamp01(b)
	var idx int
	switch d.Mode {
	case DitherChecker:
		level := b * float64(n-1)
		idx = int(math.Floor(level))
		frac := level - float64(idx)
		pos := (x + y) % d.Period
		if frac > (float64(pos)+0.5)/float64(d.Period) {
			idx++
		}
	case DitherNoise:
		u := float64(mix(d.Seed, uint32(y), uint32(x))) / (1 << 32)
		jitter := (u - 0.5) * float64(d.Threshold) / 255
		idx = int(math.Round(clamp01(b+jitter) * float64(n-1)))
	}
	return d.Ramp[min(max(idx, 0), n-1)]
}

// mix hashes a seed and a cell position into 32 well-scrambled bits.
func mix(seed, x, y uint32) uint32 {
	v := seed ^ x*0x9E3779B1 ^ y*0x85EBCA77
	v ^= v >> 16
	v *= 0x7FEB352D
	v ^= v >> 15
	v *= 0x846CA68B
	v ^= v >> 16
	return v
}

// DotDither sprinkles stipple characters over cells that already show one
// of its target characters, using the same positional rules as Dither.
type DotDither struct {
	Mode      DitherMode
	Period    int
	Seed      uint32
	Threshold uint8
	// Dots alternate in a checkerboard over the affected cells.
	Dots [2]rune
	// Targets are the characters eligible for replacement.
	Targets []rune
}

// DefaultDotTargets are the light and medium shade blocks.
var DefaultDotTargets = []rune("░▒")

// ParseDots reads one or two dot characters; a single character is used
// for both checkerboard phases.
func ParseDots(s string) ([2]rune, error) {
	rs := []rune(s)
	switch len(rs) {
	case 1:
		return [2]rune{rs[0], rs[0]}, nil
	case 2:
		return [2]rune{rs[0], rs[1]}, nil
	}
	return [2]rune{}, configErrorf("dot_dither.dots", "want 1 or 2 characters, got %q", s)
}

func (d *DotDither) validate() error {
	switch d.Mode {
	case DitherChecker:
		if d.Period < 1 {
			return configErrorf("dot_dither.period", "must be at least 1, got %d", d.Period)
		}
	case DitherNoise:
	default:
		return configErrorf("dot_dither.mode", "unknown mode %d", int(d.Mode))
	}
	if d.Dots[0] == 0 || d.Dots[1] == 0 {
		return configErrorf("dot_dither.dots", "two dot characters are required")
	}
	return nil
}

func (d *DotDither) fires(x, y int) bool {
	if d.Mode == DitherNoise {
		return mix(d.Seed, uint32(y), uint32(x))&0xFF < uint32(d.Threshold)
	}
	return (x+y)%d.Period == 0
}

// Apply returns a copy of g with the stipple applied.
func (d *DotDither) Apply(g *Grid) *Grid {
	targets := d.Targets
	if len(targets) == 0 {
		targets = DefaultDotTargets
	}
	out := g.Clone()
	for y := 0; y < out.Height(); y++ {
		for x := 0; x < out.Width(); x++ {
			c := out.cell(x, y)
			if !c.Visible || !slices.Contains(targets, c.Rune) || !d.fires(x, y) {
				continue
			}
			c.Rune = d.Dots[(x+y)%2]
		}
	}
	return out
}
