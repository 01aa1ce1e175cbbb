package ansibanner

import (
	"fmt"
	"math"
	"strings"
)

// SweepDirection is the axis a highlight band travels along.
type SweepDirection int

const (
	SweepHorizontal SweepDirection = iota
	SweepVertical
	// SweepDiagonalDown runs from the top-left to the bottom-right corner.
	SweepDiagonalDown
	// SweepDiagonalUp is SweepDiagonalDown mirrored left to right: it
	// starts at the top-right corner.
	SweepDiagonalUp
)

var sweepNames = map[SweepDirection]string{
	SweepHorizontal:   "horizontal",
	SweepVertical:     "vertical",
	SweepDiagonalDown: "diagonal-down",
	SweepDiagonalUp:   "diagonal-up",
}

func (d SweepDirection) String() string {
	if s, ok := sweepNames[d]; ok {
		return s
	}
	return fmt.Sprintf("SweepDirection(%d)", int(d))
}

// ParseSweepDirection accepts the names printed by String; underscores
// may stand in for dashes.
func ParseSweepDirection(s string) (SweepDirection, error) {
	s = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for d, name := range sweepNames {
		if name == s {
			return d, nil
		}
	}
	return 0, configErrorf("sweep.direction", "unknown direction %q", s)
}

func (d SweepDirection) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *SweepDirection) UnmarshalText(b []byte) error {
	v, err := ParseSweepDirection(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// position returns where cell (x, y) of a w x h grid lies along the
// sweep axis, in [0, 1].
func (d SweepDirection) position(x, y, w, h int) float64 {
	switch d {
	case SweepHorizontal:
		return normalized(x, w)
	case SweepVertical:
		return normalized(y, h)
	}
	span := w + h - 2
	if span <= 0 {
		return 0
	}
	if d == SweepDiagonalUp {
		return float64(y+w-1-x) / float64(span)
	}
	return float64(x+y) / float64(span)
}

// Sweep is a highlight band across the banner.
type Sweep struct {
	Direction SweepDirection
	// Center is the band's position along the axis. Values outside
	// [0, 1] put the band partly or wholly off the banner.
	Center float64
	// Width is the band size as a fraction of the axis.
	Width float64
	// Intensity is the peak brightening, in [0, 1].
	Intensity float64
	// Softness is the falloff exponent, at least 1.
	Softness float64
	// Tint is added onto the cells under the band. Nil means white.
	Tint *RGB
}

// DefaultSweep returns a band with the standard static settings.
func DefaultSweep(d SweepDirection) Sweep {
	return Sweep{Direction: d, Center: 0.5, Width: 0.25, Intensity: 0.8, Softness: 2}
}

func (s Sweep) validate() error {
	if _, ok := sweepNames[s.Direction]; !ok {
		return configErrorf("sweep.direction", "unknown direction %d", int(s.Direction))
	}
	if s.Width < 0 {
		return configErrorf("sweep.width", "must not be negative, got %g", s.Width)
	}
	if s.Intensity < 0 || s.Intensity > 1 {
		return configErrorf("sweep.intensity", "must be in [0, 1], got %g", s.Intensity)
	}
	if s.Softness < 1 {
		return configErrorf("sweep.softness", "must be at least 1, got %g", s.Softness)
	}
	return nil
}

func (s Sweep) tint() RGB {
	if s.Tint == nil {
		return White
	}
	return *s.Tint
}

// amount is the highlight strength at axis position t.
func (s Sweep) amount(t float64) float64 {
	half := s.Width / 2
	dist := math.Abs(t - s.Center)
	if half <= 0 || dist > half {
		return 0
	}
	return clamp01(s.Intensity * math.Pow(1-dist/half, math.Max(s.Softness, 1)))
}

// applyTo brightens the colored cells of g in place.
func (s Sweep) applyTo(g *Grid) {
	if s.Intensity <= 0 || s.Width <= 0 {
		return
	}
	tint := s.tint()
	w, h := g.Width(), g.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := g.cell(x, y)
			if !c.Visible || !c.HasFG {
				continue
			}
			if a := s.amount(s.Direction.position(x, y, w, h)); a > 0 {
				c.FG = c.FG.Add(tint, a)
			}
		}
	}
}

// Apply returns a copy of g with the band drawn at s.Center.
func (s Sweep) Apply(g *Grid) *Grid {
	out := g.Clone()
	s.applyTo(out)
	return out
}
