package ansibanner

import (
	"context"
	"fmt"
	"iter"
	"math"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Animation turns a base grid into frame index of total frames. Frames
// are independent: computing one never requires another, and the base
// grid is never modified.
type Animation interface {
	Frame(base *Grid, index, total int) *Grid
}

// progress maps a frame index onto [0, 1), wrapping indexes past total.
func progress(index, total int) float64 {
	if total <= 0 {
		return 0
	}
	i := index % total
	if i < 0 {
		i += total
	}
	return float64(i) / float64(total)
}

// SweepAnimation moves a highlight band across the banner. The band
// starts 0.75 before the base sweep's center and ends 0.75 after it, so it
// enters and leaves fully off-banner.
type SweepAnimation struct {
	Sweep Sweep
}

// DefaultSweepAnimation is the standard animated sweep: a diagonal band
// slightly brighter and softer than the static default.
func DefaultSweepAnimation() SweepAnimation {
	s := DefaultSweep(SweepDiagonalDown)
	s.Intensity = 0.9
	s.Softness = 2.5
	return SweepAnimation{Sweep: s}
}

func (a SweepAnimation) Frame(base *Grid, index, total int) *Grid {
	s := a.Sweep
	s.Center = a.Sweep.Center - 0.75 + 1.5*progress(index, total)
	return s.Apply(base)
}

// Wave makes the banner breathe: each cell's color dims towards black or
// brightens towards white following a sine wave over its position and
// the frame phase. Characters and positions never change.
type Wave struct {
	// Dim is the strongest darkening, Bright the strongest brightening,
	// both in [0, 1].
	Dim    float64
	Bright float64
}

// DefaultWave returns the standard breathing strengths.
func DefaultWave() Wave { return Wave{Dim: 0.35, Bright: 0.2} }

// wave spatial frequencies across the banner width and height.
const (
	waveFreqX = 5.0
	waveFreqY = 3.0
)

func (a Wave) Frame(base *Grid, index, total int) *Grid {
	out := base.Clone()
	phase := progress(index, total) * 2 * math.Pi
	w, h := out.Width(), out.Height()
	dim, bright := clamp01(a.Dim), clamp01(a.Bright)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := out.cell(x, y)
			if !c.Visible || !c.HasFG {
				continue
			}
			offset := (normalized(x, w)*waveFreqX + normalized(y, h)*waveFreqY) * 2 * math.Pi
			v := (math.Sin(phase+offset) + 1) / 2
			if v < 0.5 {
				c.FG = c.FG.Lerp(Black, dim*(0.5-v)/0.5)
			} else {
				c.FG = c.FG.Lerp(White, bright*(v-0.5)/0.5)
			}
		}
	}
	return out
}

// Roll scrolls the whole banner along one axis with wraparound: cells
// pushed off one edge come back in at the opposite edge. Frame k is
// shifted by k*Step cells, so the animation repeats every axis-length
// frames.
type Roll struct {
	// Vertical scrolls rows downwards instead of columns to the right.
	Vertical bool
	// Step is the per-frame shift; negative values scroll backwards.
	// Zero means 1.
	Step int
}

func (a Roll) Frame(base *Grid, index, _ int) *Grid {
	step := a.Step
	if step == 0 {
		step = 1
	}
	w, h := base.Width(), base.Height()
	span := w
	if a.Vertical {
		span = h
	}
	out := NewGrid(w, h)
	if span == 0 {
		return out
	}
	shift := ((index*step)%span + span) % span
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := (x+shift)%w, y
			if a.Vertical {
				dx, dy = x, (y+shift)%h
			}
			*out.cell(dx, dy) = *base.cell(x, y)
		}
	}
	return out
}

// ParseAnimation builds one of the stock animations by name: "sweep",
// "wave", "roll" or "roll-vertical".
func ParseAnimation(name string) (Animation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sweep":
		return DefaultSweepAnimation(), nil
	case "wave":
		return DefaultWave(), nil
	case "roll":
		return Roll{}, nil
	case "roll-vertical":
		return Roll{Vertical: true}, nil
	}
	return nil, configErrorf("animate", "unknown animation %q", name)
}

// Frames yields total frames of anim over base, in order. Each frame is
// computed only when the consumer asks for it, so stopping the range loop
// stops the work.
func Frames(base *Grid, anim Animation, total int) iter.Seq2[int, *Grid] {
	return func(yield func(int, *Grid) bool) {
		for i := 0; i < total; i++ {
			if !yield(i, anim.Frame(base, i, total)) {
				return
			}
		}
	}
}

// Loop yields frames of a total-frame cycle forever, numbering them from
// zero without wrapping. It ends only when the consumer stops ranging.
func Loop(base *Grid, anim Animation, total int) iter.Seq2[int, *Grid] {
	return func(yield func(int, *Grid) bool) {
		if total <= 0 {
			return
		}
		for i := 0; ; i++ {
			if !yield(i, anim.Frame(base, i%total, total)) {
				return
			}
		}
	}
}

// RenderFrames computes all total frames concurrently on at most workers
// goroutines (GOMAXPROCS when workers < 1) and returns them in frame
// order. Workers share only the read-only base grid.
func RenderFrames(ctx context.Context, base *Grid, anim Animation, total, workers int) ([]*Grid, error) {
	if total < 0 {
		return nil, configErrorf("frames", "must not be negative, got %d", total)
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	frames := make([]*Grid, total)
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := range total {
		if gctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			frames[i] = anim.Frame(base, i, total)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("rendering frames: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("rendering frames: %w", err)
	}
	return frames, nil
}
