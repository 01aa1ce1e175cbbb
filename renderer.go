package ansibanner

import (
	"context"
	"iter"
	"sync"
	"time"

	"github.com/wbrown/ansibanner/figlet"
)

// Renderer holds a font and a resolved pipeline and turns text into
// banners. A Renderer is safe for concurrent use; finished static grids
// are cached by text so repeated renders of the same banner skip the
// pipeline.
type Renderer struct {
	font        *figlet.Font
	config      Config
	userPresets map[string]Config
	colorMode   *ColorMode
	workers     int
	pipe        *Pipeline

	mu           sync.Mutex
	cache        map[string]*Grid
	lookupHits   int
	lookupMisses int
	renderTime   time.Duration
}

// maxCachedGrids bounds the grid cache; it is emptied when full.
const maxCachedGrids = 64

// RendererOption is a functional option for configuring a Renderer.
type RendererOption func(*Renderer)

// NewRenderer creates a Renderer with the given options and resolves its
// configuration immediately, so every configuration error is reported
// here rather than at render time. Defaults: the builtin block font,
// DefaultConfig, and GOMAXPROCS animation workers.
func NewRenderer(opts ...RendererOption) (*Renderer, error) {
	r := &Renderer{
		font:   figlet.Default(),
		config: DefaultConfig(),
		cache:  make(map[string]*Grid),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.font == nil {
		return nil, configErrorf("font", "a font is required")
	}
	cfg, err := r.config.Expand(r.userPresets)
	if err != nil {
		return nil, err
	}
	if r.pipe, err = cfg.Resolve(); err != nil {
		return nil, err
	}
	if r.colorMode != nil {
		r.pipe.ColorMode = *r.colorMode
	}
	return r, nil
}

// WithFont sets the font glyphs are drawn from.
func WithFont(f *figlet.Font) RendererOption {
	return func(r *Renderer) {
		r.font = f
	}
}

// WithConfig replaces the default configuration.
func WithConfig(c Config) RendererOption {
	return func(r *Renderer) {
		r.config = c
	}
}

// WithUserPresets makes extra named presets available to Config.Preset.
func WithUserPresets(presets map[string]Config) RendererOption {
	return func(r *Renderer) {
		r.userPresets = presets
	}
}

// WithColorMode overrides the configured color mode.
func WithColorMode(m ColorMode) RendererOption {
	return func(r *Renderer) {
		r.colorMode = &m
	}
}

// WithWorkers sets how many goroutines precompute animation frames.
func WithWorkers(n int) RendererOption {
	return func(r *Renderer) {
		r.workers = n
	}
}

// Pipeline returns the resolved pipeline. It must not be modified.
func (r *Renderer) Pipeline() *Pipeline { return r.pipe }

// Font returns the renderer's font.
func (r *Renderer) Font() *figlet.Font { return r.font }

// Grid runs the static pipeline over text and returns the finished grid.
// The caller owns the result.
func (r *Renderer) Grid(text string) (*Grid, error) {
	r.mu.Lock()
	if g, ok := r.cache[text]; ok {
		r.lookupHits++
		r.mu.Unlock()
		return g.Clone(), nil
	}
	r.lookupMisses++
	r.mu.Unlock()

	start := time.Now()
	g, err := r.pipe.Build(text, r.font)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.renderTime += time.Since(start)
	if len(r.cache) >= maxCachedGrids {
		clear(r.cache)
	}
	r.cache[text] = g
	return g.Clone(), nil
}

// Render returns text as a terminal banner. The pipeline's color mode is
// resolved against hints when it is ColorAuto.
func (r *Renderer) Render(text string, hints Hints) (string, error) {
	g, err := r.Grid(text)
	if err != nil {
		return "", err
	}
	return Emit(g, r.pipe.ColorMode, hints), nil
}

// Animated reports whether the configuration selects an animation.
func (r *Renderer) Animated() bool { return r.pipe.Animation != nil }

// animation returns the base grid and frame function for text. A sweep
// animation replaces the static sweep and is followed by the remaining
// stages on every frame. Other animations move or shade the banner before
// layout, so padding and frame stay in place.
func (r *Renderer) animation(text string) (*Grid, Animation, error) {
	if r.pipe.Animation == nil {
		return nil, nil, configErrorf("animation", "no animation configured")
	}
	base, err := r.pipe.Base(text, r.font)
	if err != nil {
		return nil, nil, err
	}
	if _, ok := r.pipe.Animation.(SweepAnimation); ok {
		return base, finishing{Animation: r.pipe.Animation, pipe: r.pipe}, nil
	}
	if r.pipe.Sweep != nil {
		r.pipe.Sweep.applyTo(base)
	}
	return r.pipe.Effects(base), presenting{Animation: r.pipe.Animation, pipe: r.pipe}, nil
}

// Frames yields the animation frames of text one at a time.
func (r *Renderer) Frames(text string) (iter.Seq2[int, *Grid], error) {
	base, anim, err := r.animation(text)
	if err != nil {
		return nil, err
	}
	return Frames(base, anim, r.pipe.Frames), nil
}

// Loop yields the animation frames of text forever.
func (r *Renderer) Loop(text string) (iter.Seq2[int, *Grid], error) {
	base, anim, err := r.animation(text)
	if err != nil {
		return nil, err
	}
	return Loop(base, anim, r.pipe.Frames), nil
}

// FrameGrids precomputes every animation frame of text in parallel.
func (r *Renderer) FrameGrids(ctx context.Context, text string) ([]*Grid, error) {
	base, anim, err := r.animation(text)
	if err != nil {
		return nil, err
	}
	return RenderFrames(ctx, base, anim, r.pipe.Frames, r.workers)
}

// RenderFrames precomputes and emits every animation frame of text.
func (r *Renderer) RenderFrames(ctx context.Context, text string, hints Hints) ([]string, error) {
	grids, err := r.FrameGrids(ctx, text)
	if err != nil {
		return nil, err
	}
	return EmitAll(grids, r.pipe.ColorMode, hints), nil
}

// FrameDelay is how long each animation frame stays on screen.
func (r *Renderer) FrameDelay() time.Duration {
	return time.Duration(r.pipe.DelayMS) * time.Millisecond
}

// CacheStats returns cache hit/miss statistics.
func (r *Renderer) CacheStats() (hits, misses int, hitRate float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := r.lookupHits + r.lookupMisses
	if total == 0 {
		return 0, 0, 0
	}
	return r.lookupHits, r.lookupMisses, float64(r.lookupHits) / float64(total)
}

// RenderTime returns the cumulative time spent running the pipeline on
// cache misses.
func (r *Renderer) RenderTime() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.renderTime
}

// ResetStats resets all statistics counters and empties the cache.
func (r *Renderer) ResetStats() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lookupHits = 0
	r.lookupMisses = 0
	r.renderTime = 0
	clear(r.cache)
}

// finishing runs the post-sweep stages over every frame of an animation
// that works on the base grid.
type finishing struct {
	Animation
	pipe *Pipeline
}

func (f finishing) Frame(base *Grid, index, total int) *Grid {
	return f.pipe.Finish(f.Animation.Frame(base, index, total))
}

// presenting lays out and frames every frame of an animation that works
// on the unframed banner.
type presenting struct {
	Animation
	pipe *Pipeline
}

func (f presenting) Frame(base *Grid, index, total int) *Grid {
	return f.pipe.Present(f.Animation.Frame(base, index, total))
}

// Base composes text and applies the coloring and fill stages: everything
// up to the static sweep.
func (p *Pipeline) Base(text string, font *figlet.Font) (*Grid, error) {
	g, err := Compose(text, font, p.Compose)
	if err != nil {
		return nil, err
	}
	if p.TrimVertical {
		g = g.TrimVertical()
	}
	if p.Gradient != nil {
		p.Gradient.Apply(g)
	}
	if p.Fill != nil {
		p.Fill.Apply(g)
	}
	return g, nil
}

// Finish applies the stages after the static sweep: dot dither, shadow,
// edge shade, outline, layout and frame. g is not modified.
func (p *Pipeline) Finish(g *Grid) *Grid {
	return p.Present(p.Effects(g))
}

// Effects applies dot dither, shadow, edge shade and outline, in that
// order. g is not modified.
func (p *Pipeline) Effects(g *Grid) *Grid {
	if p.DotDither != nil {
		g = p.DotDither.Apply(g)
	}
	if p.Shadow != nil {
		g = p.Shadow.Apply(g)
	}
	if p.EdgeShade != nil {
		g = p.EdgeShade.Apply(g)
	}
	if p.Outline != nil {
		g = p.Outline.Apply(g)
	}
	return g
}

// Present pads, aligns and frames g.
func (p *Pipeline) Present(g *Grid) *Grid {
	g = p.Layout.Apply(g)
	if p.Frame != nil {
		g = p.Frame.Apply(g)
	}
	return g
}

// Build runs the whole static pipeline.
func (p *Pipeline) Build(text string, font *figlet.Font) (*Grid, error) {
	g, err := p.Base(text, font)
	if err != nil {
		return nil, err
	}
	if p.Sweep != nil {
		p.Sweep.applyTo(g)
	}
	return p.Finish(g), nil
}
