package ansibanner

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

func TestRendererCaching(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}

	first, err := r.Grid("Hi")
	if err != nil {
		t.Fatalf("Grid failed: %v", err)
	}
	hits, misses, _ := r.CacheStats()
	if hits != 0 || misses != 1 {
		t.Errorf("Expected 0 hits and 1 miss, got %d and %d", hits, misses)
	}

	// Mutating a returned grid must not leak into the cache
	first.Set(0, 0, Cell{Rune: 'X', Visible: true})

	second, err := r.Grid("Hi")
	if err != nil {
		t.Fatalf("Grid failed: %v", err)
	}
	hits, misses, rate := r.CacheStats()
	if hits != 1 || misses != 1 || rate != 0.5 {
		t.Errorf("Expected 1 hit, 1 miss and rate 0.5, got %d, %d, %f", hits, misses, rate)
	}
	if c, _ := second.At(0, 0); c.Rune == 'X' {
		t.Error("Cached grid was modified through a returned copy")
	}
	if r.RenderTime() <= 0 {
		t.Error("RenderTime should be positive after a miss")
	}

	r.ResetStats()
	hits, misses, rate = r.CacheStats()
	if hits != 0 || misses != 0 || rate != 0 || r.RenderTime() != 0 {
		t.Error("ResetStats should clear every counter")
	}
	if _, err := r.Grid("Hi"); err != nil {
		t.Fatalf("Grid failed: %v", err)
	}
	if _, misses, _ := r.CacheStats(); misses != 1 {
		t.Error("ResetStats should empty the cache")
	}
}

func TestRendererCacheIsBounded(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	for i := 0; i < maxCachedGrids+5; i++ {
		if _, err := r.Grid(strings.Repeat("A", i+1)); err != nil {
			t.Fatalf("Grid failed: %v", err)
		}
	}
	r.mu.Lock()
	n := len(r.cache)
	r.mu.Unlock()
	if n > maxCachedGrids {
		t.Errorf("Cache holds %d grids, limit is %d", n, maxCachedGrids)
	}
}

func TestRendererConcurrentUse(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer(WithColorMode(ColorTrue))
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	want, err := r.Render("GO", Hints{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := r.Render("GO", Hints{})
			if err != nil || got != want {
				t.Errorf("concurrent Render differs (err=%v)", err)
			}
		}()
	}
	wg.Wait()
}

func TestRendererRender(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer(
		WithFont(pairFont(t)),
		WithConfig(Config{Preset: "matrix", Padding: "0"}),
	)
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}

	plain, err := r.Render("AB", Hints{NoColor: true})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if plain != "AABB\nAABB" {
		t.Errorf("Unexpected plain banner %q", plain)
	}

	colored, err := r.Render("AB", Hints{ColorTerm: "truecolor"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.HasPrefix(colored, ESC+"[38;2;0;255;156m") {
		t.Errorf("First row should start with the first matrix stop, got %q", colored)
	}
	if ansi.Strip(colored) != plain {
		t.Errorf("Stripped output %q differs from plain %q", ansi.Strip(colored), plain)
	}

	if _, err := r.Render("  ", Hints{}); !errors.As(err, new(*EmptyTextError)) {
		t.Errorf("Expected EmptyTextError, got %v", err)
	}
}

func TestNewRendererErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []RendererOption
	}{
		{"nil font", []RendererOption{WithFont(nil)}},
		{"unknown preset", []RendererOption{WithConfig(Config{Preset: "nope"})}},
		{"bad color", []RendererOption{WithConfig(Config{Gradient: &GradientConfig{Stops: []string{"#12"}}})}},
		{"bad padding", []RendererOption{WithConfig(Config{Padding: "1,2,3"})}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := NewRenderer(tt.opts...); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestRendererUserPresets(t *testing.T) {
	t.Parallel()

	user := map[string]Config{
		"brand": {Preset: "crt-amber", Fill: &FillConfig{Kind: "solid", Char: "#"}},
	}
	r, err := NewRenderer(
		WithFont(pairFont(t)),
		WithConfig(Config{Preset: "brand", Padding: "0"}),
		WithUserPresets(user),
	)
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	g, err := r.Grid("A")
	if err != nil {
		t.Fatalf("Grid failed: %v", err)
	}
	if g.String() != "##\n##" {
		t.Errorf("Expected the user fill, got %q", g.String())
	}
	if c, _ := g.At(0, 0); c.FG != MustParseHex("#FFB000") {
		t.Errorf("Expected the builtin crt-amber stops, got %v", c.FG)
	}
}

func TestRendererAnimation(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer(
		WithFont(pairFont(t)),
		WithWorkers(2),
		WithConfig(Config{
			Padding: "1",
			Frame:   &FrameConfig{Style: "rounded"},
			Animation: &AnimationConfig{
				Kind: "sweep", Frames: 8, DelayMS: 40,
			},
		}),
	)
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	if !r.Animated() {
		t.Fatal("Renderer should be animated")
	}
	if r.FrameDelay() != 40*time.Millisecond {
		t.Errorf("Expected 40ms delay, got %v", r.FrameDelay())
	}

	static, err := r.Grid("AB")
	if err != nil {
		t.Fatalf("Grid failed: %v", err)
	}
	frames, err := r.FrameGrids(context.Background(), "AB")
	if err != nil {
		t.Fatalf("FrameGrids failed: %v", err)
	}
	if len(frames) != 8 {
		t.Fatalf("Expected 8 frames, got %d", len(frames))
	}
	for i, f := range frames {
		// Every frame runs the finishing stages: padding and frame included
		if f.String() != static.String() {
			t.Errorf("frame %d characters differ from the static banner:\n%s", i, f.String())
		}
	}

	seq, err := r.Frames("AB")
	if err != nil {
		t.Fatalf("Frames failed: %v", err)
	}
	n := 0
	for i, f := range seq {
		if f.String() != frames[i].String() {
			t.Errorf("iterator frame %d differs", i)
		}
		n++
	}
	if n != 8 {
		t.Errorf("Expected 8 iterator frames, got %d", n)
	}

	out, err := r.RenderFrames(context.Background(), "AB", Hints{NoColor: true})
	if err != nil {
		t.Fatalf("RenderFrames failed: %v", err)
	}
	if len(out) != 8 || out[0] != static.String() {
		t.Errorf("Unexpected emitted frames: %d", len(out))
	}
}

func TestRendererRollKeepsFrameInPlace(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer(WithFont(pairFont(t)), WithConfig(Config{
		Frame:     &FrameConfig{Style: "single"},
		Animation: &AnimationConfig{Kind: "roll", Frames: 4},
	}))
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	frames, err := r.FrameGrids(context.Background(), "AB")
	if err != nil {
		t.Fatalf("FrameGrids failed: %v", err)
	}
	want := [][]string{
		{"┌────┐", "│AABB│", "│AABB│", "└────┘"},
		{"┌────┐", "│BAAB│", "│BAAB│", "└────┘"},
		{"┌────┐", "│BBAA│", "│BBAA│", "└────┘"},
		{"┌────┐", "│ABBA│", "│ABBA│", "└────┘"},
	}
	for i, f := range frames {
		if got := f.Lines(); strings.Join(got, "\n") != strings.Join(want[i], "\n") {
			t.Errorf("frame %d:\n%s\nwant:\n%s", i, strings.Join(got, "\n"), strings.Join(want[i], "\n"))
		}
	}
}

func TestRendererLoopAndStaticErrors(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer(WithFont(pairFont(t)), WithConfig(Config{
		Animation: &AnimationConfig{Kind: "roll", Frames: 3},
	}))
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	if r.Pipeline().DelayMS != DefaultDelayMS {
		t.Errorf("Expected default delay, got %d", r.Pipeline().DelayMS)
	}
	loop, err := r.Loop("A")
	if err != nil {
		t.Fatalf("Loop failed: %v", err)
	}
	count := 0
	for range loop {
		count++
		if count == 10 {
			break
		}
	}
	if count != 10 {
		t.Errorf("Loop should keep yielding, got %d frames", count)
	}

	static, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	if static.Animated() {
		t.Error("Default renderer should not be animated")
	}
	if _, err := static.FrameGrids(context.Background(), "A"); err == nil {
		t.Error("FrameGrids without an animation should fail")
	}
}
