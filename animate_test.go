package ansibanner

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cmpGrid compares grids including unexported cell storage.
var cmpGrid = cmp.AllowUnexported(Grid{})

func gradientGrid(t *testing.T) *Grid {
	t.Helper()
	g := GridFromRows("#### ##", "# #  ##", "#### ##")
	grad, err := NewGradient(Palette{MustParseHex("#3A7BFF"), MustParseHex("#FF5AD9")}, Horizontal)
	require.NoError(t, err)
	grad.Apply(g)
	return g
}

func TestRollWrapsAround(t *testing.T) {
	t.Parallel()

	base := GridFromRows("ab ", "c  ")
	assert.Equal(t, []string{" ab", " c "}, Roll{}.Frame(base, 1, 10).Lines())
	assert.Equal(t, []string{"b a", "  c"}, Roll{Step: -1}.Frame(base, 1, 10).Lines())
	assert.Equal(t, []string{"c  ", "ab "}, Roll{Vertical: true}.Frame(base, 1, 10).Lines())

	for k := range 5 {
		a := Roll{}.Frame(base, k, 10)
		b := Roll{}.Frame(base, k+base.Width(), 10)
		assert.Empty(t, cmp.Diff(a, b, cmpGrid), "frame %d", k)
	}
	assert.Equal(t, base.Lines(), Roll{Step: 2}.Frame(base, 3, 10).Lines(), "a full turn is the identity")
	assert.Equal(t, 0, Roll{}.Frame(NewGrid(0, 0), 3, 10).Width())
}

func TestWaveOnlyChangesColors(t *testing.T) {
	t.Parallel()

	base := gradientGrid(t)
	wave := Wave{Dim: 1, Bright: 1}
	changed := false
	for i := range 12 {
		f := wave.Frame(base, i, 12)
		assert.Equal(t, base.String(), f.String(), "frame %d", i)
		for j, c := range f.cells {
			assert.Equal(t, base.cells[j].HasFG, c.HasFG)
			changed = changed || c.FG != base.cells[j].FG
		}
	}
	assert.True(t, changed)

	still := Wave{}.Frame(base, 5, 12)
	assert.Empty(t, cmp.Diff(base, still, cmpGrid), "zero strengths leave the banner alone")
}

func TestSweepAnimationEntersFromOffBanner(t *testing.T) {
	t.Parallel()

	base := gradientGrid(t)
	anim := DefaultSweepAnimation()
	assert.Empty(t, cmp.Diff(base, anim.Frame(base, 0, 20), cmpGrid), "first frame has the band off-banner")
	assert.NotEmpty(t, cmp.Diff(base, anim.Frame(base, 10, 20), cmpGrid), "mid frame has the band on the banner")
	assert.Empty(t, cmp.Diff(anim.Frame(base, 3, 20), anim.Frame(base, 23, 20), cmpGrid), "indexes wrap")
}

func TestFramesIterator(t *testing.T) {
	t.Parallel()

	base := GridFromRows("abc")
	var seen []string
	for i, f := range Frames(base, Roll{}, 3) {
		assert.Equal(t, len(seen), i)
		seen = append(seen, f.String())
	}
	assert.Equal(t, []string{"abc", "cab", "bca"}, seen)

	n := 0
	for range Frames(base, Roll{}, 100) {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestLoopRepeats(t *testing.T) {
	t.Parallel()

	base := GridFromRows("abc")
	var seen []string
	for i, f := range Loop(base, Roll{}, 3) {
		if i == 7 {
			break
		}
		seen = append(seen, f.String())
	}
	assert.Equal(t, []string{"abc", "cab", "bca", "abc", "cab", "bca", "abc"}, seen)

	for range Loop(base, Roll{}, 0) {
		t.Fatal("an empty cycle yields nothing")
	}
}

func TestRenderFramesMatchesSequential(t *testing.T) {
	t.Parallel()

	base := gradientGrid(t)
	for _, anim := range []Animation{DefaultSweepAnimation(), DefaultWave(), Roll{Vertical: true}} {
		got, err := RenderFrames(context.Background(), base, anim, 24, 3)
		require.NoError(t, err)
		require.Len(t, got, 24)
		for i, f := range Frames(base, anim, 24) {
			assert.Empty(t, cmp.Diff(f, got[i], cmpGrid), "%T frame %d", anim, i)
		}
	}
}

func TestRenderFramesCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RenderFrames(ctx, gradientGrid(t), DefaultWave(), 50, 0)
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)

	frames, err := RenderFrames(context.Background(), gradientGrid(t), DefaultWave(), 0, 0)
	require.NoError(t, err)
	assert.Empty(t, frames)

	_, err = RenderFrames(context.Background(), gradientGrid(t), DefaultWave(), -1, 0)
	assert.Error(t, err)
}

func TestParseAnimation(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]Animation{
		"sweep":         DefaultSweepAnimation(),
		"Wave":          DefaultWave(),
		"roll":          Roll{},
		"roll-vertical": Roll{Vertical: true},
	} {
		got, err := ParseAnimation(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := ParseAnimation("spin")
	assert.Error(t, err)
}

func TestProgress(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, progress(0, 4))
	assert.Equal(t, 0.5, progress(2, 4))
	assert.Equal(t, 0.25, progress(5, 4))
	assert.Equal(t, 0.75, progress(-1, 4))
	assert.Equal(t, 0.0, progress(3, 0))
}
