package ansibanner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridBounds(t *testing.T) {
	t.Parallel()

	g := NewGrid(3, 2)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}} {
		_, err := g.At(p[0], p[1])
		assert.True(t, errors.Is(err, ErrOutOfBounds), "At%v", p)
		assert.True(t, errors.Is(g.Set(p[0], p[1], Cell{}), ErrOutOfBounds), "Set%v", p)
	}
	_, err := g.Row(2)
	assert.True(t, errors.Is(err, ErrOutOfBounds))

	require.NoError(t, g.Set(2, 1, Cell{Rune: 'x', Visible: true}))
	assert.Equal(t, 'x', mustAt(t, g, 2, 1).Rune)
	assert.Equal(t, "   \n  x", g.String())
}

func TestNewGridIsEmpty(t *testing.T) {
	t.Parallel()

	g := NewGrid(2, 2)
	assert.Equal(t, 0, g.VisibleCount())
	assert.Equal(t, EmptyCell, mustAt(t, g, 1, 1))

	neg := NewGrid(-4, 3)
	assert.Equal(t, 0, neg.Width())
	assert.Equal(t, "\n\n", neg.String())
}

func TestGridCloneIsDeep(t *testing.T) {
	t.Parallel()

	g := GridFromRows("ab")
	c := g.Clone()
	require.NoError(t, c.Set(0, 0, Cell{Rune: 'z', Visible: true}))
	assert.Equal(t, "ab", g.String())
	assert.Equal(t, "zb", c.String())
}

func TestTrimVertical(t *testing.T) {
	t.Parallel()

	g := GridFromRows("   ", " # ", "   ", " # ", "   ", "   ")
	trimmed := g.TrimVertical()
	assert.Equal(t, []string{" # ", "   ", " # "}, trimmed.Lines(), "interior blank rows stay")
	assert.Equal(t, 3, trimmed.Width(), "columns are never trimmed")
	assert.Equal(t, trimmed.Lines(), trimmed.TrimVertical().Lines(), "trimming is idempotent")

	blank := NewGrid(4, 3).TrimVertical()
	assert.Equal(t, 0, blank.Height())
	assert.Equal(t, 4, blank.Width())
	assert.Nil(t, blank.Lines())
}

func TestBlitSkipsEmptyAndClips(t *testing.T) {
	t.Parallel()

	dst := GridFromRows("....", "....")
	dst.Blit(GridFromRows("a b"), 2, 1)
	assert.Equal(t, []string{"....", "..a."}, dst.Lines())
}
