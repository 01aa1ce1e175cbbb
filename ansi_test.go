package ansibanner

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var trueColorHints = Hints{ColorTerm: "truecolor", Term: "xterm-256color"}

func TestEmitNoColor(t *testing.T) {
	t.Parallel()

	g := paint(GridFromRows("# #", " # "), RGB{255, 0, 0})
	for _, out := range []string{
		Emit(g, ColorNone, trueColorHints),
		Emit(g, ColorAuto, Hints{NoColor: true, Term: "xterm"}),
		Emit(g, ColorAuto, Hints{Term: "dumb"}),
	} {
		assert.NotContains(t, out, ESC)
		assert.Equal(t, "# #\n # ", out)
	}
}

func TestEmitVerticalGradient(t *testing.T) {
	t.Parallel()

	g := solidGrid(3, 4)
	grad, err := NewGradient(Palette{Black, White}, Vertical)
	require.NoError(t, err)
	grad.Apply(g)

	out := Emit(g, ColorTrue, Hints{})
	rows := strings.Split(out, "\n")
	require.Len(t, rows, 4)
	assert.Equal(t, ESC+"[38;2;0;0;0m###"+Reset, rows[0])
	assert.Equal(t, ESC+"[38;2;255;255;255m###"+Reset, rows[3])
	for _, row := range rows {
		assert.True(t, strings.HasSuffix(row, Reset))
		assert.Equal(t, 1, strings.Count(row, "[38;2;"), "one sequence per same-colored run")
	}
	assert.False(t, strings.HasSuffix(out, "\n"))
	assert.Equal(t, g.String(), ansi.Strip(out))
}

func TestEmitEmptyCellsReset(t *testing.T) {
	t.Parallel()

	red := ESC + "[38;2;255;0;0m"
	g := paint(GridFromRows("# #"), RGB{255, 0, 0})
	assert.Equal(t, red+"#"+Reset+" "+red+"#"+Reset, Emit(g, ColorTrue, Hints{}))

	uncolored := GridFromRows("ab")
	assert.Equal(t, "ab"+Reset, Emit(uncolored, ColorTrue, Hints{}))
}

func TestEmitBackgrounds(t *testing.T) {
	t.Parallel()

	g := GridFromRows("ab")
	a := mustAt(t, g, 0, 0)
	a.SetFG(White)
	a.SetBG(RGB{0, 0, 255})
	require.NoError(t, g.Set(0, 0, a))
	b := mustAt(t, g, 1, 0)
	b.SetFG(White)
	require.NoError(t, g.Set(1, 0, b))

	want := ESC + "[38;2;255;255;255;48;2;0;0;255ma" +
		ESC + "[0;38;2;255;255;255mb" + Reset
	assert.Equal(t, want, Emit(g, ColorTrue, Hints{}))
}

func TestEmit256(t *testing.T) {
	t.Parallel()

	g := paint(GridFromRows("##"), RGB{255, 0, 0})
	assert.Equal(t, ESC+"[38;5;196m##"+Reset, Emit(g, Color256, Hints{}))
	assert.Equal(t, ESC+"[38;5;196m##"+Reset, Emit(g, ColorAuto, Hints{Term: "xterm"}))
}

func TestEmitAll(t *testing.T) {
	t.Parallel()

	frames := []*Grid{GridFromRows("a"), GridFromRows("b")}
	out := EmitAll(frames, ColorNone, Hints{})
	assert.Equal(t, []string{"a", "b"}, out)

	empty := Emit(NewGrid(0, 0), ColorTrue, Hints{})
	assert.Equal(t, "", empty)
}
