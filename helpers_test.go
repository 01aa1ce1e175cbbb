package ansibanner

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wbrown/ansibanner/figlet"
)

// pairFont draws every printable character as a 2x2 block of itself, so
// composed text is easy to read back. Space is blank.
func pairFont(t *testing.T) *figlet.Font {
	t.Helper()
	var sb strings.Builder
	sb.WriteString("flf2a$ 2 2 4 -1 0\n")
	for code := rune(figlet.FirstCode); code <= figlet.LastCode; code++ {
		row := strings.Repeat(string(code), 2)
		if code == ' ' {
			row = "$$"
		}
		mark := "@"
		if code == '@' {
			mark = "#"
		}
		fmt.Fprintf(&sb, "%s%s\n%s%s%s\n", row, mark, row, mark, mark)
	}
	f, err := figlet.ParseString(sb.String())
	require.NoError(t, err)
	return f
}

// paint gives every visible cell of g the same foreground.
func paint(g *Grid, c RGB) *Grid {
	Solid(g, c)
	return g
}

func mustAt(t *testing.T, g *Grid, x, y int) Cell {
	t.Helper()
	c, err := g.At(x, y)
	require.NoError(t, err)
	return c
}

func ptr[T any](v T) *T { return &v }
