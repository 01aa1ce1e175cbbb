package ansibanner

import (
	"fmt"
	"strings"
)

const (
	ESC   = "\u001b"
	Reset = ESC + "[0m"
)

// colorKey is the SGR parameters in effect for a run of cells; empty
// strings mean the terminal default.
type colorKey struct {
	fg, bg string
}

func (k colorKey) empty() bool { return k.fg == "" && k.bg == "" }

// fgCode and bgCode format a color's SGR parameters for mode.
func fgCode(c RGB, mode ColorMode) string {
	if mode == Color256 {
		return fmt.Sprintf("38;5;%d", Ansi256Index(c))
	}
	return fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B)
}

func bgCode(c RGB, mode ColorMode) string {
	if mode == Color256 {
		return fmt.Sprintf("48;5;%d", Ansi256Index(c))
	}
	return fmt.Sprintf("48;2;%d;%d;%d", c.R, c.G, c.B)
}

// keyFor returns the parameters a cell needs. Empty cells need none.
func keyFor(c Cell, mode ColorMode) colorKey {
	var k colorKey
	if !c.Visible {
		return k
	}
	if c.HasFG {
		k.fg = fgCode(c.FG, mode)
	}
	if c.HasBG {
		k.bg = bgCode(c.BG, mode)
	}
	return k
}

// Emit serialises g for a terminal. In the color modes, consecutive cells
// with the same colors share one SGR sequence, an empty cell is a plain
// space printed after a reset if a color was active, and every row ends
// with a reset. ColorNone prints characters only. Rows are separated by
// newlines with none after the last row. ColorAuto is resolved from
// hints.
func Emit(g *Grid, mode ColorMode, hints Hints) string {
	mode = mode.Resolve(hints)
	if mode == ColorNone {
		return g.String()
	}

	var sb strings.Builder
	for y := 0; y < g.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		var current colorKey
		var run strings.Builder
		var runKey colorKey
		for x := 0; x < g.Width(); x++ {
			c := *g.cell(x, y)
			k := keyFor(c, mode)
			if k != runKey && run.Len() > 0 {
				current = writeRun(&sb, current, runKey, run.String())
				run.Reset()
			}
			runKey = k
			if c.Visible {
				run.WriteRune(c.Rune)
			} else {
				run.WriteByte(' ')
			}
		}
		if run.Len() > 0 {
			writeRun(&sb, current, runKey, run.String())
		}
		sb.WriteString(Reset)
	}
	return sb.String()
}

// EmitAll serialises a sequence of frames.
func EmitAll(frames []*Grid, mode ColorMode, hints Hints) []string {
	mode = mode.Resolve(hints)
	out := make([]string, len(frames))
	for i, f := range frames {
		out[i] = Emit(f, mode, hints)
	}
	return out
}

// writeRun writes the escape sequence that moves the terminal from the
// current colors to want, followed by the run's text, and returns the
// new state.
func writeRun(sb *strings.Builder, current, want colorKey, text string) colorKey {
	if want != current {
		sb.WriteString(formatANSICode(current, want))
	}
	sb.WriteString(text)
	return want
}

// formatANSICode returns the single SGR sequence that switches from the
// current colors to want. Dropping an active foreground or background
// needs a reset, which is folded into the same sequence.
func formatANSICode(current, want colorKey) string {
	if want.empty() {
		return Reset
	}
	var code strings.Builder
	code.WriteString(ESC)
	code.WriteByte('[')
	if (current.fg != "" && want.fg == "") || (current.bg != "" && want.bg == "") {
		code.WriteString("0;")
	}
	if want.fg != "" {
		code.WriteString(want.fg)
		if want.bg != "" {
			code.WriteByte(';')
		}
	}
	if want.bg != "" {
		code.WriteString(want.bg)
	}
	code.WriteByte('m')
	return code.String()
}
