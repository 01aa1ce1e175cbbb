package ansibanner

import (
	"fmt"
	"strings"
)

// ColorMode is the color encoding used by the emitter.
type ColorMode int

const (
	// ColorAuto resolves to one of the other modes from Hints.
	ColorAuto ColorMode = iota
	ColorTrue
	Color256
	ColorNone
)

var colorModeNames = map[ColorMode]string{
	ColorAuto: "auto",
	ColorTrue: "truecolor",
	Color256:  "ansi256",
	ColorNone: "none",
}

func (m ColorMode) String() string {
	if s, ok := colorModeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("ColorMode(%d)", int(m))
}

// ParseColorMode accepts the names printed by String plus a few common
// spellings.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "truecolor", "true", "24bit", "rgb":
		return ColorTrue, nil
	case "ansi256", "256", "256color":
		return Color256, nil
	case "none", "no-color", "nocolor", "off":
		return ColorNone, nil
	}
	return ColorAuto, configErrorf("color_mode", "unknown color mode %q", s)
}

func (m ColorMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *ColorMode) UnmarshalText(b []byte) error {
	v, err := ParseColorMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Hints are the terminal capability signals used by ColorAuto. They are
// passed in explicitly so that rendering never reads process state.
type Hints struct {
	// NoColor is set when the user asked for no color at all (NO_COLOR).
	NoColor bool
	// ColorTerm is the COLORTERM value.
	ColorTerm string
	// Term is the TERM value.
	Term string
}

// HintsFromLookup collects Hints through an environment lookup function
// such as os.LookupEnv.
func HintsFromLookup(lookup func(string) (string, bool)) Hints {
	var h Hints
	_, h.NoColor = lookup("NO_COLOR")
	h.ColorTerm, _ = lookup("COLORTERM")
	h.Term, _ = lookup("TERM")
	return h
}

// DetectColorMode picks a color mode from the hints. A no-color request
// wins, then a truecolor COLORTERM, then any terminal type (256 colors).
// Without any terminal type, or with a dumb one, color is off.
func DetectColorMode(h Hints) ColorMode {
	if h.NoColor {
		return ColorNone
	}
	ct := strings.ToLower(h.ColorTerm)
	if strings.Contains(ct, "truecolor") || strings.Contains(ct, "24bit") {
		return ColorTrue
	}
	term := strings.ToLower(strings.TrimSpace(h.Term))
	if term != "" && term != "dumb" {
		return Color256
	}
	return ColorNone
}

// Resolve replaces ColorAuto with the detected mode.
func (m ColorMode) Resolve(h Hints) ColorMode {
	if m == ColorAuto {
		return DetectColorMode(h)
	}
	return m
}
