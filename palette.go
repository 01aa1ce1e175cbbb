package ansibanner

import (
	"fmt"
	"sync"
)

// Palette is an ordered, non-empty list of color stops.
type Palette []RGB

// NewPalette builds a Palette from the given colors. At least one color is
// required; an empty palette is a configuration error.
func NewPalette(colors ...RGB) (Palette, error) {
	if len(colors) == 0 {
		return nil, configErrorf("palette", "at least one color is required")
	}
	p := make(Palette, len(colors))
	copy(p, colors)
	return p, nil
}

// ParsePalette parses a list of `#RRGGBB` strings into a Palette. The
// first malformed entry aborts the parse with its *ColorParseError
// wrapped with the entry's position.
func ParsePalette(hexes ...string) (Palette, error) {
	if len(hexes) == 0 {
		return nil, configErrorf("palette", "at least one color is required")
	}
	p := make(Palette, 0, len(hexes))
	for i, h := range hexes {
		c, err := ParseHex(h)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		p = append(p, c)
	}
	return p, nil
}

// Hex returns the palette as `#RRGGBB` strings.
func (p Palette) Hex() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Hex()
	}
	return out
}

// ansi256Levels are the channel intensities of the 6x6x6 xterm color cube.
var ansi256Levels = [6]uint8{0, 95, 135, 175, 215, 255}

var (
	ansi256Once  sync.Once
	ansi256Table [256]RGB
)

// Ansi256Palette returns the RGB value of every xterm 256-color index:
// the 16 system colors, the 6x6x6 cube at 16..231 and the 24 step
// grayscale ramp at 232..255.
func Ansi256Palette() [256]RGB {
	ansi256Once.Do(func() {
		system := [16]uint32{
			0x000000, 0x800000, 0x008000, 0x808000,
			0x000080, 0x800080, 0x008080, 0xc0c0c0,
			0x808080, 0xff0000, 0x00ff00, 0xffff00,
			0x0000ff, 0xff00ff, 0x00ffff, 0xffffff,
		}
		for i, v := range system {
			ansi256Table[i] = rgbFromUint32(v)
		}
		for i := 0; i < 216; i++ {
			ansi256Table[16+i] = RGB{
				R: ansi256Levels[i/36],
				G: ansi256Levels[(i/6)%6],
				B: ansi256Levels[i%6],
			}
		}
		for i := 0; i < 24; i++ {
			v := uint8(8 + 10*i)
			ansi256Table[232+i] = RGB{v, v, v}
		}
	})
	return ansi256Table
}

// Ansi256Index maps a color onto the 256-color palette with a fixed
// quantisation. Pure grays go to the grayscale ramp (with black and white
// snapping to the cube corners); every other color is scaled onto the
// 6x6x6 cube channel by channel.
func Ansi256Index(c RGB) uint8 {
	if c.R == c.G && c.G == c.B {
		switch {
		case c.R < 8:
			return 16
		case c.R >= 248:
			return 231
		default:
			return uint8(232 + (int(c.R)-8)/10)
		}
	}
	rc := int(c.R) * 5 / 255
	gc := int(c.G) * 5 / 255
	bc := int(c.B) * 5 / 255
	return uint8(16 + 36*rc + 6*gc + bc)
}

// Quantize256 returns the color the terminal will actually show when c is
// emitted in 256-color mode.
func Quantize256(c RGB) RGB {
	return Ansi256Palette()[Ansi256Index(c)]
}
