package ansibanner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePalette(t *testing.T) {
	t.Parallel()

	p, err := ParsePalette("#000000", "#FF0000")
	require.NoError(t, err)
	assert.Equal(t, Palette{Black, {255, 0, 0}}, p)
	assert.Equal(t, []string{"#000000", "#FF0000"}, p.Hex())

	_, err = ParsePalette()
	var ce *ConfigError
	assert.True(t, errors.As(err, &ce))

	_, err = ParsePalette("#000000", "oops")
	var cpe *ColorParseError
	assert.True(t, errors.As(err, &cpe))
	assert.Contains(t, err.Error(), "entry 1")

	_, err = NewPalette()
	assert.True(t, errors.As(err, &ce))
}

func TestAnsi256Index(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   RGB
		want uint8
	}{
		{"black", Black, 16},
		{"near black", RGB{7, 7, 7}, 16},
		{"white", White, 231},
		{"light gray snaps to white", RGB{248, 248, 248}, 231},
		{"first ramp step", RGB{8, 8, 8}, 232},
		{"mid gray", RGB{128, 128, 128}, 244},
		{"last ramp step", RGB{247, 247, 247}, 255},
		{"red", RGB{255, 0, 0}, 196},
		{"green", RGB{0, 255, 0}, 46},
		{"blue", RGB{0, 0, 255}, 21},
		{"yellow", RGB{255, 255, 0}, 226},
		{"cyan", RGB{0, 229, 255}, 16 + 6*4 + 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Ansi256Index(tt.in))
		})
	}
}

func TestAnsi256Palette(t *testing.T) {
	t.Parallel()

	pal := Ansi256Palette()
	assert.Equal(t, Black, pal[16])
	assert.Equal(t, White, pal[231])
	assert.Equal(t, RGB{255, 0, 0}, pal[196])
	assert.Equal(t, RGB{8, 8, 8}, pal[232])
	assert.Equal(t, RGB{238, 238, 238}, pal[255])

	// Every cube color maps back onto its own index.
	for i := 16; i < 232; i++ {
		c := pal[i]
		if c.R == c.G && c.G == c.B {
			continue
		}
		assert.Equal(t, uint8(i), Ansi256Index(c), "index %d %s", i, c)
	}
	assert.Equal(t, RGB{255, 0, 0}, Quantize256(RGB{255, 10, 10}))
}
