package ansibanner

import (
	"fmt"
	"image"
	"math/bits"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	// GlyphWidth and GlyphHeight define the bitmap size of one character
	GlyphWidth  = 8
	GlyphHeight = 8

	// CellAspect is how many image rows each bitmap row covers, so that a
	// cell keeps the roughly 1:2 shape of a terminal character.
	CellAspect = 2
)

// GlyphBitmap represents an 8x8 character as a 64-bit integer
// Each bit represents a pixel: 1 = foreground, 0 = background
type GlyphBitmap uint64

// FontBitmaps holds pre-rendered character bitmaps for a font
type FontBitmaps struct {
	glyphs map[rune]GlyphBitmap
	name   string
}

// getBit checks if a specific bit is set in the bitmap
func (g GlyphBitmap) getBit(x, y int) bool {
	if x < 0 || x >= GlyphWidth || y < 0 || y >= GlyphHeight {
		return false
	}
	return g&(1<<(y*GlyphWidth+x)) != 0
}

// setBit sets a specific bit in the bitmap
func (g *GlyphBitmap) setBit(x, y int, value bool) {
	if x < 0 || x >= GlyphWidth || y < 0 || y >= GlyphHeight {
		return
	}
	pos := y*GlyphWidth + x
	if value {
		*g |= 1 << pos
	} else {
		*g &= ^(1 << pos)
	}
}

// Coverage is the fraction of lit pixels.
func (g GlyphBitmap) Coverage() float64 {
	return float64(bits.OnesCount64(uint64(g))) / (GlyphWidth * GlyphHeight)
}

// extraRunes are drawn from the TrueType font when it has them.
var extraRunes = []rune{'·', '•', '°', '¤', '×'}

var defaultBitmaps = sync.OnceValues(func() (*FontBitmaps, error) {
	return LoadFontBitmaps("Go Mono", gomono.TTF)
})

// DefaultFontBitmaps returns bitmaps rendered from the Go Mono font.
func DefaultFontBitmaps() (*FontBitmaps, error) {
	return defaultBitmaps()
}

// LoadFontBitmaps pre-renders printable ASCII from TrueType font data.
// Block elements, shades and box drawing characters are drawn
// geometrically so that they tile seamlessly between cells.
func LoadFontBitmaps(name string, ttf []byte) (*FontBitmaps, error) {
	ttfFont, err := freetype.ParseFont(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", name, err)
	}
	fb := &FontBitmaps{
		glyphs: make(map[rune]GlyphBitmap),
		name:   name,
	}
	for r := rune(32); r <= rune(126); r++ {
		fb.glyphs[r] = renderGlyphToBitmap(ttfFont, r)
	}
	for _, r := range extraRunes {
		if ttfFont.Index(r) != 0 {
			fb.glyphs[r] = renderGlyphToBitmap(ttfFont, r)
		}
	}
	for r, bm := range geometricGlyphs() {
		fb.glyphs[r] = bm
	}
	return fb, nil
}

// Name returns the font name the bitmaps were rendered from.
func (fb *FontBitmaps) Name() string { return fb.name }

// renderGlyphToBitmap renders a single glyph to an 8x8 bitmap. Coverage is
// read from an alpha image and thresholded at 25% so that thin strokes
// survive the small size; the baseline comes from the face metrics so
// descenders are not clipped.
func renderGlyphToBitmap(ttfFont *truetype.Font, r rune) GlyphBitmap {
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    float64(GlyphHeight),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	img := image.NewAlpha(image.Rect(0, 0, GlyphWidth, GlyphHeight))

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttfFont)
	ctx.SetFontSize(float64(GlyphHeight))
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	metrics := face.Metrics()
	ascent := metrics.Ascent >> 6
	descent := metrics.Descent >> 6
	baselineY := (GlyphHeight + int(ascent) - int(descent)) / 2

	if _, err := ctx.DrawString(string(r), freetype.Pt(0, baselineY)); err != nil {
		return 0
	}

	var bitmap GlyphBitmap
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			if img.AlphaAt(x, y).A > 64 {
				bitmap.setBit(x, y, true)
			}
		}
	}
	return bitmap
}

// boxArms lists the directions a box drawing character extends in.
type boxArms struct {
	up, down, left, right bool
}

var (
	singleLine = []int{3}
	heavyLine  = []int{3, 4}
	doubleLine = []int{2, 5}
)

// drawArms draws straight lines from the cell center towards each arm,
// one per entry of lines.
func drawArms(a boxArms, lines []int) GlyphBitmap {
	var g GlyphBitmap
	lo, hi := lines[0], lines[len(lines)-1]
	for _, l := range lines {
		for i := 0; i < GlyphWidth; i++ {
			if (a.left && i <= hi) || (a.right && i >= lo) {
				g.setBit(i, l, true)
			}
			if (a.up && i <= hi) || (a.down && i >= lo) {
				g.setBit(l, i, true)
			}
		}
	}
	return g
}

// doubleCorner draws a double-line corner opening to the right or left
// and downwards or upwards.
func doubleCorner(right, down bool) GlyphBitmap {
	var g GlyphBitmap
	outerY, innerY := 5, 2
	if down {
		outerY, innerY = 2, 5
	}
	outerX, innerX := 5, 2
	if right {
		outerX, innerX = 2, 5
	}
	line := func(x, y int, horizontal bool) {
		for i := 0; i < GlyphWidth; i++ {
			switch {
			case horizontal && (right && i >= x || !right && i <= x):
				g.setBit(i, y, true)
			case !horizontal && (down && i >= y || !down && i <= y):
				g.setBit(x, i, true)
			}
		}
	}
	line(outerX, outerY, true)
	line(outerX, outerY, false)
	line(innerX, innerY, true)
	line(innerX, innerY, false)
	return g
}

// geometricGlyphs returns the bitmaps of block elements, shades and the
// box drawing characters used by frames.
func geometricGlyphs() map[rune]GlyphBitmap {
	m := make(map[rune]GlyphBitmap)
	pattern := func(on func(x, y int) bool) GlyphBitmap {
		var g GlyphBitmap
		for y := 0; y < GlyphHeight; y++ {
			for x := 0; x < GlyphWidth; x++ {
				g.setBit(x, y, on(x, y))
			}
		}
		return g
	}
	m['█'] = pattern(func(_, _ int) bool { return true })
	m['▀'] = pattern(func(_, y int) bool { return y < GlyphHeight/2 })
	m['▄'] = pattern(func(_, y int) bool { return y >= GlyphHeight/2 })
	m['▌'] = pattern(func(x, _ int) bool { return x < GlyphWidth/2 })
	m['▐'] = pattern(func(x, _ int) bool { return x >= GlyphWidth/2 })
	m['░'] = pattern(func(x, y int) bool { return x%2 == 0 && y%2 == 0 })
	m['▒'] = pattern(func(x, y int) bool { return (x+y)%2 == 0 })
	m['▓'] = pattern(func(x, y int) bool { return x%2 != 0 || y%2 != 0 })

	horizontal := boxArms{left: true, right: true}
	vertical := boxArms{up: true, down: true}
	downRight := boxArms{down: true, right: true}
	downLeft := boxArms{down: true, left: true}
	upRight := boxArms{up: true, right: true}
	upLeft := boxArms{up: true, left: true}
	for _, set := range []struct {
		runes string
		lines []int
	}{
		{"─│┌┐└┘", singleLine},
		{"──╭╮╰╯", singleLine},
		{"━┃┏┓┗┛", heavyLine},
	} {
		rs := []rune(set.runes)
		m[rs[0]] = drawArms(horizontal, set.lines)
		m[rs[1]] = drawArms(vertical, set.lines)
		m[rs[2]] = drawArms(downRight, set.lines)
		m[rs[3]] = drawArms(downLeft, set.lines)
		m[rs[4]] = drawArms(upRight, set.lines)
		m[rs[5]] = drawArms(upLeft, set.lines)
	}
	m['═'] = drawArms(horizontal, doubleLine)
	m['║'] = drawArms(vertical, doubleLine)
	m['╔'] = doubleCorner(true, true)
	m['╗'] = doubleCorner(false, true)
	m['╚'] = doubleCorner(true, false)
	m['╝'] = doubleCorner(false, false)
	return m
}

// GetGlyph returns the bitmap for a character.
func (fb *FontBitmaps) GetGlyph(r rune) (GlyphBitmap, bool) {
	bitmap, exists := fb.glyphs[r]
	return bitmap, exists
}
