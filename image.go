package ansibanner

import (
	"fmt"
	"io"
	"time"

	"github.com/wbrown/ansibanner/imageutil"
)

// ImageOptions control raster snapshots of grids.
type ImageOptions struct {
	// Scale multiplies the pixel size of every cell. Values below 1 mean 1.
	Scale int
	// Background fills empty cells and cells without a background color.
	// Nil means black.
	Background *RGB
	// Foreground colors visible cells that carry no color. Nil means white.
	Foreground *RGB
}

func (o ImageOptions) scale() int {
	return max(o.Scale, 1)
}

func (o ImageOptions) background() RGB {
	if o.Background == nil {
		return Black
	}
	return *o.Background
}

func (o ImageOptions) foreground() RGB {
	if o.Foreground == nil {
		return White
	}
	return *o.Foreground
}

// CellSize returns the pixel width and height of one cell.
func (o ImageOptions) CellSize() (w, h int) {
	s := o.scale()
	return GlyphWidth * s, GlyphHeight * CellAspect * s
}

func toImageRGB(c RGB) imageutil.RGB {
	return imageutil.RGB{R: c.R, G: c.G, B: c.B}
}

// RenderGrid draws g into an image, one glyph bitmap per cell. Characters
// without a bitmap are drawn as the '?' glyph.
func (fb *FontBitmaps) RenderGrid(g *Grid, opts ImageOptions) *imageutil.RGBAImage {
	cw, ch := opts.CellSize()
	img := imageutil.NewRGBAImage(g.Width()*cw, g.Height()*ch)
	img.FillRect(0, 0, img.Width(), img.Height(), toImageRGB(opts.background()))
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			fb.renderCell(img, *g.cell(x, y), x*cw, y*ch, opts)
		}
	}
	return img
}

// renderCell draws a single cell with its colors at the given position.
func (fb *FontBitmaps) renderCell(img *imageutil.RGBAImage, c Cell, startX, startY int, opts ImageOptions) {
	if !c.Visible {
		return
	}
	s := opts.scale()
	if c.HasBG {
		cw, ch := opts.CellSize()
		img.FillRect(startX, startY, cw, ch, toImageRGB(c.BG))
	}
	fg := opts.foreground()
	if c.HasFG {
		fg = c.FG
	}
	bitmap, ok := fb.GetGlyph(c.Rune)
	if !ok {
		bitmap, _ = fb.GetGlyph('?')
	}
	pw, ph := s, s*CellAspect
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			if bitmap.getBit(x, y) {
				img.FillRect(startX+x*pw, startY+y*ph, pw, ph, toImageRGB(fg))
			}
		}
	}
}

// WritePNG rasterises g and writes it as PNG.
func (fb *FontBitmaps) WritePNG(w io.Writer, g *Grid, opts ImageOptions) error {
	return imageutil.EncodePNG(w, fb.RenderGrid(g, opts))
}

// WriteGIF rasterises frames and writes them as a looping animated GIF.
// All frames must have the same dimensions.
func (fb *FontBitmaps) WriteGIF(w io.Writer, frames []*Grid, delay time.Duration, opts ImageOptions) error {
	images := make([]*imageutil.RGBAImage, len(frames))
	for i, f := range frames {
		if i > 0 && (f.Width() != frames[0].Width() || f.Height() != frames[0].Height()) {
			return fmt.Errorf("frame %d is %dx%d, want %dx%d", i, f.Width(), f.Height(), frames[0].Width(), frames[0].Height())
		}
		images[i] = fb.RenderGrid(f, opts)
	}
	return imageutil.EncodeGIF(w, images, delay)
}
