package imageutil

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"time"
)

// MaxGIFColors is the palette size limit of the GIF format.
const MaxGIFColors = 256

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img *RGBAImage) error {
	if err := png.Encode(w, img.RGBA); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// Palettize builds one shared palette for frames. When the frames use at
// most MaxGIFColors distinct colors the palette is exact; otherwise the
// web-safe palette is returned and exact reports false.
func Palettize(frames []*RGBAImage) (pal color.Palette, exact bool) {
	seen := make(map[RGB]bool)
	for _, f := range frames {
		for _, c := range f.Colors(MaxGIFColors) {
			if seen[c] {
				continue
			}
			seen[c] = true
			pal = append(pal, c.ToColor())
			if len(pal) > MaxGIFColors {
				return palette.WebSafe, false
			}
		}
	}
	if len(pal) == 0 {
		pal = append(pal, color.RGBA{A: 255})
	}
	return pal, true
}

// EncodeGIF writes frames as an animated GIF that loops forever, showing
// each frame for delay. Frames with too many colors are reduced with
// Floyd-Steinberg error diffusion.
func EncodeGIF(w io.Writer, frames []*RGBAImage, delay time.Duration) error {
	if len(frames) == 0 {
		return errors.New("no frames to encode")
	}
	pal, exact := Palettize(frames)
	var drawer draw.Drawer = draw.Src
	if !exact {
		drawer = draw.FloydSteinberg
	}
	centis := max(int(delay/(10*time.Millisecond)), 1)

	anim := &gif.GIF{LoopCount: 0}
	bounds := frames[0].Bounds()
	for i, f := range frames {
		if f.Bounds() != bounds {
			return fmt.Errorf("frame %d is %v, want %v", i, f.Bounds(), bounds)
		}
		p := image.NewPaletted(bounds, pal)
		drawer.Draw(p, bounds, f.RGBA, bounds.Min)
		anim.Image = append(anim.Image, p)
		anim.Delay = append(anim.Delay, centis)
	}
	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("failed to encode gif: %w", err)
	}
	return nil
}
