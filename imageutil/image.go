// Package imageutil provides the raster side of banner export: an RGBA
// canvas with cell-oriented helpers and PNG and animated GIF encoders.
package imageutil

import (
	"image"
	"image/color"
	"image/draw"
)

// RGB represents a color in the RGB color space with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// ToColor converts RGB to color.RGBA for use with standard library.
func (rgb RGB) ToColor() color.RGBA {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// RGBAImage wraps image.RGBA with convenience methods for pixel access.
type RGBAImage struct {
	*image.RGBA
}

// NewRGBAImage creates a new RGBAImage with the specified dimensions.
func NewRGBAImage(width, height int) *RGBAImage {
	return &RGBAImage{
		RGBA: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Width returns the image width.
func (img *RGBAImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *RGBAImage) Height() int {
	return img.Bounds().Dy()
}

// GetRGB returns the RGB value at (x, y).
func (img *RGBAImage) GetRGB(x, y int) RGB {
	c := img.RGBAAt(x, y)
	return RGB{R: c.R, G: c.G, B: c.B}
}

// FillRect paints the w x h rectangle with its top-left corner at (x, y).
// Parts outside the image are ignored.
func (img *RGBAImage) FillRect(x, y, w, h int, c RGB) {
	rect := image.Rect(x, y, x+w, y+h).Intersect(img.Bounds())
	draw.Draw(img.RGBA, rect, &image.Uniform{C: c.ToColor()}, image.Point{}, draw.Src)
}

// Colors returns the distinct colors of the image in first-seen order,
// stopping once more than limit have been found.
func (img *RGBAImage) Colors(limit int) []RGB {
	seen := make(map[RGB]bool)
	var out []RGB
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			c := img.GetRGB(x, y)
			if seen[c] {
				continue
			}
			seen[c] = true
			out = append(out, c)
			if len(out) > limit {
				return out
			}
		}
	}
	return out
}
