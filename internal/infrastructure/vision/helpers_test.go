package vision

import (
	"image"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 180, A: 255}
	black = color.RGBA{A: 255}
)

// createTestImage creates a solid color test image
func createTestImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fillRect(img, img.Bounds(), c)
	return img
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.Color) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}

// squareAt returns a side x side rectangle centered at (cx, cy).
func squareAt(cx, cy, side int) image.Rectangle {
	return image.Rect(cx-side/2, cy-side/2, cx-side/2+side, cy-side/2+side)
}

// hueColor returns a color whose OpenCV 8-bit hue equals h.
func hueColor(h int) color.Color {
	c := colorful.Hsv(float64(h)*2, 0.8, 0.8)
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
