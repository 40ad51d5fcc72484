package vision

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"stop-sign-detector/internal/domain/entity"
	"stop-sign-detector/internal/domain/port"
)

var (
	boxColor    = color.NRGBA{R: 255, A: 255}
	centerColor = color.NRGBA{G: 255, A: 255}
	labelColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

const (
	boxThickness = 3
	centerRadius = 5
	labelOffset  = 10
)

// Annotator рисует находки на копии кадра.
type Annotator struct{}

// NewAnnotator создаёт рендерер на чистом Go.
func NewAnnotator() *Annotator {
	return &Annotator{}
}

// Annotate рисует рамку, точку центра и подпись с координатами для каждой находки.
func (a *Annotator) Annotate(img image.Image, result *entity.FrameResult) (image.Image, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, entity.ErrEmptyImage
	}

	out := imaging.Clone(img)
	if result == nil {
		return out, nil
	}

	for _, d := range result.Detections {
		drawBox(out, d.Box, boxColor, boxThickness)
		fillCircle(out, d.Center, centerRadius, centerColor)
		drawText(out, d.Box.X, d.Box.Y-labelOffset, CenterLabel(d), labelColor)
	}
	return out, nil
}

// CenterLabel: подпись к находке.
func CenterLabel(d entity.Detection) string {
	return fmt.Sprintf("Center: (%d, %d)", d.Center.X, d.Center.Y)
}

// drawBox рисует рамку от (x, y) до (x+w, y+h), линия центрирована по краю.
func drawBox(dst *image.NRGBA, b entity.BoundingBox, c color.NRGBA, thickness int) {
	x0, y0, x1, y1 := b.X, b.Y, b.X+b.Width, b.Y+b.Height
	lo := -(thickness / 2)
	hi := thickness - 1 + lo
	for t := lo; t <= hi; t++ {
		hline(dst, x0+lo, x1+hi, y0+t, c)
		hline(dst, x0+lo, x1+hi, y1+t, c)
		vline(dst, x0+t, y0+lo, y1+hi, c)
		vline(dst, x1+t, y0+lo, y1+hi, c)
	}
}

func hline(dst *image.NRGBA, x0, x1, y int, c color.NRGBA) {
	for x := x0; x <= x1; x++ {
		setPixel(dst, x, y, c)
	}
}

func vline(dst *image.NRGBA, x, y0, y1 int, c color.NRGBA) {
	for y := y0; y <= y1; y++ {
		setPixel(dst, x, y, c)
	}
}

func fillCircle(dst *image.NRGBA, center entity.Point, r int, c color.NRGBA) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				setPixel(dst, center.X+dx, center.Y+dy, c)
			}
		}
	}
}

func setPixel(dst *image.NRGBA, x, y int, c color.NRGBA) {
	if !(image.Point{X: x, Y: y}.In(dst.Rect)) {
		return
	}
	dst.SetNRGBA(x, y, c)
}

// drawText пишет подпись базовым шрифтом; y: базовая линия.
func drawText(dst draw.Image, x, y int, text string, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// Проверка реализации интерфейса
var _ port.Renderer = (*Annotator)(nil)
