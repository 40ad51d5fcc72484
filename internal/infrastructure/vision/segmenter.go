package vision

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"

	"stop-sign-detector/internal/domain/entity"
)

// Segmenter строит маску красных пикселей.
type Segmenter struct {
	params entity.DetectionParams
}

// NewSegmenter создаёт сегментатор с заданными порогами.
func NewSegmenter(params entity.DetectionParams) *Segmenter {
	return &Segmenter{params: params}
}

// Segment классифицирует каждый пиксель и возвращает очищенную маску того же размера.
func (s *Segmenter) Segment(img image.Image) (*entity.ColorMask, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, entity.ErrEmptyImage
	}

	src := imaging.Clone(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	mask := entity.NewColorMask(w, h)

	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w*4]
		for x := 0; x < w; x++ {
			px := row[x*4 : x*4+3]
			if s.params.IsRed(ToHSV(px[0], px[1], px[2])) {
				mask.Pix[y*w+x] = 255
			}
		}
	}

	// Закрытие заполняет щели внутри пятен, открытие убирает одиночные точки.
	mask = closeMask(mask, s.params.KernelSize)
	mask = openMask(mask, s.params.KernelSize)
	return mask, nil
}

// ToHSV переводит 8-битный RGB в HSV по соглашению OpenCV для 8-битных изображений.
func ToHSV(r, g, b uint8) entity.HSV {
	c := colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}
	h, sat, val := c.Hsv()
	return entity.HSV{
		H: uint8(math.Round(h / 2)),
		S: uint8(math.Round(sat * 255)),
		V: uint8(math.Round(val * 255)),
	}
}
