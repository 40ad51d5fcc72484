package entity

import (
	"errors"
	"fmt"
	"strings"
)

// HSV: цвет в 8-битной шкале OpenCV: H в [0,180], S и V в [0,255].
type HSV struct {
	H uint8 `json:"h"`
	S uint8 `json:"s"`
	V uint8 `json:"v"`
}

func (c HSV) String() string {
	return fmt.Sprintf("[%d %d %d]", c.H, c.S, c.V)
}

// HSVRange: замкнутый диапазон по всем трём каналам.
type HSVRange struct {
	Lower HSV `json:"lower"`
	Upper HSV `json:"upper"`
}

// Contains проверяет попадание цвета в диапазон (границы включены).
func (r HSVRange) Contains(c HSV) bool {
	return c.H >= r.Lower.H && c.H <= r.Upper.H &&
		c.S >= r.Lower.S && c.S <= r.Upper.S &&
		c.V >= r.Lower.V && c.V <= r.Upper.V
}

// DetectionParams: неизменяемые пороги конвейера.
// Передаётся по значению в конструкторы сегментатора и экстрактора.
type DetectionParams struct {
	RedLow         HSVRange `json:"red_low"`  // красный у нуля оси тона
	RedHigh        HSVRange `json:"red_high"` // красный у конца оси тона
	MinArea        float64  `json:"min_area"` // минимальная площадь контура, пиксели
	MinAspectRatio float64  `json:"min_aspect_ratio"`
	MaxAspectRatio float64  `json:"max_aspect_ratio"`
	KernelSize     int      `json:"kernel_size"` // сторона квадратного структурного элемента
}

// DefaultParams возвращает эталонные пороги детектора.
func DefaultParams() DetectionParams {
	return DetectionParams{
		RedLow: HSVRange{
			Lower: HSV{H: 0, S: 50, V: 50},
			Upper: HSV{H: 10, S: 255, V: 255},
		},
		RedHigh: HSVRange{
			Lower: HSV{H: 170, S: 50, V: 50},
			Upper: HSV{H: 180, S: 255, V: 255},
		},
		MinArea:        500,
		MinAspectRatio: 0.7,
		MaxAspectRatio: 1.3,
		KernelSize:     5,
	}
}

// IsRed: пиксель относится к красному, если попал хотя бы в один из диапазонов.
func (p DetectionParams) IsRed(c HSV) bool {
	return p.RedLow.Contains(c) || p.RedHigh.Contains(c)
}

// Accepts применяет фильтры площади и формы к кандидату.
func (p DetectionParams) Accepts(area float64, box BoundingBox) bool {
	if area < p.MinArea {
		return false
	}
	if box.Width <= 0 || box.Height <= 0 {
		return false
	}
	ratio := box.AspectRatio()
	return ratio >= p.MinAspectRatio && ratio <= p.MaxAspectRatio
}

// Validate проверяет согласованность порогов.
func (p DetectionParams) Validate() error {
	if p.KernelSize <= 0 {
		return fmt.Errorf("kernel size must be positive, got %d", p.KernelSize)
	}
	if p.MinArea < 0 {
		return fmt.Errorf("min area must not be negative, got %v", p.MinArea)
	}
	if p.MinAspectRatio <= 0 || p.MinAspectRatio > p.MaxAspectRatio {
		return errors.New("aspect ratio band is empty or inverted")
	}
	return nil
}

// Report возвращает человекочитаемое описание порогов.
func (p DetectionParams) Report() string {
	var b strings.Builder
	b.WriteString("=== Параметры обнаружения знака STOP ===\n")
	fmt.Fprintf(&b, "Красный диапазон 1 (HSV): %s - %s\n", p.RedLow.Lower, p.RedLow.Upper)
	fmt.Fprintf(&b, "Красный диапазон 2 (HSV): %s - %s\n", p.RedHigh.Lower, p.RedHigh.Upper)
	fmt.Fprintf(&b, "Минимальная площадь: %g пикселей\n", p.MinArea)
	fmt.Fprintf(&b, "Соотношение сторон: %g - %g (квадрат/восьмиугольник)\n", p.MinAspectRatio, p.MaxAspectRatio)
	fmt.Fprintf(&b, "Морфология: закрытие и открытие ядром %dx%d\n", p.KernelSize, p.KernelSize)
	return b.String()
}
