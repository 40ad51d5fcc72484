package entity

// ColorMask: бинарная маска: 255: передний план (кандидат в красный), 0: фон.
type ColorMask struct {
	Width  int
	Height int
	Pix    []uint8 // построчно, Width*Height байт
}

// NewColorMask создаёт пустую (полностью фоновую) маску.
func NewColorMask(width, height int) *ColorMask {
	return &ColorMask{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// At сообщает, является ли пиксель передним планом. Вне маски: фон.
func (m *ColorMask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return false
	}
	return m.Pix[y*m.Width+x] != 0
}

// Set помечает пиксель.
func (m *ColorMask) Set(x, y int, fg bool) {
	var v uint8
	if fg {
		v = 255
	}
	m.Pix[y*m.Width+x] = v
}

// Count возвращает число пикселей переднего плана.
func (m *ColorMask) Count() int {
	n := 0
	for _, v := range m.Pix {
		if v != 0 {
			n++
		}
	}
	return n
}
