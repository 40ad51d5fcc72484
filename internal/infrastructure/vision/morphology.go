package vision

import "stop-sign-detector/internal/domain/entity"

// Прямоугольный структурный элемент k x k раскладывается на два прохода:
// по строкам и по столбцам. Пиксели за границей кадра не участвуют,
// как и в морфологии OpenCV с рамкой по умолчанию.

func dilateMask(m *entity.ColorMask, k int) *entity.ColorMask {
	return morph(m, k, true)
}

func erodeMask(m *entity.ColorMask, k int) *entity.ColorMask {
	return morph(m, k, false)
}

// closeMask: дилатация, затем эрозия.
func closeMask(m *entity.ColorMask, k int) *entity.ColorMask {
	return erodeMask(dilateMask(m, k), k)
}

// openMask: эрозия, затем дилатация.
func openMask(m *entity.ColorMask, k int) *entity.ColorMask {
	return dilateMask(erodeMask(m, k), k)
}

func morph(m *entity.ColorMask, k int, dilate bool) *entity.ColorMask {
	w, h := m.Width, m.Height
	if k <= 1 {
		out := entity.NewColorMask(w, h)
		copy(out.Pix, m.Pix)
		return out
	}
	anchor := k / 2
	lo, hi := -anchor, k-1-anchor

	tmp := entity.NewColorMask(w, h)
	for y := 0; y < h; y++ {
		row := m.Pix[y*w : (y+1)*w]
		for x := 0; x < w; x++ {
			acc := start(dilate)
			for i := lo; i <= hi; i++ {
				nx := x + i
				if nx < 0 || nx >= w {
					continue
				}
				acc = pick(acc, row[nx], dilate)
			}
			tmp.Pix[y*w+x] = acc
		}
	}

	out := entity.NewColorMask(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			acc := start(dilate)
			for i := lo; i <= hi; i++ {
				ny := y + i
				if ny < 0 || ny >= h {
					continue
				}
				acc = pick(acc, tmp.Pix[ny*w+x], dilate)
			}
			out.Pix[y*w+x] = acc
		}
	}
	return out
}

func start(dilate bool) uint8 {
	if dilate {
		return 0
	}
	return 255
}

// pick: максимум для дилатации, минимум для эрозии.
func pick(acc, v uint8, dilate bool) uint8 {
	if dilate {
		if v > acc {
			return v
		}
		return acc
	}
	if v < acc {
		return v
	}
	return acc
}
