package vision

import (
	"math"

	"stop-sign-detector/internal/domain/entity"
)

// Contour: замкнутая внешняя граница связной области маски.
type Contour []entity.Point

// neighbours: 8 соседей против часовой стрелки на экране (ось Y вниз),
// начиная с востока.
var neighbours = [8]entity.Point{
	{X: 1, Y: 0},
	{X: 1, Y: -1},
	{X: 0, Y: -1},
	{X: -1, Y: -1},
	{X: -1, Y: 0},
	{X: -1, Y: 1},
	{X: 0, Y: 1},
	{X: 1, Y: 1},
}

const dirWest = 4

// FindExternalContours возвращает внешние контуры 8-связных областей маски.
// Области, лежащие внутри дыр других областей, не возвращаются.
// Порядок: по первому пикселю каждой области при построчном обходе.
func FindExternalContours(m *entity.ColorMask) []Contour {
	w, h := m.Width, m.Height
	if w == 0 || h == 0 {
		return nil
	}

	labels, firsts := labelComponents(m)
	outside := outerBackground(m)

	external := make([]bool, len(firsts)+1)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			l := labels[idx]
			if l == 0 || external[l] {
				continue
			}
			if x == 0 || y == 0 || x == w-1 || y == h-1 ||
				outside[idx-1] || outside[idx+1] || outside[idx-w] || outside[idx+w] {
				external[l] = true
			}
		}
	}

	contours := make([]Contour, 0, len(firsts))
	for i, p := range firsts {
		if !external[i+1] {
			continue
		}
		contours = append(contours, compress(traceBorder(m, p)))
	}
	return contours
}

// labelComponents размечает 8-связные области переднего плана.
// Метки начинаются с 1; firsts[i]: первый пиксель области с меткой i+1.
func labelComponents(m *entity.ColorMask) ([]int32, []entity.Point) {
	w, h := m.Width, m.Height
	labels := make([]int32, w*h)
	var firsts []entity.Point
	var stack []int
	next := int32(0)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if m.Pix[idx] == 0 || labels[idx] != 0 {
				continue
			}
			next++
			labels[idx] = next
			firsts = append(firsts, entity.Point{X: x, Y: y})
			stack = append(stack[:0], idx)
			for len(stack) > 0 {
				cur := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				cx, cy := cur%w, cur/w
				for _, d := range neighbours {
					nx, ny := cx+d.X, cy+d.Y
					if nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					n := ny*w + nx
					if m.Pix[n] != 0 && labels[n] == 0 {
						labels[n] = next
						stack = append(stack, n)
					}
				}
			}
		}
	}
	return labels, firsts
}

// outerBackground отмечает фон, 4-связно достижимый из-за пределов кадра.
// Фон внутри дыр остаётся неотмеченным.
func outerBackground(m *entity.ColorMask) []bool {
	w, h := m.Width, m.Height
	outside := make([]bool, w*h)
	var stack []int

	seed := func(x, y int) {
		idx := y*w + x
		if m.Pix[idx] == 0 && !outside[idx] {
			outside[idx] = true
			stack = append(stack, idx)
		}
	}
	for x := 0; x < w; x++ {
		seed(x, 0)
		seed(x, h-1)
	}
	for y := 0; y < h; y++ {
		seed(0, y)
		seed(w-1, y)
	}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cx, cy := cur%w, cur/w
		for _, d := range [4]entity.Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}} {
			nx, ny := cx+d.X, cy+d.Y
			if nx < 0 || ny < 0 || nx >= w || ny >= h {
				continue
			}
			seed(nx, ny)
		}
	}
	return outside
}

// traceBorder обходит внешнюю границу, начиная с первого (верхнего левого)
// пикселя области. Левый сосед стартового пикселя всегда фон.
func traceBorder(m *entity.ColorMask, start entity.Point) Contour {
	at := func(p entity.Point, d int) entity.Point {
		return entity.Point{X: p.X + neighbours[d].X, Y: p.Y + neighbours[d].Y}
	}

	// Ищем первого соседа по часовой стрелке, начиная с запада.
	firstDir := -1
	for k := 0; k < 8; k++ {
		d := (dirWest - k + 8) % 8
		if m.At(at(start, d).X, at(start, d).Y) {
			firstDir = d
			break
		}
	}
	if firstDir < 0 {
		return Contour{start}
	}

	first := at(start, firstDir)
	contour := Contour{start}
	cur := start
	back := firstDir // направление от cur к предыдущему пикселю обхода

	for {
		var next entity.Point
		nextDir := back
		for k := 1; k <= 8; k++ {
			d := (back + k) % 8
			p := at(cur, d)
			if m.At(p.X, p.Y) {
				next, nextDir = p, d
				break
			}
		}
		if next == start && cur == first {
			break
		}
		contour = append(contour, next)
		back = (nextDir + 4) % 8
		cur = next
	}
	return contour
}

// compress оставляет только точки смены направления.
func compress(c Contour) Contour {
	n := len(c)
	if n < 3 {
		return c
	}
	out := make(Contour, 0, n)
	for i := 0; i < n; i++ {
		prev, cur, next := c[(i+n-1)%n], c[i], c[(i+1)%n]
		in := entity.Point{X: cur.X - prev.X, Y: cur.Y - prev.Y}
		outDir := entity.Point{X: next.X - cur.X, Y: next.Y - cur.Y}
		if in != outDir {
			out = append(out, cur)
		}
	}
	if len(out) == 0 {
		return c
	}
	return out
}

// Area: модуль площади многоугольника по формуле шнурования.
func (c Contour) Area() float64 {
	n := len(c)
	if n < 3 {
		return 0
	}
	var sum int
	for i := 0; i < n; i++ {
		a, b := c[i], c[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return math.Abs(float64(sum)) / 2
}

// BoundingBox: минимальный осевой прямоугольник; границы включены.
func (c Contour) BoundingBox() entity.BoundingBox {
	if len(c) == 0 {
		return entity.BoundingBox{}
	}
	minX, minY := c[0].X, c[0].Y
	maxX, maxY := minX, minY
	for _, p := range c[1:] {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	return entity.BoundingBox{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX + 1,
		Height: maxY - minY + 1,
	}
}
