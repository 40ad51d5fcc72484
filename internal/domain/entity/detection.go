package entity

import "image"

// Point: целочисленная точка в координатах изображения (начало: левый верхний угол).
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// BoundingBox: осевой прямоугольник, охватывающий найденную область.
type BoundingBox struct {
	X      int `json:"x"`      // координата X левого верхнего угла
	Y      int `json:"y"`      // координата Y левого верхнего угла
	Width  int `json:"width"`  // ширина в пикселях
	Height int `json:"height"` // высота в пикселях
}

// Center возвращает центр прямоугольника с целочисленным (floor) делением.
func (b BoundingBox) Center() (x, y int) {
	return b.X + b.Width/2, b.Y + b.Height/2
}

// AspectRatio возвращает отношение ширины к высоте; для нулевой высоты: 0.
func (b BoundingBox) AspectRatio() float64 {
	if b.Height == 0 {
		return 0
	}
	return float64(b.Width) / float64(b.Height)
}

// Rect переводит прямоугольник в image.Rectangle.
func (b BoundingBox) Rect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.Width, b.Y+b.Height)
}

// Detection: кандидат в знак STOP на одном кадре.
type Detection struct {
	Box    BoundingBox `json:"bbox"`
	Center Point       `json:"center"`
	Area   float64     `json:"area"` // площадь контура в пикселях
}

// NewDetection создаёт запись о находке и считает центр по прямоугольнику.
func NewDetection(box BoundingBox, area float64) Detection {
	cx, cy := box.Center()
	return Detection{
		Box:    box,
		Center: Point{X: cx, Y: cy},
		Area:   area,
	}
}
