package entity

import (
	"image"
	"sort"
)

// Frame: один кадр от источника изображений.
type Frame struct {
	Name  string      // имя файла или метка кадра ("camera#12")
	Index int         // порядковый номер в потоке
	Image image.Image // исходное изображение, не изменяется конвейером
}

// FrameResult хранит итог обработки одного кадра.
type FrameResult struct {
	ImageWidth    int         `json:"image_width"`    // ширина изображения
	ImageHeight   int         `json:"image_height"`   // высота изображения
	Detections    []Detection `json:"detections"`     // найденные кандидаты
	HasDetections bool        `json:"has_detections"` // флаг наличия находок
}

// NewFrameResult собирает результат и выставляет флаг наличия находок.
func NewFrameResult(width, height int, detections []Detection) *FrameResult {
	if detections == nil {
		detections = []Detection{}
	}
	return &FrameResult{
		ImageWidth:    width,
		ImageHeight:   height,
		Detections:    detections,
		HasDetections: len(detections) > 0,
	}
}

// SortDetections упорядочивает находки по (Y, X, Area).
// Порядок обхода контуров не определён, поэтому для сравнения нужен канонический ключ.
func SortDetections(ds []Detection) {
	sort.SliceStable(ds, func(i, j int) bool {
		a, b := ds[i], ds[j]
		if a.Box.Y != b.Box.Y {
			return a.Box.Y < b.Box.Y
		}
		if a.Box.X != b.Box.X {
			return a.Box.X < b.Box.X
		}
		return a.Area < b.Area
	})
}
