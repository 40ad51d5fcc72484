package vision

import "stop-sign-detector/internal/domain/entity"

// Extractor превращает маску в список кандидатов.
type Extractor struct {
	params entity.DetectionParams
}

// NewExtractor создаёт экстрактор с заданными порогами.
func NewExtractor(params entity.DetectionParams) *Extractor {
	return &Extractor{params: params}
}

// Extract находит внешние контуры и оставляет области с достаточной площадью
// и почти квадратным описывающим прямоугольником.
func (e *Extractor) Extract(mask *entity.ColorMask) []entity.Detection {
	if mask == nil {
		return []entity.Detection{}
	}
	contours := FindExternalContours(mask)
	detections := make([]entity.Detection, 0, len(contours))
	for _, c := range contours {
		area := c.Area()
		box := c.BoundingBox()
		if !e.params.Accepts(area, box) {
			continue
		}
		detections = append(detections, entity.NewDetection(box, area))
	}
	return detections
}
