package vision

import (
	"context"
	"image"

	"stop-sign-detector/internal/domain/entity"
	"stop-sign-detector/internal/domain/port"
)

// Detector: реализация port.SignDetector на чистом Go.
type Detector struct {
	segmenter *Segmenter
	extractor *Extractor
}

// NewDetector собирает сегментатор и экстрактор с общими порогами.
func NewDetector(params entity.DetectionParams) *Detector {
	return &Detector{
		segmenter: NewSegmenter(params),
		extractor: NewExtractor(params),
	}
}

// Detect прогоняет кадр через обе стадии. Маска живёт только в пределах вызова.
func (d *Detector) Detect(ctx context.Context, img image.Image) (*entity.FrameResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	mask, err := d.segmenter.Segment(img)
	if err != nil {
		return nil, err
	}
	return entity.NewFrameResult(mask.Width, mask.Height, d.extractor.Extract(mask)), nil
}

// Проверка реализации интерфейса
var _ port.SignDetector = (*Detector)(nil)
