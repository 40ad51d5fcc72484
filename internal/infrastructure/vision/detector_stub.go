//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"errors"
	"image"

	"stop-sign-detector/internal/domain/entity"
	"stop-sign-detector/internal/domain/port"
)

// ErrGoCVDisabled возвращается, если сборка без тега gocv.
var ErrGoCVDisabled = errors.New("gocv build tag is not enabled")

// GoCVDetector: заглушка детектора на OpenCV.
type GoCVDetector struct {
	params entity.DetectionParams
}

// NewGoCVDetector создаёт детектор-заглушку (без OpenCV).
func NewGoCVDetector(params entity.DetectionParams) *GoCVDetector {
	return &GoCVDetector{params: params}
}

// Detect возвращает ошибку, если сборка без тега gocv.
func (d *GoCVDetector) Detect(ctx context.Context, img image.Image) (*entity.FrameResult, error) {
	_ = ctx
	_ = img
	return nil, ErrGoCVDisabled
}

// GoCVAnnotator: заглушка рендерера на OpenCV.
type GoCVAnnotator struct{}

// NewGoCVAnnotator создаёт рендерер-заглушку.
func NewGoCVAnnotator() *GoCVAnnotator {
	return &GoCVAnnotator{}
}

// Annotate возвращает ошибку, если сборка без тега gocv.
func (a *GoCVAnnotator) Annotate(img image.Image, result *entity.FrameResult) (image.Image, error) {
	_ = img
	_ = result
	return nil, ErrGoCVDisabled
}

var (
	_ port.SignDetector = (*GoCVDetector)(nil)
	_ port.Renderer     = (*GoCVAnnotator)(nil)
)
