package port

import (
	"context"
	"image"

	"stop-sign-detector/internal/domain/entity"
)

// SignDetector интерфейс детектора знаков STOP
type SignDetector interface {
	// Detect прогоняет кадр через сегментацию и фильтрацию контуров
	Detect(ctx context.Context, img image.Image) (*entity.FrameResult, error)
}

// Renderer рисует находки на копии изображения
type Renderer interface {
	// Annotate возвращает новое изображение, исходное не изменяется
	Annotate(img image.Image, result *entity.FrameResult) (image.Image, error)
}
