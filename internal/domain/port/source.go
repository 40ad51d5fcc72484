package port

import (
	"context"
	"image"

	"stop-sign-detector/internal/domain/entity"
)

// FrameSource выдаёт кадры до entity.ErrEndOfStream
type FrameSource interface {
	// Next возвращает следующий кадр. Ошибка *entity.LoadError относится
	// только к текущему элементу, следующий вызов продолжает поток.
	Next(ctx context.Context) (entity.Frame, error)

	// Close освобождает файлы и устройства
	Close() error
}

// ResultWriter сохраняет размеченные изображения
type ResultWriter interface {
	// Save пишет изображение, формат выбирается по расширению пути
	Save(path string, img image.Image) error
}

// Viewer показывает кадры пользователю
type Viewer interface {
	// Show выводит кадр; quit=true, если пользователь попросил выйти
	Show(title string, img image.Image, wait bool) (quit bool)

	// Close закрывает окно
	Close() error
}
