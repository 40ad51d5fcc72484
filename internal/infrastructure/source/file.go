package source

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"stop-sign-detector/internal/domain/entity"
	"stop-sign-detector/internal/domain/port"
)

// SupportedExtensions: расширения, которые понимает пакетная обработка.
var SupportedExtensions = []string{".jpg", ".jpeg", ".png", ".bmp"}

// IsSupported проверяет расширение без учёта регистра.
func IsSupported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range SupportedExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// LoadImage читает и декодирует файл. Любая ошибка оборачивается в *entity.LoadError.
func LoadImage(path string) (entity.Frame, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return entity.Frame{Name: filepath.Base(path)}, &entity.LoadError{Path: path, Err: err}
	}
	return entity.Frame{Name: filepath.Base(path), Image: img}, nil
}

// FileSource отдаёт один файл и завершает поток.
type FileSource struct {
	path string
	done bool
}

// NewFileSource создаёт источник из одного файла.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Next возвращает кадр при первом вызове и ErrEndOfStream далее.
func (s *FileSource) Next(ctx context.Context) (entity.Frame, error) {
	if err := ctx.Err(); err != nil {
		return entity.Frame{}, err
	}
	if s.done {
		return entity.Frame{}, entity.ErrEndOfStream
	}
	s.done = true
	return LoadImage(s.path)
}

// Close ничего не держит.
func (s *FileSource) Close() error { return nil }

var _ port.FrameSource = (*FileSource)(nil)
