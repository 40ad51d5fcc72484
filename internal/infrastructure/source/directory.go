package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"stop-sign-detector/internal/domain/entity"
	"stop-sign-detector/internal/domain/port"
)

// ListImages возвращает пути поддерживаемых файлов в порядке каталога (без сортировки).
func ListImages(dir string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("open dir: %w", err)
	}
	defer f.Close()

	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !IsSupported(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}

// DirectorySource отдаёт изображения каталога по одному.
type DirectorySource struct {
	paths []string
	next  int
}

// NewDirectorySource перечисляет файлы каталога. Файлы читаются лениво в Next.
func NewDirectorySource(dir string) (*DirectorySource, error) {
	paths, err := ListImages(dir)
	if err != nil {
		return nil, err
	}
	return &DirectorySource{paths: paths}, nil
}

// Len: сколько файлов найдено.
func (s *DirectorySource) Len() int { return len(s.paths) }

// Next загружает следующий файл. Неудачная загрузка не прерывает поток.
func (s *DirectorySource) Next(ctx context.Context) (entity.Frame, error) {
	if err := ctx.Err(); err != nil {
		return entity.Frame{}, err
	}
	if s.next >= len(s.paths) {
		return entity.Frame{}, entity.ErrEndOfStream
	}
	path := s.paths[s.next]
	s.next++

	frame, err := LoadImage(path)
	frame.Index = s.next - 1
	return frame, err
}

// Close ничего не держит: файлы закрываются сразу после чтения.
func (s *DirectorySource) Close() error { return nil }

var _ port.FrameSource = (*DirectorySource)(nil)
