package storage

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"

	"stop-sign-detector/internal/domain/port"
)

const jpegQuality = 95

// FileResultWriter пишет размеченные изображения на диск.
type FileResultWriter struct{}

// NewFileResultWriter создаёт writer.
func NewFileResultWriter() *FileResultWriter {
	return &FileResultWriter{}
}

// Save создаёт недостающие каталоги и кодирует изображение по расширению пути.
func (w *FileResultWriter) Save(path string, img image.Image) error {
	encoder, err := encoderFor(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create results dir: %w", err)
		}
	}
	if err := imgio.Save(path, img, encoder); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func encoderFor(path string) (imgio.Encoder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return imgio.JPEGEncoder(jpegQuality), nil
	case ".png":
		return imgio.PNGEncoder(), nil
	case ".bmp":
		return imgio.BMPEncoder(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", path)
	}
}

var _ port.ResultWriter = (*FileResultWriter)(nil)
