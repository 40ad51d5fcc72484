package app

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"stop-sign-detector/internal/domain/entity"
)

const jpegQuality = 90

// DecodeImage декодирует присланные байты (JPEG, PNG, BMP и т.д.).
func DecodeImage(name string, data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, &entity.LoadError{Path: name, Err: entity.ErrEmptyImage}
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &entity.LoadError{Path: name, Err: err}
	}
	return img, nil
}

// EncodeJPEG кодирует изображение для отправки клиенту.
func EncodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
