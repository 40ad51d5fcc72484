package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyImage: на вход конвейера подано пустое изображение.
	ErrEmptyImage = errors.New("empty image")
	// ErrEndOfStream: источник кадров исчерпан.
	ErrEndOfStream = errors.New("end of stream")
)

// LoadError: путь не ведёт к декодируемому изображению.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load image %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// DeviceError: устройство захвата не открылось или кадр не прочитан.
type DeviceError struct {
	Device string
	Err    error
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("capture device %s: %v", e.Device, e.Err)
}

func (e *DeviceError) Unwrap() error { return e.Err }

// InputError: неверный выбор в меню.
type InputError struct {
	Input  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Input, e.Reason)
}
