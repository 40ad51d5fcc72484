//go:build !gocv
// +build !gocv

package source

import (
	"context"
	"errors"
	"strconv"

	"stop-sign-detector/internal/domain/entity"
)

// ErrCameraDisabled: сборка без OpenCV не умеет открывать камеру.
var ErrCameraDisabled = errors.New("gocv build tag is not enabled")

// Camera: заглушка для сборки без тега gocv.
type Camera struct{}

// OpenCamera всегда возвращает *entity.DeviceError.
func OpenCamera(device int) (*Camera, error) {
	return nil, &entity.DeviceError{Device: strconv.Itoa(device), Err: ErrCameraDisabled}
}

func (c *Camera) Next(context.Context) (entity.Frame, error) {
	return entity.Frame{}, &entity.DeviceError{Device: "camera", Err: ErrCameraDisabled}
}

func (c *Camera) Close() error { return nil }
