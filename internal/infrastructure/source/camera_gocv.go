//go:build gocv
// +build gocv

package source

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gocv.io/x/gocv"

	"stop-sign-detector/internal/domain/entity"
	"stop-sign-detector/internal/domain/port"
)

// Camera читает кадры с устройства видеозахвата через OpenCV.
type Camera struct {
	device  string
	capture *gocv.VideoCapture
	mat     gocv.Mat
	index   int
}

// OpenCamera открывает устройство по номеру.
func OpenCamera(device int) (*Camera, error) {
	name := strconv.Itoa(device)
	capture, err := gocv.OpenVideoCapture(device)
	if err != nil {
		return nil, &entity.DeviceError{Device: name, Err: err}
	}
	if !capture.IsOpened() {
		capture.Close()
		return nil, &entity.DeviceError{Device: name, Err: errors.New("device is not opened")}
	}
	return &Camera{device: name, capture: capture, mat: gocv.NewMat()}, nil
}

// Next читает следующий кадр. Неудачное чтение завершает сессию.
func (c *Camera) Next(ctx context.Context) (entity.Frame, error) {
	if err := ctx.Err(); err != nil {
		return entity.Frame{}, err
	}
	if ok := c.capture.Read(&c.mat); !ok || c.mat.Empty() {
		return entity.Frame{}, &entity.DeviceError{Device: c.device, Err: errors.New("frame read failed")}
	}

	img, err := c.mat.ToImage()
	if err != nil {
		return entity.Frame{}, &entity.DeviceError{Device: c.device, Err: fmt.Errorf("convert frame: %w", err)}
	}

	frame := entity.Frame{
		Name:  fmt.Sprintf("camera#%d", c.index),
		Index: c.index,
		Image: img,
	}
	c.index++
	return frame, nil
}

// Close освобождает устройство.
func (c *Camera) Close() error {
	if err := c.mat.Close(); err != nil {
		return err
	}
	return c.capture.Close()
}

var _ port.FrameSource = (*Camera)(nil)
