//go:build !gocv
// +build !gocv

package display

import "stop-sign-detector/internal/domain/port"

// New без OpenCV возвращает Headless: окна нет, кадры уходят в лог.
func New(string) port.Viewer {
	return NewHeadless()
}
