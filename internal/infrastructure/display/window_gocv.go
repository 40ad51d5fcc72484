//go:build gocv
// +build gocv

package display

import (
	"image"
	"log"

	"gocv.io/x/gocv"

	"stop-sign-detector/internal/domain/port"
)

// Window показывает кадры в окне OpenCV.
type Window struct {
	window *gocv.Window
}

// NewWindow открывает окно с заголовком title.
func NewWindow(title string) *Window {
	return &Window{window: gocv.NewWindow(title)}
}

// Show выводит кадр. При wait=true ждёт любую клавишу, иначе опрашивает клавиатуру 1 мс.
// Возвращает true, если нажата 'q'.
func (w *Window) Show(title string, img image.Image, wait bool) bool {
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		log.Printf("show frame: %v", err)
		return false
	}
	defer mat.Close()

	w.window.SetWindowTitle(title)
	w.window.IMShow(mat)

	delay := 1
	if wait {
		delay = 0
	}
	return w.window.WaitKey(delay) == 'q'
}

// Close закрывает окно.
func (w *Window) Close() error {
	return w.window.Close()
}

var _ port.Viewer = (*Window)(nil)

// New открывает окно OpenCV.
func New(title string) port.Viewer {
	return NewWindow(title)
}
