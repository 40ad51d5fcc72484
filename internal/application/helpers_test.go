package app

import (
	"context"
	"image"
	"image/color"
	"image/draw"

	"stop-sign-detector/internal/domain/entity"
	"stop-sign-detector/internal/infrastructure/vision"
)

var (
	red   = color.RGBA{R: 220, G: 20, B: 30, A: 255}
	black = color.RGBA{A: 255}
)

// step: один ответ фейкового источника.
type step struct {
	frame entity.Frame
	err   error
}

type fakeSource struct {
	steps  []step
	next   int
	closed bool
}

func (s *fakeSource) Next(ctx context.Context) (entity.Frame, error) {
	if s.next >= len(s.steps) {
		return entity.Frame{}, entity.ErrEndOfStream
	}
	st := s.steps[s.next]
	s.next++
	return st.frame, st.err
}

func (s *fakeSource) Close() error {
	s.closed = true
	return nil
}

// loopSource отдаёт один и тот же кадр бесконечно и вызывает hook перед каждым.
type loopSource struct {
	frame entity.Frame
	calls int
	hook  func(call int)
}

func (s *loopSource) Next(ctx context.Context) (entity.Frame, error) {
	s.calls++
	if s.hook != nil {
		s.hook(s.calls)
	}
	if err := ctx.Err(); err != nil {
		return entity.Frame{}, err
	}
	return s.frame, nil
}

func (s *loopSource) Close() error { return nil }

type memWriter struct {
	saved map[string]image.Image
}

func newMemWriter() *memWriter {
	return &memWriter{saved: make(map[string]image.Image)}
}

func (w *memWriter) Save(path string, img image.Image) error {
	w.saved[path] = img
	return nil
}

type fakeViewer struct {
	shown    int
	quitAt   int
	lastWait bool
}

func (v *fakeViewer) Show(_ string, _ image.Image, wait bool) bool {
	v.shown++
	v.lastWait = wait
	return v.quitAt > 0 && v.shown >= v.quitAt
}

func (v *fakeViewer) Close() error { return nil }

func signImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 200, 160))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: black}, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(60, 40, 120, 100), &image.Uniform{C: red}, image.Point{}, draw.Src)
	return img
}

func blankImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 80, 60))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: black}, image.Point{}, draw.Src)
	return img
}

func newService(w *memWriter) *DetectionService {
	params := entity.DefaultParams()
	return NewDetectionService(vision.NewDetector(params), vision.NewAnnotator(), w, params)
}
