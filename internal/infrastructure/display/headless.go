package display

import (
	"image"
	"log"

	"stop-sign-detector/internal/domain/port"
)

// Headless пишет в лог вместо показа кадра. Используется, когда окно недоступно.
type Headless struct {
	shown int
}

func NewHeadless() *Headless { return &Headless{} }

func (h *Headless) Show(title string, img image.Image, _ bool) bool {
	h.shown++
	b := img.Bounds()
	log.Printf("frame %d (%s): %dx%d", h.shown, title, b.Dx(), b.Dy())
	return false
}

// Shown: число показанных кадров.
func (h *Headless) Shown() int { return h.shown }

func (h *Headless) Close() error { return nil }

var _ port.Viewer = (*Headless)(nil)
