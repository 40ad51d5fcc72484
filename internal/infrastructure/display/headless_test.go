package display

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeadless_CountsFrames(t *testing.T) {
	h := NewHeadless()
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))

	require.False(t, h.Show("live", img, false))
	require.False(t, h.Show("live", img, true))
	require.Equal(t, 2, h.Shown())
	require.NoError(t, h.Close())
}
