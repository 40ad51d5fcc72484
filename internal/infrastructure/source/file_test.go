package source

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"stop-sign-detector/internal/domain/entity"
)

func TestIsSupported(t *testing.T) {
	for _, name := range []string{"a.jpg", "b.JPEG", "c.Png", "d.bmp"} {
		require.True(t, IsSupported(name), name)
	}
	for _, name := range []string{"a.gif", "b.txt", "noext", "png"} {
		require.False(t, IsSupported(name), name)
	}
}

func TestFileSource_ReadsOnceThenEnds(t *testing.T) {
	path := writeImage(t, t.TempDir(), "sign.png")
	src := NewFileSource(path)
	defer src.Close()

	frame, err := src.Next(context.Background())
	require.NoError(t, err)
	require.Equal(t, "sign.png", frame.Name)
	require.Equal(t, 8, frame.Image.Bounds().Dx())
	require.Equal(t, 6, frame.Image.Bounds().Dy())

	_, err = src.Next(context.Background())
	require.ErrorIs(t, err, entity.ErrEndOfStream)
}

func TestFileSource_Missing(t *testing.T) {
	src := NewFileSource("/nonexistent/sign.png")

	_, err := src.Next(context.Background())
	var loadErr *entity.LoadError
	require.True(t, errors.As(err, &loadErr))
	require.Equal(t, "/nonexistent/sign.png", loadErr.Path)

	_, err = src.Next(context.Background())
	require.ErrorIs(t, err, entity.ErrEndOfStream)
}

func TestFileSource_Undecodable(t *testing.T) {
	path := writeFile(t, t.TempDir(), "broken.jpg", []byte("not an image"))

	_, err := NewFileSource(path).Next(context.Background())
	var loadErr *entity.LoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestFileSource_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileSource("whatever.png").Next(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
