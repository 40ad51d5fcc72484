package vision

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"stop-sign-detector/internal/domain/entity"
)

func TestAnnotate_DoesNotMutateInput(t *testing.T) {
	img := createTestImage(200, 150, green)
	fillRect(img, squareAt(100, 75, 40), red)
	before := append([]uint8(nil), img.Pix...)

	result := detect(t, img)
	require.Len(t, result.Detections, 1)

	out, err := NewAnnotator().Annotate(img, result)
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Equal(t, before, img.Pix)
	require.Equal(t, img.Bounds().Size(), out.Bounds().Size())
}

func TestAnnotate_DrawsBoxAndCenter(t *testing.T) {
	img := createTestImage(200, 150, black)
	d := entity.NewDetection(entity.BoundingBox{X: 50, Y: 60, Width: 40, Height: 40}, 1521)
	result := entity.NewFrameResult(200, 150, []entity.Detection{d})

	out, err := NewAnnotator().Annotate(img, result)
	require.NoError(t, err)

	require.Equal(t, color.NRGBAModel.Convert(boxColor), color.NRGBAModel.Convert(out.At(50, 80)), "left edge")
	require.Equal(t, color.NRGBAModel.Convert(boxColor), color.NRGBAModel.Convert(out.At(90, 100)), "bottom-right corner")
	require.Equal(t, color.NRGBAModel.Convert(centerColor), color.NRGBAModel.Convert(out.At(70, 80)), "center dot")
	require.Equal(t, color.NRGBAModel.Convert(black), color.NRGBAModel.Convert(out.At(10, 10)))
}

func TestAnnotate_NoDetectionsIsCopy(t *testing.T) {
	img := createTestImage(30, 20, green)
	out, err := NewAnnotator().Annotate(img, entity.NewFrameResult(30, 20, nil))
	require.NoError(t, err)

	r, g, b, a := out.At(5, 5).RGBA()
	er, eg, eb, ea := img.At(5, 5).RGBA()
	require.Equal(t, []uint32{er, eg, eb, ea}, []uint32{r, g, b, a})
}

func TestAnnotate_EmptyImage(t *testing.T) {
	_, err := NewAnnotator().Annotate(image.NewRGBA(image.Rect(0, 0, 0, 0)), nil)
	require.ErrorIs(t, err, entity.ErrEmptyImage)
}

func TestCenterLabel(t *testing.T) {
	d := entity.NewDetection(entity.BoundingBox{X: 0, Y: 0, Width: 30, Height: 30}, 841)
	require.Equal(t, "Center: (15, 15)", CenterLabel(d))
}
