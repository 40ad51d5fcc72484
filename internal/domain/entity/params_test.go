package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	require.NoError(t, p.Validate())
	require.Equal(t, HSV{H: 0, S: 50, V: 50}, p.RedLow.Lower)
	require.Equal(t, HSV{H: 10, S: 255, V: 255}, p.RedLow.Upper)
	require.Equal(t, HSV{H: 170, S: 50, V: 50}, p.RedHigh.Lower)
	require.Equal(t, HSV{H: 180, S: 255, V: 255}, p.RedHigh.Upper)
	require.InDelta(t, 500.0, p.MinArea, 1e-9)
	require.Equal(t, 5, p.KernelSize)
}

func TestIsRed_HueWrapAround(t *testing.T) {
	p := DefaultParams()
	require.True(t, p.IsRed(HSV{H: 5, S: 200, V: 200}))
	require.True(t, p.IsRed(HSV{H: 175, S: 200, V: 200}))
	require.True(t, p.IsRed(HSV{H: 180, S: 50, V: 50}))
	require.False(t, p.IsRed(HSV{H: 90, S: 200, V: 200}))
	require.False(t, p.IsRed(HSV{H: 5, S: 49, V: 200}))
	require.False(t, p.IsRed(HSV{H: 175, S: 200, V: 49}))
}

func TestAccepts(t *testing.T) {
	p := DefaultParams()
	square := BoundingBox{Width: 40, Height: 40}

	require.True(t, p.Accepts(1521, square))
	require.False(t, p.Accepts(81, BoundingBox{Width: 10, Height: 10}), "area filter")
	require.False(t, p.Accepts(2581, BoundingBox{Width: 90, Height: 30}), "shape filter")
	require.False(t, p.Accepts(600, BoundingBox{Width: 600, Height: 0}), "zero height")
	require.True(t, p.Accepts(500, BoundingBox{Width: 26, Height: 20}), "ratio 1.3 is inclusive")
	require.True(t, p.Accepts(500, BoundingBox{Width: 21, Height: 30}), "ratio 0.7 is inclusive")
}

func TestValidate(t *testing.T) {
	p := DefaultParams()
	p.KernelSize = 0
	require.Error(t, p.Validate())

	p = DefaultParams()
	p.MinAspectRatio, p.MaxAspectRatio = 1.3, 0.7
	require.Error(t, p.Validate())

	p = DefaultParams()
	p.MinArea = -1
	require.Error(t, p.Validate())
}

func TestReport(t *testing.T) {
	r := DefaultParams().Report()
	require.Contains(t, r, "[0 50 50] - [10 255 255]")
	require.Contains(t, r, "[170 50 50] - [180 255 255]")
	require.Contains(t, r, "500")
	require.Contains(t, r, "0.7 - 1.3")
	require.Contains(t, r, "5x5")
}
