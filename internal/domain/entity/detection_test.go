package entity

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoundingBoxCenter(t *testing.T) {
	b := BoundingBox{X: 10, Y: 20, Width: 8, Height: 6}
	x, y := b.Center()
	require.Equal(t, 14, x)
	require.Equal(t, 23, y)
}

func TestBoundingBoxCenter_OddSizeFloors(t *testing.T) {
	b := BoundingBox{X: 0, Y: 0, Width: 41, Height: 39}
	x, y := b.Center()
	require.Equal(t, 20, x)
	require.Equal(t, 19, y)
}

func TestBoundingBoxAspectRatio(t *testing.T) {
	require.InDelta(t, 1.5, BoundingBox{Width: 30, Height: 20}.AspectRatio(), 1e-9)
	require.Zero(t, BoundingBox{Width: 30}.AspectRatio())
}

func TestBoundingBoxRect(t *testing.T) {
	b := BoundingBox{X: 5, Y: 7, Width: 10, Height: 4}
	require.Equal(t, image.Rect(5, 7, 15, 11), b.Rect())
}

func TestNewDetection(t *testing.T) {
	d := NewDetection(BoundingBox{X: 100, Y: 50, Width: 40, Height: 40}, 1521)
	require.Equal(t, Point{X: 120, Y: 70}, d.Center)
	require.InDelta(t, 1521.0, d.Area, 1e-9)
}
