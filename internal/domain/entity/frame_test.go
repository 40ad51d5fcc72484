package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFrameResult_Empty(t *testing.T) {
	r := NewFrameResult(640, 480, nil)
	require.False(t, r.HasDetections)
	require.NotNil(t, r.Detections)
	require.Empty(t, r.Detections)
}

func TestSortDetections(t *testing.T) {
	ds := []Detection{
		{Box: BoundingBox{X: 50, Y: 10}, Area: 900},
		{Box: BoundingBox{X: 5, Y: 10}, Area: 700},
		{Box: BoundingBox{X: 5, Y: 10}, Area: 600},
		{Box: BoundingBox{X: 0, Y: 2}, Area: 800},
	}
	SortDetections(ds)
	require.Equal(t, 2, ds[0].Box.Y)
	require.InDelta(t, 600.0, ds[1].Area, 1e-9)
	require.InDelta(t, 700.0, ds[2].Area, 1e-9)
	require.Equal(t, 50, ds[3].Box.X)
}
