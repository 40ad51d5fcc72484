package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColorMask(t *testing.T) {
	m := NewColorMask(4, 3)
	require.Len(t, m.Pix, 12)
	require.Zero(t, m.Count())

	m.Set(3, 2, true)
	require.True(t, m.At(3, 2))
	require.False(t, m.At(4, 2), "outside is background")
	require.False(t, m.At(-1, 0))
	require.Equal(t, 1, m.Count())

	m.Set(3, 2, false)
	require.Zero(t, m.Count())
}
