//go:build !gocv
// +build !gocv

package source

import (
	"testing"

	"github.com/stretchr/testify/require"

	"stop-sign-detector/internal/domain/entity"
)

func TestOpenCamera_WithoutGoCV(t *testing.T) {
	_, err := OpenCamera(0)
	var devErr *entity.DeviceError
	require.ErrorAs(t, err, &devErr)
	require.Equal(t, "0", devErr.Device)
	require.ErrorIs(t, err, ErrCameraDisabled)
}
