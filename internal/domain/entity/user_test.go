package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUser_DefaultState(t *testing.T) {
	u := NewUser(1, 10)
	require.Equal(t, StateMainMenu, u.State)
	require.Equal(t, int64(1), u.ID)
	require.Equal(t, int64(10), u.ChatID)
}

func TestUser_RecordResult(t *testing.T) {
	u := NewUser(1, 10)
	u.SetState(StateProcessing)

	u.RecordResult(NewFrameResult(100, 100, []Detection{{}, {}}))
	u.RecordResult(nil)

	require.Equal(t, StateMainMenu, u.State)
	require.Equal(t, 2, u.Processed)
	require.Equal(t, 2, u.SignsFound)
}
