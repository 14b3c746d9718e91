package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func reconstructedConversation(t *testing.T) *Conversation {
	t.Helper()
	now := time.Now().UTC()
	conv, err := ReconstructConversation(5, 1, 2, now, now)
	require.NoError(t, err)
	return conv
}

// ---------------------------------------------------------------------------
// Constructor Tests
// ---------------------------------------------------------------------------

func TestNewConversation_OrdersPair(t *testing.T) {
	conv, err := NewConversation(9, 3)
	require.NoError(t, err)

	assert.Equal(t, uint(3), conv.UserAID())
	assert.Equal(t, uint(9), conv.UserBID())
}

func TestNewConversation_Validation(t *testing.T) {
	tests := []struct {
		name   string
		first  uint
		second uint
	}{
		{"zero first participant", 0, 2},
		{"zero second participant", 1, 0},
		{"self conversation", 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConversation(tt.first, tt.second)
			assert.Error(t, err)
		})
	}
}

// ---------------------------------------------------------------------------
// Participant Tests
// ---------------------------------------------------------------------------

func TestHasParticipant(t *testing.T) {
	conv := reconstructedConversation(t)

	assert.True(t, conv.HasParticipant(1))
	assert.True(t, conv.HasParticipant(2))
	assert.False(t, conv.HasParticipant(3))
}

func TestPeerOf(t *testing.T) {
	conv := reconstructedConversation(t)

	peer, err := conv.PeerOf(1)
	require.NoError(t, err)
	assert.Equal(t, uint(2), peer)

	peer, err = conv.PeerOf(2)
	require.NoError(t, err)
	assert.Equal(t, uint(1), peer)

	_, err = conv.PeerOf(7)
	assert.Error(t, err)
}

func TestSetID(t *testing.T) {
	conv, err := NewConversation(1, 2)
	require.NoError(t, err)

	require.NoError(t, conv.SetID(10))
	assert.Error(t, conv.SetID(11))
}

func TestTouch(t *testing.T) {
	conv := reconstructedConversation(t)
	before := conv.LastMessageAt()

	time.Sleep(time.Millisecond)
	conv.Touch()

	assert.True(t, conv.LastMessageAt().After(before))
}
