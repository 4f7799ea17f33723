package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StateLoading, "Loading"},
		{StateAiming, "Aiming"},
		{StatePaused, "Paused"},
		{StateReplaying, "Replaying"},
		{StateReplayFinished, "ReplayFinished"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestGameStateConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, GameState(0), StateLoading)
	assert.Equal(t, GameState(1), StateAiming)
	assert.Equal(t, GameState(2), StatePaused)
	assert.Equal(t, GameState(3), StateReplaying)
	assert.Equal(t, GameState(4), StateReplayFinished)
}

func TestGameState_Predicates(t *testing.T) {
	tests := []struct {
		state      GameState
		input      bool
		simulating bool
	}{
		{StateLoading, false, false},
		{StateAiming, true, true},
		{StatePaused, false, false},
		{StateReplaying, false, true},
		{StateReplayFinished, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			assert.Equal(t, tt.input, tt.state.AcceptsInput())
			assert.Equal(t, tt.simulating, tt.state.Simulating())
		})
	}
}
