package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhaseTerminal(t *testing.T) {
	terminal := []Phase{PhaseWinner, PhaseDraw, PhaseEnded}
	for _, p := range terminal {
		assert.True(t, p.Terminal(), "%s", p)
	}

	active := []Phase{PhaseWaiting, PhaseStory, PhaseSubmit, PhaseResolution, PhaseVote, PhaseResult}
	for _, p := range active {
		assert.False(t, p.Terminal(), "%s", p)
	}
}

func TestPhaseTransitions(t *testing.T) {
	tests := []struct {
		from, to Phase
		ok       bool
	}{
		{PhaseWaiting, PhaseStory, true},
		{PhaseStory, PhaseSubmit, true},
		{PhaseSubmit, PhaseResolution, true},
		{PhaseResolution, PhaseVote, true},
		{PhaseVote, PhaseResult, true},
		{PhaseResult, PhaseStory, true}, // round loop-back
		{PhaseResult, PhaseWinner, true},
		{PhaseResult, PhaseDraw, true},
		{PhaseStory, PhaseEnded, true}, // abnormal termination mid-game
		{PhaseVote, PhaseEnded, true},
		{PhaseWaiting, PhaseEnded, false},
		{PhaseWinner, PhaseEnded, false},
		{PhaseSubmit, PhaseVote, false}, // no skipping resolution
		{PhaseStory, PhaseWaiting, false},
		{PhaseWinner, PhaseStory, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.ok, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}
