package domain

import "time"

// Participant represents a player in a game session. Participants only exist
// inside a session's roster; they are removed on disconnect.
type Participant struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Alive       bool      `json:"alive"`
	HasVoted    bool      `json:"hasVoted"`
	CurrentItem string    `json:"currentItem,omitempty"`
	JoinedAt    time.Time `json:"joinedAt"`
}

// NewParticipant creates a new alive participant with the given connection id
// and display name. Names are not validated for uniqueness.
func NewParticipant(id, name string) *Participant {
	return &Participant{
		ID:       id,
		Name:     name,
		Alive:    true,
		JoinedAt: time.Now(),
	}
}

// ResetForVoting clears the per-voting-phase flag
func (p *Participant) ResetForVoting() {
	p.HasVoted = false
}
