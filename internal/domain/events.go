package domain

import "time"

// EventType represents the type of outbound session event
type EventType string

const (
	EventRoomCreated        EventType = "room-created"
	EventPlayerJoined       EventType = "player-joined"
	EventRoomState          EventType = "room-state"
	EventNewStory           EventType = "new-story"
	EventPhaseChanged       EventType = "phase-changed"
	EventSubmissionCount    EventType = "submission-count-update"
	EventResolutionReady    EventType = "resolution-ready"
	EventVoteOptions        EventType = "vote-options"
	EventVoteConfirmed      EventType = "vote-confirmed"
	EventVoteTally          EventType = "vote-tally-update"
	EventPlayerEliminated   EventType = "player-eliminated"
	EventNoElimination      EventType = "no-elimination"
	EventGameWon            EventType = "game-won"
	EventGameDrawn          EventType = "game-drawn"
	EventGameForceEnded     EventType = "game-force-ended"
	EventPlayerDisconnected EventType = "player-disconnected"
	EventHostChanged        EventType = "host-changed"
	EventError              EventType = "error"
)

// Event is an outbound message from a session. PlayerID set means unicast to
// that participant; empty means broadcast to the whole room.
type Event struct {
	Type      EventType   `json:"type"`
	RoomCode  string      `json:"roomCode"`
	PlayerID  string      `json:"-"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewEvent creates a broadcast event
func NewEvent(eventType EventType, roomCode string, payload interface{}) *Event {
	return &Event{
		Type:      eventType,
		RoomCode:  roomCode,
		Payload:   payload,
		Timestamp: time.Now(),
	}
}

// NewPlayerEvent creates a unicast event for one participant
func NewPlayerEvent(eventType EventType, roomCode, playerID string, payload interface{}) *Event {
	return &Event{
		Type:      eventType,
		RoomCode:  roomCode,
		PlayerID:  playerID,
		Payload:   payload,
		Timestamp: time.Now(),
	}
}

// Payload types for outbound events

// RoomCreatedPayload is unicast to the creator
type RoomCreatedPayload struct {
	RoomCode string       `json:"roomCode"`
	Player   *Participant `json:"player"`
}

// PlayerJoinedPayload is broadcast when a participant joins the room
type PlayerJoinedPayload struct {
	Player *Participant `json:"player"`
}

// RoomStatePayload is a full roster snapshot
type RoomStatePayload struct {
	RoomCode string        `json:"roomCode"`
	Players  []Participant `json:"players"`
	Phase    Phase         `json:"phase"`
	HostID   string        `json:"hostId"`
	Round    int           `json:"round"`
}

// NewStoryPayload is unicast per alive participant at the start of a round
type NewStoryPayload struct {
	Introduction string `json:"introduction,omitempty"` // only on round 1
	Scenario     string `json:"scenario"`
	Crisis       string `json:"crisis"`
	PlayerItem   string `json:"playerItem"`
	RoundNumber  int    `json:"roundNumber"`
}

// PhaseChangedPayload announces the new phase
type PhaseChangedPayload struct {
	Phase Phase `json:"phase"`
}

// SubmissionCountPayload is broadcast after every recorded action
type SubmissionCountPayload struct {
	Submitted int `json:"submitted"`
	Alive     int `json:"alive"`
}

// ResolutionPayload carries the combined narrative resolution
type ResolutionPayload struct {
	Resolution  string       `json:"resolution"`
	Submissions []Submission `json:"submissions"`
}

// VoteOptionsPayload carries the submissions participants vote against
type VoteOptionsPayload struct {
	Submissions []Submission `json:"submissions"`
}

// VoteConfirmedPayload is unicast to the voter
type VoteConfirmedPayload struct {
	TargetID string `json:"targetId"`
}

// VoteTallyPayload is the aggregate tally, target id to ballot count
type VoteTallyPayload struct {
	Tally map[string]int `json:"tally"`
}

// PlayerEliminatedPayload announces the round's sacrifice
type PlayerEliminatedPayload struct {
	Player       *Participant `json:"player"`
	Message      string       `json:"message"`
	Continuation string       `json:"continuation"`
}

// NoEliminationPayload announces a round that ended with zero ballots
type NoEliminationPayload struct {
	Message string `json:"message"`
}

// GameWonPayload announces the sole survivor
type GameWonPayload struct {
	Winner *Participant `json:"winner"`
	Story  string       `json:"story"`
	Recap  string       `json:"recap"`
}

// GameDrawnPayload announces that nobody survived
type GameDrawnPayload struct {
	Story string `json:"story"`
	Recap string `json:"recap"`
}

// GameForceEndedPayload announces an abnormal termination
type GameForceEndedPayload struct {
	Reason string `json:"reason"`
}

// PlayerDisconnectedPayload announces a participant leaving
type PlayerDisconnectedPayload struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// HostChangedPayload announces host reassignment
type HostChangedPayload struct {
	HostID   string `json:"hostId"`
	HostName string `json:"hostName"`
}

// ErrorPayload is unicast when a command cannot be honored
type ErrorPayload struct {
	Message string `json:"message"`
}
