package ws

// MessageType represents the type of an inbound WebSocket message
type MessageType string

// Client → Server commands. Outbound event types live in the domain package;
// sessions broadcast domain.Event values directly.
const (
	MsgCreateRoom   MessageType = "create-room"
	MsgJoinRoom     MessageType = "join-room"
	MsgStartRoom    MessageType = "start-room"
	MsgSubmitAction MessageType = "submit-action"
	MsgSubmitVote   MessageType = "submit-vote"
	MsgPing         MessageType = "ping"
	MsgPong         MessageType = "pong"
)

// ClientMessage represents a message from client to server
type ClientMessage struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// Client message payloads

// CreateRoomPayload is the payload for create-room
type CreateRoomPayload struct {
	PlayerName string `json:"playerName"`
}

// JoinRoomPayload is the payload for join-room
type JoinRoomPayload struct {
	RoomCode   string `json:"roomCode"`
	PlayerName string `json:"playerName"`
}

// SubmitActionPayload is the payload for submit-action
type SubmitActionPayload struct {
	Text string `json:"text"`
}

// SubmitVotePayload is the payload for submit-vote
type SubmitVotePayload struct {
	TargetID string `json:"targetId"`
}
