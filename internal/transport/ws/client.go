package ws

import (
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/abimael92/lol-survival-party/internal/app"
	"github.com/abimael92/lol-survival-party/internal/domain"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 4096

	// Size of the send channel buffer
	sendBufferSize = 256
)

// Client represents a WebSocket client connection. A client is the transport
// identity of one participant; its session membership is resolved through
// the hub on every command.
type Client struct {
	conn     *websocket.Conn
	hub      *app.Hub
	playerID string
	send     chan []byte
	done     chan struct{}
	logger   *slog.Logger
	mu       sync.Mutex
	closed   bool
}

// NewClient creates a new WebSocket client
func NewClient(conn *websocket.Conn, hub *app.Hub, playerID string, logger *slog.Logger) *Client {
	return &Client{
		conn:     conn,
		hub:      hub,
		playerID: playerID,
		send:     make(chan []byte, sendBufferSize),
		done:     make(chan struct{}),
		logger:   logger,
	}
}

// PlayerID implements app.ClientConnection
func (c *Client) PlayerID() string {
	return c.playerID
}

// Send implements app.ClientConnection
func (c *Client) Send(message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	select {
	case c.send <- data:
		return nil
	default:
		// Buffer full, message dropped
		c.logger.Warn("send buffer full, message dropped", "playerID", c.playerID)
		return nil
	}
}

// Close implements app.ClientConnection
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	c.closed = true
	close(c.done)
	return c.conn.Close()
}

// Run starts the client's read and write pumps
func (c *Client) Run() {
	go c.writePump()
	c.readPump()
}

// readPump pumps messages from the WebSocket connection
func (c *Client) readPump() {
	defer func() {
		if session, err := c.hub.FindSessionByParticipant(c.playerID); err == nil {
			session.UnregisterClient(c.playerID)
			session.Disconnect(c.playerID)
		}
		c.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Debug("websocket read error", "error", err)
			}
			break
		}

		c.handleMessage(message)
	}
}

// writePump pumps messages from the send channel to the WebSocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			return
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Add queued messages to the current websocket message
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleMessage processes an incoming message from the client
func (c *Client) handleMessage(data []byte) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		c.sendError("Invalid message format")
		return
	}

	switch msg.Type {
	case MsgCreateRoom:
		c.handleCreateRoom(msg.Payload)
	case MsgJoinRoom:
		c.handleJoinRoom(msg.Payload)
	case MsgStartRoom:
		c.handleStartRoom()
	case MsgSubmitAction:
		c.handleSubmitAction(msg.Payload)
	case MsgSubmitVote:
		c.handleSubmitVote(msg.Payload)
	case MsgPing:
		c.sendPong()
	default:
		c.sendError("Unknown message type")
	}
}

// handleCreateRoom handles a create-room command
func (c *Client) handleCreateRoom(payload interface{}) {
	name, ok := payloadString(payload, "playerName")
	if !ok {
		c.sendError("Player name is required")
		return
	}

	if _, err := c.hub.FindSessionByParticipant(c.playerID); err == nil {
		c.sendError("Already in a room")
		return
	}

	session, creator, err := c.hub.CreateSession(c.playerID, name)
	if err != nil {
		c.sendError("Failed to create room")
		return
	}

	session.RegisterClient(c.playerID, c)

	c.Send(domain.NewPlayerEvent(domain.EventRoomCreated, session.RoomCode(), c.playerID, &domain.RoomCreatedPayload{
		RoomCode: session.RoomCode(),
		Player:   creator,
	}))
	c.Send(domain.NewPlayerEvent(domain.EventRoomState, session.RoomCode(), c.playerID, session.Snapshot()))
}

// handleJoinRoom handles a join-room command
func (c *Client) handleJoinRoom(payload interface{}) {
	roomCode, okCode := payloadString(payload, "roomCode")
	name, okName := payloadString(payload, "playerName")
	if !okCode || !okName {
		c.sendError("Room code and player name are required")
		return
	}

	session, err := c.hub.GetSession(strings.ToUpper(roomCode))
	if err != nil {
		c.sendError("Game not found")
		return
	}

	if _, err := session.Join(c.playerID, name); err != nil {
		if errors.Is(err, domain.ErrAlreadyStarted) {
			c.sendError("Cannot join, game already started")
		} else {
			c.sendError(err.Error())
		}
		return
	}

	session.RegisterClient(c.playerID, c)

	c.Send(domain.NewPlayerEvent(domain.EventRoomState, session.RoomCode(), c.playerID, session.Snapshot()))
}

// handleStartRoom handles a start-room command
func (c *Client) handleStartRoom() {
	session, err := c.hub.FindSessionByParticipant(c.playerID)
	if err != nil {
		c.sendError("Game not found")
		return
	}

	if err := session.Start(c.playerID); err != nil {
		if errors.Is(err, domain.ErrNotEnoughPlayers) {
			c.sendError("Need at least 2 players to start")
		} else {
			c.sendError(err.Error())
		}
	}
}

// handleSubmitAction handles a submit-action command
func (c *Client) handleSubmitAction(payload interface{}) {
	text, ok := payloadString(payload, "text")
	if !ok {
		c.sendError("Action text is required")
		return
	}

	session, err := c.hub.FindSessionByParticipant(c.playerID)
	if err != nil {
		c.sendError("Game not found")
		return
	}

	if err := session.SubmitAction(c.playerID, text); err != nil {
		c.sendError(err.Error())
	}
}

// handleSubmitVote handles a submit-vote command
func (c *Client) handleSubmitVote(payload interface{}) {
	targetID, ok := payloadString(payload, "targetId")
	if !ok {
		c.sendError("Vote target is required")
		return
	}

	session, err := c.hub.FindSessionByParticipant(c.playerID)
	if err != nil {
		c.sendError("Game not found")
		return
	}

	if err := session.SubmitVote(c.playerID, targetID); err != nil {
		c.sendError(err.Error())
	}
}

// sendError unicasts an error event to this client
func (c *Client) sendError(message string) {
	c.Send(domain.NewPlayerEvent(domain.EventError, "", c.playerID, &domain.ErrorPayload{Message: message}))
}

// sendPong replies to a ping
func (c *Client) sendPong() {
	c.Send(&ClientMessage{Type: MsgPong})
}

// payloadString extracts a non-empty string field from a raw payload map
func payloadString(payload interface{}, key string) (string, bool) {
	payloadMap, ok := payload.(map[string]interface{})
	if !ok {
		return "", false
	}
	value, ok := payloadMap[key].(string)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}
