package app

import (
	"crypto/rand"
	"fmt"
	"log/slog"
	mrand "math/rand"
	"sync"
	"time"

	"github.com/abimael92/lol-survival-party/internal/domain"
	"github.com/abimael92/lol-survival-party/internal/narrative"
)

const (
	// DefaultRoomCodeLength is the default length for room codes
	DefaultRoomCodeLength = 6

	// StaleRoomTimeout is how long before an empty room is swept
	StaleRoomTimeout = 2 * time.Hour
)

// RoomCodeChars are characters used for room codes (no ambiguous chars)
const RoomCodeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Hub is the room registry: it owns the room-code to session map, and all
// session creation, lookup and deletion funnels through it.
type Hub struct {
	sessions       map[string]*Session
	mu             sync.RWMutex
	gen            narrative.Generator
	settings       domain.Settings
	roomCodeLength int
	staleTimeout   time.Duration
	logger         *slog.Logger
	done           chan struct{}
}

// NewHub creates a room registry and starts its stale-room sweeper
func NewHub(gen narrative.Generator, settings domain.Settings, logger *slog.Logger) *Hub {
	codeLength := settings.RoomCodeLength
	if codeLength <= 0 {
		codeLength = DefaultRoomCodeLength
	}

	hub := &Hub{
		sessions:       make(map[string]*Session),
		gen:            gen,
		settings:       settings,
		roomCodeLength: codeLength,
		staleTimeout:   StaleRoomTimeout,
		logger:         logger,
		done:           make(chan struct{}),
	}

	go hub.sweepLoop()

	return hub
}

// CreateSession generates a fresh room code, builds a session with the
// creator as host, and registers it.
func (h *Hub) CreateSession(creatorID, creatorName string) (*Session, *domain.Participant, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var roomCode string
	for attempts := 0; attempts < 10; attempts++ {
		roomCode = h.generateRoomCode()
		if _, exists := h.sessions[roomCode]; !exists {
			break
		}
	}
	if _, exists := h.sessions[roomCode]; exists {
		return nil, nil, fmt.Errorf("failed to generate unique room code")
	}

	game := domain.NewGame(roomCode)
	game.Settings = h.settings
	creator, err := game.AddPlayer(creatorID, creatorName)
	if err != nil {
		return nil, nil, err
	}

	rnd := mrand.New(mrand.NewSource(time.Now().UnixNano()))
	session := NewSession(game, h.gen, rnd, h.logger, func() {
		h.RemoveSession(roomCode)
	})
	h.sessions[roomCode] = session

	h.logger.Info("room created", "roomCode", roomCode, "host", creatorName)

	return session, creator, nil
}

// GetSession returns a session by room code
func (h *Hub) GetSession(roomCode string) (*Session, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	session, ok := h.sessions[roomCode]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}

	return session, nil
}

// FindSessionByParticipant scans all rosters for the session containing the
// given participant. Commands after join carry no room code, so this is the
// lookup every in-game command goes through.
func (h *Hub) FindSessionByParticipant(playerID string) (*Session, error) {
	h.mu.RLock()
	sessions := make([]*Session, 0, len(h.sessions))
	for _, session := range h.sessions {
		sessions = append(sessions, session)
	}
	h.mu.RUnlock()

	for _, session := range sessions {
		if session.HasParticipant(playerID) {
			return session, nil
		}
	}

	return nil, domain.ErrRoomNotFound
}

// RemoveSession deletes a session from the registry; idempotent
func (h *Hub) RemoveSession(roomCode string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if session, ok := h.sessions[roomCode]; ok {
		session.Close()
		delete(h.sessions, roomCode)
		h.logger.Info("room removed", "roomCode", roomCode)
	}
}

// SessionCount returns the number of active rooms
func (h *Hub) SessionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// TotalPlayerCount returns the participant count across all rooms
func (h *Hub) TotalPlayerCount() int {
	h.mu.RLock()
	sessions := make([]*Session, 0, len(h.sessions))
	for _, session := range h.sessions {
		sessions = append(sessions, session)
	}
	h.mu.RUnlock()

	total := 0
	for _, session := range sessions {
		total += session.PlayerCount()
	}
	return total
}

// Close shuts down the hub and all sessions
func (h *Hub) Close() {
	select {
	case <-h.done:
		return
	default:
		close(h.done)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, session := range h.sessions {
		session.Close()
	}
	h.sessions = make(map[string]*Session)
}

// generateRoomCode generates a random room code
func (h *Hub) generateRoomCode() string {
	b := make([]byte, h.roomCodeLength)
	rand.Read(b)

	code := make([]byte, h.roomCodeLength)
	for i := range code {
		code[i] = RoomCodeChars[int(b[i])%len(RoomCodeChars)]
	}

	return string(code)
}

// sweepLoop periodically removes rooms that have sat empty too long. Rooms
// normally remove themselves on their last disconnect or terminal cleanup;
// this catches rooms created over REST but never joined over the socket.
func (h *Hub) sweepLoop() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-h.done:
			return
		case <-ticker.C:
			h.sweepStaleRooms()
		}
	}
}

func (h *Hub) sweepStaleRooms() {
	h.mu.RLock()
	stale := make([]string, 0)
	now := time.Now()
	for roomCode, session := range h.sessions {
		if session.PlayerCount() == 0 && now.Sub(session.CreatedAt()) > h.staleTimeout {
			stale = append(stale, roomCode)
		}
	}
	h.mu.RUnlock()

	for _, roomCode := range stale {
		h.RemoveSession(roomCode)
		h.logger.Info("stale room swept", "roomCode", roomCode)
	}
}
