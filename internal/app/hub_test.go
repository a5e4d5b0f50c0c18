package app

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abimael92/lol-survival-party/internal/domain"
)

func newTestHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(stubGen{}, domain.DefaultSettings(), testLogger())
	t.Cleanup(hub.Close)
	return hub
}

func TestCreateSessionRegistersCreatorAsHost(t *testing.T) {
	hub := newTestHub(t)

	session, creator, err := hub.CreateSession("host-1", "Alice")
	require.NoError(t, err)

	assert.Len(t, session.RoomCode(), DefaultRoomCodeLength)
	assert.Equal(t, "host-1", creator.ID)
	assert.Equal(t, "Alice", creator.Name)
	assert.True(t, creator.Alive)
	assert.Equal(t, 1, session.PlayerCount())
	assert.Equal(t, 1, hub.SessionCount())

	got, err := hub.GetSession(session.RoomCode())
	require.NoError(t, err)
	assert.Same(t, session, got)
}

func TestGetSessionUnknownCode(t *testing.T) {
	hub := newTestHub(t)

	_, err := hub.GetSession("NOPE42")
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestRoomCodesAreUnique(t *testing.T) {
	hub := newTestHub(t)

	codes := make(map[string]bool)
	for i := 0; i < 50; i++ {
		session, _, err := hub.CreateSession(fmt.Sprintf("host-%d", i), "Host")
		require.NoError(t, err)
		assert.False(t, codes[session.RoomCode()], "room code %s issued twice", session.RoomCode())
		codes[session.RoomCode()] = true

		for _, c := range session.RoomCode() {
			assert.Contains(t, RoomCodeChars, string(c))
		}
	}
}

func TestFindSessionByParticipant(t *testing.T) {
	hub := newTestHub(t)

	first, _, err := hub.CreateSession("host-1", "Alice")
	require.NoError(t, err)
	second, _, err := hub.CreateSession("host-2", "Bob")
	require.NoError(t, err)
	_, err = second.Join("joiner-1", "Carol")
	require.NoError(t, err)

	got, err := hub.FindSessionByParticipant("host-1")
	require.NoError(t, err)
	assert.Same(t, first, got)

	got, err = hub.FindSessionByParticipant("joiner-1")
	require.NoError(t, err)
	assert.Same(t, second, got)

	_, err = hub.FindSessionByParticipant("stranger")
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestRemoveSessionIsIdempotent(t *testing.T) {
	hub := newTestHub(t)

	session, _, err := hub.CreateSession("host-1", "Alice")
	require.NoError(t, err)
	code := session.RoomCode()

	hub.RemoveSession(code)
	assert.Equal(t, 0, hub.SessionCount())

	hub.RemoveSession(code)
	assert.Equal(t, 0, hub.SessionCount())

	_, err = hub.GetSession(code)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestLastDisconnectDetachesFromHub(t *testing.T) {
	hub := newTestHub(t)

	session, _, err := hub.CreateSession("host-1", "Alice")
	require.NoError(t, err)
	code := session.RoomCode()

	gone := session.Disconnect("host-1")
	assert.True(t, gone)

	require.Eventually(t, func() bool {
		_, err := hub.GetSession(code)
		return err != nil
	}, 2*time.Second, 5*time.Millisecond, "empty room removes itself from the registry")
}

func TestTotalPlayerCount(t *testing.T) {
	hub := newTestHub(t)

	assert.Equal(t, 0, hub.TotalPlayerCount())

	first, _, err := hub.CreateSession("host-1", "Alice")
	require.NoError(t, err)
	_, err = first.Join("joiner-1", "Bob")
	require.NoError(t, err)
	_, _, err = hub.CreateSession("host-2", "Carol")
	require.NoError(t, err)

	assert.Equal(t, 3, hub.TotalPlayerCount())
}

func TestSweepRemovesOnlyStaleEmptyRooms(t *testing.T) {
	hub := newTestHub(t)
	hub.staleTimeout = time.Nanosecond

	occupied, _, err := hub.CreateSession("host-1", "Alice")
	require.NoError(t, err)

	empty, _, err := hub.CreateSession("host-2", "Bob")
	require.NoError(t, err)
	empty.Disconnect("host-2")
	require.Eventually(t, func() bool {
		return hub.SessionCount() == 1
	}, 2*time.Second, 5*time.Millisecond)

	// A room created but abandoned before its creator ever connected
	stale, _, err := hub.CreateSession("host-3", "Carol")
	require.NoError(t, err)
	stale.game.Players = nil

	time.Sleep(5 * time.Millisecond)
	hub.sweepStaleRooms()

	assert.Equal(t, 1, hub.SessionCount())
	_, err = hub.GetSession(occupied.RoomCode())
	assert.NoError(t, err)
}
