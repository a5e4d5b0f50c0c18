package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abimael92/lol-survival-party/internal/app"
	"github.com/abimael92/lol-survival-party/internal/config"
	"github.com/abimael92/lol-survival-party/internal/domain"
	"github.com/abimael92/lol-survival-party/internal/narrative"
)

func newTestServer(t *testing.T) (*Server, *app.Hub) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gen := narrative.NewTableGenerator(rand.New(rand.NewSource(1)))
	hub := app.NewHub(gen, domain.DefaultSettings(), logger)
	t.Cleanup(hub.Close)

	cfg := &config.Config{}
	return NewServer(cfg, hub, logger), hub
}

func do(t *testing.T, s *Server, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decode(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "ok", resp.Data.(map[string]interface{})["status"])
}

func TestGetRoomNotFound(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/rooms/NOPE42")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decode(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "ROOM_NOT_FOUND", resp.Error.Code)
}

func TestGetRoom(t *testing.T) {
	s, hub := newTestServer(t)

	session, _, err := hub.CreateSession("host-1", "Alice")
	require.NoError(t, err)

	rec := do(t, s, http.MethodGet, "/api/rooms/"+session.RoomCode())

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decode(t, rec)
	require.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, session.RoomCode(), data["roomCode"])
	assert.Equal(t, float64(1), data["playerCount"])
	assert.Equal(t, "waiting", data["phase"])
	assert.Equal(t, true, data["canJoin"])
}

func TestGetRoomLowercaseCode(t *testing.T) {
	s, hub := newTestServer(t)

	session, _, err := hub.CreateSession("host-1", "Alice")
	require.NoError(t, err)

	rec := do(t, s, http.MethodGet, "/api/rooms/"+strings.ToLower(session.RoomCode()))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoomQR(t *testing.T) {
	s, hub := newTestServer(t)

	session, _, err := hub.CreateSession("host-1", "Alice")
	require.NoError(t, err)

	rec := do(t, s, http.MethodGet, "/api/rooms/"+session.RoomCode()+"/qr")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	require.Greater(t, rec.Body.Len(), 8)
	assert.Equal(t, []byte("\x89PNG"), rec.Body.Bytes()[:4])
}

func TestRoomQRUnknownRoom(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/rooms/NOPE42/qr")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStats(t *testing.T) {
	s, hub := newTestServer(t)

	first, _, err := hub.CreateSession("host-1", "Alice")
	require.NoError(t, err)
	_, err = first.Join("joiner-1", "Bob")
	require.NoError(t, err)
	_, _, err = hub.CreateSession("host-2", "Carol")
	require.NoError(t, err)

	rec := do(t, s, http.MethodGet, "/api/stats")

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decode(t, rec)
	require.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(2), data["activeRooms"])
	assert.Equal(t, float64(3), data["totalPlayers"])
}

func TestCORSHeaders(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/health")
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = do(t, s, http.MethodOptions, "/api/health")
	assert.Equal(t, http.StatusOK, rec.Code)
}
