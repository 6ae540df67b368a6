package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixelmeet/backend/internal/models"
)

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body.Status)
	assert.NotEmpty(t, body.Timestamp)
}

func TestStats(t *testing.T) {
	srv, _ := newTestServer(t)

	a := dialWS(t, srv)
	sendSignal(t, a, wireSignal{Type: models.SignalFindPeer})
	waiting := readSignal(t, a)
	require.Equal(t, models.SignalWaitingForPeer, waiting.Type)

	resp, err := http.Get(srv.URL + "/api/stats")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body struct {
		Clients      int `json:"clients"`
		ActiveRooms  int `json:"activeRooms"`
		WaitingRooms int `json:"waitingRooms"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.Clients)
	assert.Equal(t, 1, body.ActiveRooms)
	assert.Equal(t, 1, body.WaitingRooms)
}
