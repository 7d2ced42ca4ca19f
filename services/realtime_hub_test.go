package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialHub(t *testing.T, hub *RealtimeHub, userID uint) *websocket.Conn {
	t.Helper()

	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		require.NoError(t, err)
		hub.Register(&WSClient{UserID: userID, Conn: conn})
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHubBroadcastReachesOnlyTargetUser(t *testing.T) {
	hub := NewRealtimeHub()

	connA := dialHub(t, hub, 1)
	connB := dialHub(t, hub, 2)

	// wait for both registrations
	require.Eventually(t, func() bool {
		return hub.ConnectionCount(1) == 1 && hub.ConnectionCount(2) == 1
	}, time.Second, 10*time.Millisecond)

	hub.Broadcast(1, map[string]any{"kind": "feed.activity"})

	connA.SetReadDeadline(time.Now().Add(time.Second))
	_, msg, err := connA.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(msg), "feed.activity")

	connB.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	_, _, err = connB.ReadMessage()
	assert.Error(t, err, "user 2 gets nothing")
}

func TestHubUnregisterDropsConnection(t *testing.T) {
	hub := NewRealtimeHub()
	_ = dialHub(t, hub, 9)

	require.Eventually(t, func() bool {
		return hub.ConnectionCount(9) == 1
	}, time.Second, 10*time.Millisecond)

	hub.mu.RLock()
	var cl *WSClient
	for c := range hub.clients[9] {
		cl = c
	}
	hub.mu.RUnlock()

	hub.Unregister(cl)
	assert.Zero(t, hub.ConnectionCount(9))
}
