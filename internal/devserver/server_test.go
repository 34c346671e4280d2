package devserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()

	s := New("127.0.0.1:0", zap.NewNop())
	ts := httptest.NewServer(s.httpServer.Handler)
	t.Cleanup(ts.Close)

	return s, ts
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func TestBroadcastReachesClient(t *testing.T) {
	s, ts := newTestServer(t)
	conn := dial(t, ts)

	require.Equal(t, 1, s.ClientCount())

	s.Broadcast(Message{Source: "src/main.lm", Output: "out/main.cs", OK: true})

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg Message
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, "src/main.lm", msg.Source)
	assert.Equal(t, "out/main.cs", msg.Output)
	assert.True(t, msg.OK)
	assert.Empty(t, msg.Error)
}

func TestBroadcastFansOut(t *testing.T) {
	s, ts := newTestServer(t)
	first := dial(t, ts)
	second := dial(t, ts)

	require.Equal(t, 2, s.ClientCount())

	s.Broadcast(Message{Source: "src/a.lm", Error: "parsing failed", OK: false})

	for _, conn := range []*websocket.Conn{first, second} {
		conn.SetReadDeadline(time.Now().Add(5 * time.Second))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)

		var msg Message
		require.NoError(t, json.Unmarshal(data, &msg))
		assert.False(t, msg.OK)
		assert.Equal(t, "parsing failed", msg.Error)
	}
}

func TestDisconnectedClientIsDropped(t *testing.T) {
	s, ts := newTestServer(t)
	conn := dial(t, ts)
	conn.Close()

	// Two broadcasts: the first may hit the stale connection, the second
	// must see it gone.
	s.Broadcast(Message{Source: "src/a.lm", OK: true})

	require.Eventually(t, func() bool {
		s.Broadcast(Message{Source: "src/a.lm", OK: true})
		return s.ClientCount() == 0
	}, 5*time.Second, 50*time.Millisecond)
}

func TestHealthEndpoint(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
