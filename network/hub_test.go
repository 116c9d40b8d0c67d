package network

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/lixenwraith/crystal-snake/engine"
	"github.com/lixenwraith/crystal-snake/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type received struct {
	peer   PeerID
	action input.Action
}

// startHub serves a hub over httptest and returns it with its ws URL and inbound actions
func startHub(t *testing.T, cfg *Config) (*Hub, string, chan received) {
	t.Helper()
	actions := make(chan received, 16)
	hub := NewHub(cfg, func(id PeerID, a input.Action) {
		actions <- received{id, a}
	})
	srv := httptest.NewServer(hub.Handler())
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + Path, actions
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitPeers(t *testing.T, hub *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.PeerCount() == n }, 2*time.Second, 5*time.Millisecond)
}

func TestBroadcastEvent(t *testing.T) {
	hub, url, _ := startHub(t, nil)
	a := dial(t, url)
	b := dial(t, url)
	waitPeers(t, hub, 2)

	hub.HandleEvent(engine.GameEvent{
		Type:    engine.EventScoreChanged,
		Frame:   3,
		Session: "abc",
		Payload: engine.ScorePayload{Score: 15, Delta: 15},
	})

	for _, conn := range []*websocket.Conn{a, b} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)

		var env struct {
			Type    string             `json:"type"`
			Frame   int64              `json:"frame"`
			Session string             `json:"session"`
			Payload engine.ScorePayload `json:"payload"`
		}
		require.NoError(t, json.Unmarshal(data, &env))
		assert.Equal(t, "score_changed", env.Type)
		assert.Equal(t, int64(3), env.Frame)
		assert.Equal(t, "abc", env.Session)
		assert.Equal(t, 15, env.Payload.Score)
	}
}

func TestInboundActions(t *testing.T) {
	hub, url, actions := startHub(t, nil)
	conn := dial(t, url)
	waitPeers(t, hub, 1)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"direction":"sideways"}`)))
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`not json`)))
	require.NoError(t, conn.WriteJSON(ClientMessage{Direction: "left"}))
	require.NoError(t, conn.WriteJSON(ClientMessage{Command: "start"}))

	want := []input.Action{input.ActionLeft, input.ActionStart}
	for _, w := range want {
		select {
		case got := <-actions:
			assert.Equal(t, w, got.action, "invalid messages are skipped")
			assert.Equal(t, PeerID(1), got.peer)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for %v", w)
		}
	}
}

func TestMaxPeers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxPeers = 1
	hub, url, _ := startHub(t, cfg)
	dial(t, url)
	waitPeers(t, hub, 1)

	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, 1, hub.PeerCount())
}

func TestPeerRemovedOnDisconnect(t *testing.T) {
	hub, url, _ := startHub(t, nil)
	conn := dial(t, url)
	waitPeers(t, hub, 1)

	require.NoError(t, conn.Close())
	waitPeers(t, hub, 0)
	assert.Equal(t, 0, hub.Broadcast([]byte(`{}`)))
}

func TestPeerSendDropsWhenFull(t *testing.T) {
	p := &Peer{
		sendCh:  make(chan []byte, 1),
		closeCh: make(chan struct{}),
	}

	assert.True(t, p.Send([]byte("a")))
	assert.False(t, p.Send([]byte("b")), "queue full")
	assert.Equal(t, uint64(1), p.Dropped.Load())

	close(p.closeCh)
	<-p.sendCh
	assert.False(t, p.Send([]byte("c")), "closed peer")
}

func TestHubStartAndClose(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Address = "127.0.0.1:0"
	hub := NewHub(cfg, nil)
	assert.Nil(t, hub.Addr())

	require.NoError(t, hub.Start())
	require.NotNil(t, hub.Addr())
	assert.NoError(t, hub.Start(), "second start is a no-op")

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+hub.Addr().String()+Path, nil)
	require.NoError(t, err)
	defer conn.Close()
	waitPeers(t, hub, 1)

	require.NoError(t, hub.Close())
	assert.Equal(t, 0, hub.PeerCount())
}

func TestEventTypesCoverAll(t *testing.T) {
	assert.ElementsMatch(t, engine.AllEventTypes, NewHub(nil, nil).EventTypes())
}

func TestServeAfterClose(t *testing.T) {
	hub, url, _ := startHub(t, nil)
	require.NoError(t, hub.Close())

	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, 0, hub.PeerCount())
}

func TestCloseDuringConnects(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxPeers = 64
	hub, url, _ := startHub(t, cfg)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conn, _, err := websocket.DefaultDialer.Dial(url, nil)
			if err == nil {
				conn.Close()
			}
		}()
	}

	time.Sleep(2 * time.Millisecond)
	require.NoError(t, hub.Close())
	wg.Wait()

	assert.Equal(t, 0, hub.PeerCount(), "no peer registered after close")
}
