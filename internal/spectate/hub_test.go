package spectate

import (
	"context"
	"go-sea-battle/internal/component"
	"go-sea-battle/internal/interfaces"
	"go-sea-battle/internal/types"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func snapshot(frame uint64) *interfaces.Snapshot {
	return &interfaces.Snapshot{
		Session: "test",
		Frame:   frame,
		Phase:   component.PhasePlaying,
		Health:  100,
		Vessel:  0,
		Sprites: []interfaces.Sprite{{
			Visual:    interfaces.Visual{ID: 1, Kind: types.KindVessel, Model: struct{}{}},
			Transform: component.Transform{Position: mgl64.Vec3{0, 4, 0}},
		}},
	}
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	u := "ws" + strings.TrimPrefix(url, "http")
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHub_LatestSnapshotOnConnect(t *testing.T) {
	hub := NewHub(zaptest.NewLogger(t))
	hub.Publish(snapshot(1))
	hub.Publish(snapshot(2))

	s := httptest.NewServer(hub)
	defer s.Close()
	conn := dial(t, s.URL)

	var got interfaces.Snapshot
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, uint64(2), got.Frame)
	assert.Equal(t, "test", got.Session)
	require.Len(t, got.Sprites, 1)
	assert.Equal(t, types.EntityID(1), got.Sprites[0].ID)
	assert.Equal(t, mgl64.Vec3{0, 4, 0}, got.Sprites[0].Transform.Position)
}

func TestHub_Broadcast(t *testing.T) {
	hub := NewHub(zaptest.NewLogger(t))
	s := httptest.NewServer(hub)
	defer s.Close()

	conn := dial(t, s.URL)
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	hub.Publish(snapshot(7))

	var got interfaces.Snapshot
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, uint64(7), got.Frame)

	conn.Close()
	assert.Eventually(t, func() bool { return hub.Clients() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestOffer_KeepsLatest(t *testing.T) {
	ch := make(chan *interfaces.Snapshot, 1)
	offer(ch, snapshot(1))
	offer(ch, snapshot(2))
	offer(ch, snapshot(3))
	require.Len(t, ch, 1)
	assert.Equal(t, uint64(3), (<-ch).Frame)
}

func TestServer_Run(t *testing.T) {
	logger := zaptest.NewLogger(t)
	hub := NewHub(logger)
	server, err := Listen("127.0.0.1:0", hub, logger)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Run(ctx) }()

	hub.Publish(snapshot(3))
	conn := dial(t, "http://"+server.Addr()+"/ws")
	var got interfaces.Snapshot
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, uint64(3), got.Frame)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
