package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
)

// newTestWSConn dials a throwaway websocket server whose handler just
// drains incoming frames, and returns the dialed connection.
func newTestWSConn(t *testing.T) *websocket.Conn {
	t.Helper()
	up := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewRealtimeHub()
	cl := &WSClient{UserID: 7, Conn: newTestWSConn(t)}

	hub.Register(cl)
	hub.BroadcastAlert(7, map[string]string{"kind": "evaluation.accepted"})
	hub.BroadcastAlert(99, map[string]string{"kind": "other-user"}) // no clients, no-op

	hub.Unregister(cl)
	if err := cl.Send(websocket.TextMessage, []byte("x")); err == nil {
		t.Error("send after unregister should fail on the closed connection")
	}
}

// Broadcasts race against keep-alive pings on the same connection; the
// connection permits one writer at a time and panics otherwise, so this
// test fails loudly if writes are not serialized.
func TestBroadcastConcurrentWithPings(t *testing.T) {
	hub := NewRealtimeHub()
	cl := &WSClient{UserID: 3, Conn: newTestWSConn(t)}
	hub.Register(cl)
	defer hub.Unregister(cl)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				hub.BroadcastAlert(3, map[string]int{"n": j})
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 50; j++ {
			_ = cl.Send(websocket.PingMessage, nil)
		}
	}()
	wg.Wait()
}
