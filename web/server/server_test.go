package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/df07/go-voxel-raytracer/pkg/config"
)

// wsPair upgrades one connection through a test server and returns both ends
func wsPair(t *testing.T, s *Server) (serverConn, clientConn *websocket.Conn, cleanup func()) {
	t.Helper()

	upgraded := make(chan *websocket.Conn, 1)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("Upgrade error: %v", err)
			return
		}
		upgraded <- conn
	}))

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	clientConn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		ts.Close()
		t.Fatalf("Dial error: %v", err)
	}

	select {
	case serverConn = <-upgraded:
	case <-time.After(time.Second):
		clientConn.Close()
		ts.Close()
		t.Fatal("Timed out waiting for the server side of the connection")
	}

	return serverConn, clientConn, func() {
		clientConn.Close()
		serverConn.Close()
		ts.Close()
	}
}

func TestReadControlsForwardsMessages(t *testing.T) {
	s := NewServer(0, config.Default())
	serverConn, clientConn, cleanup := wsPair(t, s)
	defer cleanup()

	controls := make(chan ControlMessage)
	done := make(chan struct{})
	defer close(done)
	go s.readControls(serverConn, controls, done)

	freeze := true
	if err := clientConn.WriteJSON(ControlMessage{Freeze: &freeze}); err != nil {
		t.Fatalf("WriteJSON error: %v", err)
	}

	select {
	case msg := <-controls:
		if msg.Freeze == nil || !*msg.Freeze {
			t.Errorf("Expected freeze=true control message, got %+v", msg)
		}
	case <-time.After(time.Second):
		t.Fatal("Timed out waiting for the control message")
	}
}

func TestReadControlsStopsWhenStreamEnds(t *testing.T) {
	s := NewServer(0, config.Default())
	serverConn, clientConn, cleanup := wsPair(t, s)
	defer cleanup()

	controls := make(chan ControlMessage)
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		s.readControls(serverConn, controls, done)
		close(finished)
	}()

	// Send a control message that nothing receives, then end the stream the
	// way handleStream does on a write error. The reader must not stay
	// blocked on the pending send.
	freeze := true
	if err := clientConn.WriteJSON(ControlMessage{Freeze: &freeze}); err != nil {
		t.Fatalf("WriteJSON error: %v", err)
	}
	close(done)
	serverConn.Close()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Expected the control reader to return after the stream ended")
	}
}
