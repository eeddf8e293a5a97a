package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/1byung/tepdash/engine"
	"github.com/1byung/tepdash/model"
)

func testHub(t *testing.T) (*hub, *engine.Engine, *httptest.Server) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	eng := engine.New(engine.Options{Rand: engine.NewSeeded(1)})
	h := newHub(eng, log)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.handleWS)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return h, eng, srv
}

func TestHubBroadcastAndToggle(t *testing.T) {
	h, eng, srv := testHub(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	waitFor(t, func() bool { return h.count() == 1 })

	// Broadcast one tick and read it back.
	h.broadcast(eng.Tick())
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var snap model.Snapshot
	if err := conn.ReadJSON(&snap); err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	if len(snap.Sensors) != model.NumSensors {
		t.Errorf("broadcast carried %d sensors, want %d", len(snap.Sensors), model.NumSensors)
	}

	// Toggle commands land on the engine.
	if err := conn.WriteJSON(command{Op: "toggle", ID: 7}); err != nil {
		t.Fatalf("write toggle: %v", err)
	}
	waitFor(t, func() bool {
		sel := eng.Snapshot().Selection
		return len(sel) == 1 && sel[0] == 7
	})
}

func TestHubDropOnDisconnect(t *testing.T) {
	h, _, srv := testHub(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	waitFor(t, func() bool { return h.count() == 1 })

	conn.Close()
	waitFor(t, func() bool { return h.count() == 0 })
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met within deadline")
}
