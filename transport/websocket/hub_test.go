package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MegaCode111REAL/mancala-web/relay"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	hub := NewHub(relay.NewHandler(relay.NewStore()))
	go hub.Run()

	server := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	t.Cleanup(server.Close)
	return server
}

func dial(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func sendJSON(t *testing.T, conn *websocket.Conn, v interface{}) {
	t.Helper()
	if err := conn.WriteJSON(v); err != nil {
		t.Fatalf("write failed: %v", err)
	}
}

// readUntil reads frames until one of the wanted type arrives, skipping
// interleaved snapshot pushes.
func readUntil(t *testing.T, conn *websocket.Conn, msgType string) map[string]interface{} {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	conn.SetReadDeadline(deadline)

	for time.Now().Before(deadline) {
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("read while waiting for %q failed: %v", msgType, err)
		}
		var msg map[string]interface{}
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("unparseable frame %q: %v", data, err)
		}
		if msg["type"] == msgType {
			return msg
		}
	}
	t.Fatalf("no %q message arrived", msgType)
	return nil
}

func TestHub_CreateAndList(t *testing.T) {
	server := newTestServer(t)
	conn := dial(t, server)

	sendJSON(t, conn, map[string]interface{}{"type": "create", "name": "Alice"})

	created := readUntil(t, conn, "created")
	if created["room"] == "" || created["hostId"] == "" {
		t.Errorf("created ack incomplete: %v", created)
	}

	sendJSON(t, conn, map[string]interface{}{"type": "list"})
	games := readUntil(t, conn, "games")
	list, ok := games["games"].([]interface{})
	if !ok || len(list) != 1 {
		t.Fatalf("games = %v, want one room", games["games"])
	}
	room := list[0].(map[string]interface{})
	if room["name"] != "Alice" || room["room"] != created["room"] {
		t.Errorf("listed room = %v", room)
	}
}

func TestHub_FullGameFlow(t *testing.T) {
	server := newTestServer(t)
	host := dial(t, server)
	joiner := dial(t, server)

	sendJSON(t, host, map[string]interface{}{"type": "create", "name": "Alice"})
	created := readUntil(t, host, "created")
	roomID := created["room"].(string)

	sendJSON(t, joiner, map[string]interface{}{"type": "join_request", "room": roomID, "name": "Bob"})
	request := readUntil(t, host, "join_request")
	if request["name"] != "Bob" {
		t.Errorf("join_request push = %v", request)
	}
	playerID := request["playerId"].(string)

	sendJSON(t, host, map[string]interface{}{"type": "accept", "room": roomID, "playerId": playerID})
	accepted := readUntil(t, joiner, "join_accepted")
	if accepted["room"] != roomID || accepted["playerId"] != playerID {
		t.Errorf("join_accepted = %v", accepted)
	}
	if accepted["hostName"] != "Alice" {
		t.Errorf("hostName = %v, want Alice", accepted["hostName"])
	}

	// A move fans out to the whole room, sender included.
	board := []int{0, 8, 8, 8, 8, 8, 8, 1, 7, 7, 7, 7, 7, 7, 7, 0}
	sendJSON(t, joiner, map[string]interface{}{"type": "move", "room": roomID, "board": board, "turn": "north"})

	for name, conn := range map[string]*websocket.Conn{"host": host, "joiner": joiner} {
		move := readUntil(t, conn, "move")
		if move["turn"] != "north" {
			t.Errorf("%s received turn %v, want north", name, move["turn"])
		}
		got, ok := move["board"].([]interface{})
		if !ok || len(got) != len(board) {
			t.Fatalf("%s received board %v", name, move["board"])
		}
		for i, n := range board {
			if int(got[i].(float64)) != n {
				t.Errorf("%s board[%d] = %v, want %d", name, i, got[i], n)
			}
		}
	}
}

func TestHub_JoinUnknownRoom(t *testing.T) {
	server := newTestServer(t)
	conn := dial(t, server)

	sendJSON(t, conn, map[string]interface{}{"type": "join_request", "room": "nope", "name": "Bob"})
	errMsg := readUntil(t, conn, "error")
	if errMsg["error"] != "no-room" {
		t.Errorf("error = %v, want no-room", errMsg["error"])
	}
}

func TestHub_HostDisconnectEvictsPlayers(t *testing.T) {
	server := newTestServer(t)
	host := dial(t, server)
	joiner := dial(t, server)

	sendJSON(t, host, map[string]interface{}{"type": "create", "name": "Alice"})
	created := readUntil(t, host, "created")
	roomID := created["room"].(string)

	sendJSON(t, joiner, map[string]interface{}{"type": "join_request", "room": roomID, "name": "Bob"})
	readUntil(t, joiner, "games")

	host.Close()

	rejected := readUntil(t, joiner, "rejected")
	if rejected["reason"] != "host_disconnected" {
		t.Errorf("reason = %v, want host_disconnected", rejected["reason"])
	}

	// The room disappears from the snapshot pushed after teardown.
	games := readUntil(t, joiner, "games")
	if list, ok := games["games"].([]interface{}); ok && len(list) != 0 {
		t.Errorf("snapshot still lists %d rooms after host disconnect", len(list))
	}
}

func TestHub_MalformedFrameKeepsConnectionOpen(t *testing.T) {
	server := newTestServer(t)
	conn := dial(t, server)

	if err := conn.WriteMessage(websocket.TextMessage, []byte("{not json")); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	// The connection must survive the dropped frame.
	sendJSON(t, conn, map[string]interface{}{"type": "list"})
	games := readUntil(t, conn, "games")
	if games["type"] != "games" {
		t.Errorf("expected games reply after malformed frame, got %v", games)
	}
}
