package relay

import (
	"errors"
	"fmt"
	"testing"
)

func TestStore_CreateUniqueIDs(t *testing.T) {
	store := NewStore()
	host := newFakeConn("host")

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		room := store.Create(fmt.Sprintf("Room%d", i), "Host", host)
		if room.ID == "" {
			t.Fatal("expected non-empty room id")
		}
		if seen[room.ID] {
			t.Fatalf("duplicate room id %s", room.ID)
		}
		seen[room.ID] = true
	}

	if got := len(store.Snapshot()); got != 50 {
		t.Errorf("snapshot length = %d, want 50", got)
	}
}

func TestStore_GetRemove(t *testing.T) {
	store := NewStore()
	room := store.Create("Room1", "Alice", newFakeConn("host"))

	got, err := store.Get(room.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != "Room1" || got.HostName != "Alice" || got.HostID != "host" {
		t.Errorf("unexpected room: %+v", got)
	}

	if _, err := store.Get("missing"); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("Get unknown room error = %v, want ErrRoomNotFound", err)
	}

	store.Remove(room.ID)
	if _, err := store.Get(room.ID); !errors.Is(err, ErrRoomNotFound) {
		t.Error("room still present after Remove")
	}
	if store.Len() != 0 {
		t.Errorf("Len = %d after removal, want 0", store.Len())
	}

	// Removing again is a no-op.
	store.Remove(room.ID)
}

func TestStore_SnapshotOrder(t *testing.T) {
	store := NewStore()
	host := newFakeConn("host")

	first := store.Create("First", "Host", host)
	second := store.Create("Second", "Host", host)
	third := store.Create("Third", "Host", host)

	snapshot := store.Snapshot()
	if len(snapshot) != 3 {
		t.Fatalf("snapshot length = %d, want 3", len(snapshot))
	}
	for i, want := range []string{first.ID, second.ID, third.ID} {
		if snapshot[i].Room != want {
			t.Errorf("snapshot[%d].Room = %s, want %s", i, snapshot[i].Room, want)
		}
	}

	// Creation order survives removal of a middle room.
	store.Remove(second.ID)
	snapshot = store.Snapshot()
	if len(snapshot) != 2 || snapshot[0].Room != first.ID || snapshot[1].Room != third.ID {
		t.Errorf("snapshot after middle removal = %+v", snapshot)
	}
}

func TestStore_Players(t *testing.T) {
	store := NewStore()
	room := store.Create("Room1", "Host", newFakeConn("host"))

	alice := &Player{ID: "p1", Name: "Alice", Conn: newFakeConn("c1")}
	bob := &Player{ID: "p2", Name: "Bob", Conn: newFakeConn("c2")}
	if err := store.AddPlayer(room.ID, alice); err != nil {
		t.Fatalf("AddPlayer failed: %v", err)
	}
	if err := store.AddPlayer(room.ID, bob); err != nil {
		t.Fatalf("AddPlayer failed: %v", err)
	}
	if err := store.AddPlayer("missing", alice); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("AddPlayer to unknown room error = %v, want ErrRoomNotFound", err)
	}

	got, err := store.FindPlayer(room.ID, "p2")
	if err != nil || got.Name != "Bob" {
		t.Errorf("FindPlayer = %+v, %v", got, err)
	}
	if _, err := store.FindPlayer(room.ID, "p9"); !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("FindPlayer unknown error = %v, want ErrPlayerNotFound", err)
	}

	snapshot := store.Snapshot()
	if len(snapshot[0].Players) != 2 || snapshot[0].Players[0].Name != "Alice" {
		t.Errorf("snapshot players = %+v", snapshot[0].Players)
	}

	if !store.RemovePlayer(room.ID, "p1") {
		t.Error("RemovePlayer should report removal")
	}
	if store.RemovePlayer(room.ID, "p1") {
		t.Error("second RemovePlayer should report nothing removed")
	}

	snapshot = store.Snapshot()
	if len(snapshot[0].Players) != 1 || snapshot[0].Players[0].ID != "p2" {
		t.Errorf("players after removal = %+v", snapshot[0].Players)
	}
}
