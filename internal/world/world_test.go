package world

import (
	"testing"

	"github.com/StoreStation/VibeShitCraft/internal/player"
)

func TestHashedSeedBigEndianFirst8Bytes(t *testing.T) {
	var seed [32]byte
	seed[0], seed[1], seed[6], seed[7] = 0x01, 0x02, 0xFF, 0xEE
	w := New("world", seed)

	want := uint64(0x01020000_0000FFEE)
	if got := w.HashedSeed(); got != want {
		t.Fatalf("HashedSeed() = %#x, want %#x", got, want)
	}
}

func TestRegisterEntityAssignsUniqueNonzeroIDs(t *testing.T) {
	w := New("world", [32]byte{})
	seen := make(map[int32]bool)
	for i := 0; i < 500; i++ {
		p := player.New("player", player.GameModeSurvival, 0, 0, 0)
		id := w.RegisterEntity(NewPlayerEntity(p))
		if id == 0 {
			t.Fatalf("RegisterEntity assigned id 0")
		}
		if seen[id] {
			t.Fatalf("RegisterEntity assigned duplicate id %d", id)
		}
		seen[id] = true
	}
	if w.PlayerCount() != 500 {
		t.Fatalf("PlayerCount() = %d, want 500", w.PlayerCount())
	}
}

func TestRemoveEntityDropsFromSnapshot(t *testing.T) {
	w := New("world", [32]byte{})
	p := player.New("player", player.GameModeSurvival, 0, 0, 0)
	id := w.RegisterEntity(NewPlayerEntity(p))

	if _, ok := w.GetEntity(id); !ok {
		t.Fatal("GetEntity should find the just-registered entity")
	}

	w.RemoveEntity(id)
	if _, ok := w.GetEntity(id); ok {
		t.Fatal("GetEntity should not find a removed entity")
	}
	if len(w.Snapshot()) != 0 {
		t.Fatalf("Snapshot() len = %d, want 0", len(w.Snapshot()))
	}
}

func TestEntityPlayerRejectsWrongKind(t *testing.T) {
	e := &Entity{kind: EntityKind(99)}
	if _, err := e.Player(); err == nil {
		t.Fatal("Player() on a non-player entity should error")
	}
}
