package player

import "testing"

func TestOfflineUUIDIsDeterministic(t *testing.T) {
	a := OfflineUUID("Notch")
	b := OfflineUUID("Notch")
	if a != b {
		t.Fatalf("OfflineUUID is not deterministic: %x != %x", a, b)
	}

	// UUIDv3 sets the version nibble to 3 and the variant bits to the
	// RFC-4122 "10" pattern, per spec.md §8's derivation formula.
	if version := a[6] >> 4; version != 3 {
		t.Errorf("version nibble = %d, want 3", version)
	}
	if variant := a[8] >> 6; variant != 0b10 {
		t.Errorf("variant bits = %02b, want 10", variant)
	}
}

func TestOfflineUUIDDiffersByUsername(t *testing.T) {
	if OfflineUUID("Notch") == OfflineUUID("Jeb_") {
		t.Fatal("different usernames should not collide")
	}
}

func TestAbilitiesFlags(t *testing.T) {
	tests := []struct {
		name string
		a    Abilities
		want byte
	}{
		{"none", Abilities{}, 0x00},
		{"invulnerable", Abilities{Invulnerable: true}, 0x01},
		{"flying", Abilities{Flying: true}, 0x02},
		{"allow flying", Abilities{AllowFlying: true}, 0x04},
		{"creative", Abilities{Creative: true}, 0x08},
		{"creative mode abilities", AbilitiesForGameMode(GameModeCreative), 0x01 | 0x02 | 0x04 | 0x08},
		{"spectator mode abilities", AbilitiesForGameMode(GameModeSpectator), 0x01 | 0x02 | 0x04},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Flags(); got != tc.want {
				t.Errorf("Flags() = %#x, want %#x", got, tc.want)
			}
		})
	}
}

func TestParseGameMode(t *testing.T) {
	tests := []struct {
		in   string
		want GameMode
		ok   bool
	}{
		{"survival", GameModeSurvival, true},
		{"creative", GameModeCreative, true},
		{"adventure", GameModeAdventure, true},
		{"spectator", GameModeSpectator, true},
		{"bogus", 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseGameMode(tc.in)
			if ok != tc.ok || (ok && got != tc.want) {
				t.Errorf("ParseGameMode(%q) = (%v, %v), want (%v, %v)", tc.in, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestChunkCoordsFloorTowardNegativeInfinity(t *testing.T) {
	tests := []struct {
		pos  float64
		want int32
	}{
		{0, 0},
		{15.9, 0},
		{16, 1},
		{-0.1, -1},
		{-16, -1},
		{-16.1, -2},
	}
	for _, tc := range tests {
		p := New("u", GameModeSurvival, tc.pos, 0, tc.pos)
		if got := p.ChunkX(); got != tc.want {
			t.Errorf("ChunkX() for x=%v = %d, want %d", tc.pos, got, tc.want)
		}
		if got := p.ChunkZ(); got != tc.want {
			t.Errorf("ChunkZ() for z=%v = %d, want %d", tc.pos, got, tc.want)
		}
	}
}
