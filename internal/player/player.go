// Package player implements spec.md §3's Player entity: identity,
// position/look, abilities, the recipe-book state, and the offline-mode
// UUID derivation.
package player

import (
	"math"
	"net"

	"github.com/google/uuid"
)

// GameMode is the closed set of player game modes.
type GameMode byte

const (
	GameModeSurvival GameMode = iota
	GameModeCreative
	GameModeAdventure
	GameModeSpectator
)

// ParseGameMode maps a CLI/config string to a GameMode.
func ParseGameMode(s string) (GameMode, bool) {
	switch s {
	case "survival":
		return GameModeSurvival, true
	case "creative":
		return GameModeCreative, true
	case "adventure":
		return GameModeAdventure, true
	case "spectator":
		return GameModeSpectator, true
	default:
		return 0, false
	}
}

// OfflineUUID is the NAMESPACE_URL UUIDv3 derivation spec.md
// §3/§8 requires: UUIDv3(NAMESPACE_URL, "OfflinePlayer:"+username).
// Grounded on ErikPelli-MinecraftLightServer's use of google/uuid for the
// same purpose, generalized from uuid.New() (random) to uuid.NewMD5 over
// the fixed OfflinePlayer namespace string.
func OfflineUUID(username string) [16]byte {
	u := uuid.NewMD5(uuid.NameSpaceURL, []byte("OfflinePlayer:"+username))
	return [16]byte(u)
}

// Position is a player's location.
type Position struct {
	X, Y, Z  float64
	OnGround bool
}

// Look is a player's head orientation.
type Look struct {
	Yaw, Pitch float32
}

// Abilities mirrors the PlayerAbilities packet's bit-and-float fields.
type Abilities struct {
	Invulnerable bool
	Flying       bool
	AllowFlying  bool
	Creative     bool
	FlyingSpeed  float32
	FOVModifier  float32
}

// Flags packs Abilities into the wire byte: 0x01 invulnerable, 0x02
// flying, 0x04 allow-flying, 0x08 creative.
func (a Abilities) Flags() byte {
	var f byte
	if a.Invulnerable {
		f |= 0x01
	}
	if a.Flying {
		f |= 0x02
	}
	if a.AllowFlying {
		f |= 0x04
	}
	if a.Creative {
		f |= 0x08
	}
	return f
}

// AbilitiesForGameMode derives the abilities a fresh player of the given
// mode gets: creative/spectator are invulnerable and flying, only
// creative sets the creative bit.
func AbilitiesForGameMode(mode GameMode) Abilities {
	switch mode {
	case GameModeCreative:
		return Abilities{Invulnerable: true, Flying: true, AllowFlying: true, Creative: true, FlyingSpeed: 0.05, FOVModifier: 0.1}
	case GameModeSpectator:
		return Abilities{Invulnerable: true, Flying: true, AllowFlying: true, Creative: false, FlyingSpeed: 0.05, FOVModifier: 0.1}
	default:
		return Abilities{FlyingSpeed: 0.05, FOVModifier: 0.1}
	}
}

// RecipeBookState holds the four open/filter pairs spec.md §3 describes,
// indexed by RecipeBookID.
type RecipeBookState struct {
	Open   [4]bool
	Filter [4]bool
}

// RecipeBookID selects which of the 4 recipe book pairs a
// SetRecipeBookState packet addresses.
type RecipeBookID byte

const (
	RecipeBookCraftingTable RecipeBookID = iota
	RecipeBookFurnace
	RecipeBookBlastFurnace
	RecipeBookSmoker
)

// Property is a (value, optional signature) pair in the player's property
// map, keyed by name.
type Property struct {
	Value     string
	Signature string // empty if unsigned
}

// KeepAliveState tracks the last keep-alive id sent and when, for latency
// measurement and (per spec.md §9 Design Note) mismatch validation.
type KeepAliveState struct {
	LastID   int64
	SentAt   int64 // unix nanos
}

// Player is spec.md §3's Player.
type Player struct {
	UUID     [16]byte
	Username string

	Conn net.Conn

	GameMode         GameMode
	PreviousGameMode *GameMode
	Dimension        string

	SelectedSlot int8 // 0..=8

	Pos  Position
	Look Look

	Abilities Abilities

	RecipeBook     RecipeBookState
	UnlockedRecipe []string

	OperatorLevel byte // 0..4

	Properties map[string]Property

	KeepAlive KeepAliveState
	Latency   int32 // milliseconds

	DisplayName string // empty if unset

	// TeleportID is the id the server last sent in
	// PlayerPositionAndLook, echoed back by TeleportConfirm.
	TeleportID int32
}

// New constructs a fresh offline-mode Player with default abilities for
// mode and centered at the given spawn position.
func New(username string, mode GameMode, spawnX, spawnY, spawnZ float64) *Player {
	return &Player{
		UUID:           OfflineUUID(username),
		Username:       username,
		GameMode:       mode,
		Dimension:      "minecraft:overworld",
		Pos:            Position{X: spawnX, Y: spawnY, Z: spawnZ, OnGround: true},
		Abilities:      AbilitiesForGameMode(mode),
		UnlockedRecipe: nil,
		Properties:     make(map[string]Property),
	}
}

// ChunkX/ChunkZ convert the player's position to chunk coordinates
// (floor(x/16), floor(z/16)).
func (p *Player) ChunkX() int32 { return floorDiv16(p.Pos.X) }
func (p *Player) ChunkZ() int32 { return floorDiv16(p.Pos.Z) }

func floorDiv16(v float64) int32 {
	return int32(math.Floor(v / 16))
}
