package conn

import (
	"github.com/StoreStation/VibeShitCraft/internal/chat"
	"github.com/StoreStation/VibeShitCraft/internal/player"
	"github.com/StoreStation/VibeShitCraft/internal/registry"
	"github.com/StoreStation/VibeShitCraft/internal/world"
)

// VersionName is the version string reported in both the modern status
// JSON and the legacy ping reply; protocol number and name always travel
// together, so this lives beside Settings.ProtocolVersion rather than as
// a flag.
const VersionName = "1.14.4"

// Settings bundles the startup-immutable values every connection needs
// to answer Status/Login/Play, mirroring the teacher's server.Config
// plus the registry tables spec.md §4.6 adds.
type Settings struct {
	Address         string
	MOTD            string
	MaxPlayers      int
	ProtocolVersion int32
	ViewDistance    int32
	WorldName       string
	DefaultGameMode player.GameMode

	// OnlineMode enables Mojang session verification and encryption,
	// neither of which this design implements (spec.md §1 Non-goals).
	// It exists so a misconfigured server fails fast at login instead of
	// silently skipping the handshake a client in online mode expects.
	OnlineMode bool

	Codec     registry.DimensionCodec
	Dimension registry.Dimension
	Recipes   []registry.Recipe
	Tags      registry.TagCatalogue
	Commands  registry.CommandGraph
}

// Server is the facade a Session uses to reach shared, mutable server
// state without internal/conn importing internal/gameserver — the
// dependency runs the other way, gameserver.Server implements this.
type Server interface {
	Settings() Settings
	World() *world.World

	// Register adds a freshly logged-in player to the shared tables and
	// returns its world entity plus the session handle other code will
	// use to push packets to it.
	Register(p *player.Player) (*world.Entity, *Session)
	// Unregister removes a session from the shared tables, e.g. on
	// disconnect.
	Unregister(s *Session)

	// Broadcast sends msg to every registered session at the given
	// chat position.
	Broadcast(msg chat.Message, position chat.Position, sender [16]byte)
}
