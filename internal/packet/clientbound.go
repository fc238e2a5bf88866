package packet

import (
	"io"

	"github.com/StoreStation/VibeShitCraft/internal/chat"
	"github.com/StoreStation/VibeShitCraft/internal/nbt"
	"github.com/StoreStation/VibeShitCraft/internal/player"
	"github.com/StoreStation/VibeShitCraft/internal/proto"
	"github.com/StoreStation/VibeShitCraft/internal/registry"
	"github.com/StoreStation/VibeShitCraft/internal/world"
)

// WriteStatusResponse encodes the 0x00 Status StatusResponse packet.
func WriteStatusResponse(w io.Writer, jsonBody string) error {
	return WriteFrame(w, ClientboundStatusResponse, func(pw *proto.Writer) {
		pw.String(jsonBody)
	})
}

// WritePong encodes the 0x01 Status Pong packet, echoing the Ping
// payload.
func WritePong(w io.Writer, payload int64) error {
	return WriteFrame(w, ClientboundPong, func(pw *proto.Writer) {
		pw.Int64(payload)
	})
}

// WriteLoginSuccess encodes the 0x02 Login LoginSuccess packet.
func WriteLoginSuccess(w io.Writer, id [16]byte, username string) error {
	return WriteFrame(w, ClientboundLoginSuccess, func(pw *proto.Writer) {
		pw.UUID(id)
		pw.String(username)
	})
}

// WritePluginMessageBrand encodes the 0x17 PluginMessage packet on the
// "minecraft:brand" channel, with the brand string varint-length-
// prefixed inside the raw payload (spec.md §4.3 Login handler note: NOT
// an NBT-style short length here).
func WritePluginMessageBrand(w io.Writer, brand string) error {
	return WriteFrame(w, ClientboundPluginMessage, func(pw *proto.Writer) {
		pw.String("minecraft:brand")
		pw.String(brand)
	})
}

// WritePluginMessage encodes a 0x17 PluginMessage packet with a raw
// payload on an arbitrary channel.
func WritePluginMessage(w io.Writer, channel string, payload []byte) error {
	return WriteFrame(w, ClientboundPluginMessage, func(pw *proto.Writer) {
		pw.String(channel)
		pw.Write(payload)
	})
}

// WriteEntityStatus encodes the 0x1A EntityStatus packet.
func WriteEntityStatus(w io.Writer, entityID int32, status byte) error {
	return WriteFrame(w, ClientboundEntityStatus, func(pw *proto.Writer) {
		pw.Int32(entityID)
		pw.Byte(status)
	})
}

// WriteKeepAlive encodes the 0x1F KeepAlive packet.
func WriteKeepAlive(w io.Writer, id int64) error {
	return WriteFrame(w, ClientboundKeepAlive, func(pw *proto.Writer) {
		pw.Int64(id)
	})
}

// WriteChunkData encodes the 0x20 ChunkData packet for col.
func WriteChunkData(w io.Writer, col *world.ChunkColumn, params world.EncodeParams) error {
	body := proto.NewWriter()
	if err := col.Encode(body, params); err != nil {
		return err
	}
	return WriteFrame(w, ClientboundChunkData, func(pw *proto.Writer) {
		pw.Write(body.Bytes())
	})
}

// WriteChangeDifficulty encodes the 0x0D ChangeDifficulty packet.
func WriteChangeDifficulty(w io.Writer, difficulty world.Difficulty, locked bool) error {
	return WriteFrame(w, ClientboundChangeDifficulty, func(pw *proto.Writer) {
		pw.Byte(byte(difficulty))
		pw.Bool(locked)
	})
}

// WriteChatMessage encodes the 0x0E ChatMessage packet.
func WriteChatMessage(w io.Writer, msg chat.Message, position chat.Position, sender [16]byte) error {
	return WriteFrame(w, ClientboundChatMessage, func(pw *proto.Writer) {
		pw.String(msg.String())
		pw.Int8(int8(position))
		pw.UUID(sender)
	})
}

// JoinGameParams bundles JoinGame's fields (spec.md §4.3/§4.4).
type JoinGameParams struct {
	EntityID            int32
	IsHardcore           bool
	GameMode             player.GameMode
	PreviousGameMode     *player.GameMode
	WorldNames           []string
	Codec                registry.DimensionCodec
	Dimension            registry.Dimension
	WorldName            string
	HashedSeed           uint64
	MaxPlayers           int32
	ViewDistance         int32
	ReducedDebugInfo     bool
	EnableRespawnScreen  bool
	IsDebug              bool
	IsFlat               bool
}

// WriteJoinGame encodes the 0x24 JoinGame packet.
func WriteJoinGame(w io.Writer, p JoinGameParams) error {
	return WriteFrame(w, ClientboundJoinGame, func(pw *proto.Writer) {
		pw.Uint32(uint32(p.EntityID))
		pw.Bool(p.IsHardcore)
		pw.Byte(byte(p.GameMode))
		if p.PreviousGameMode != nil {
			pw.Int8(int8(*p.PreviousGameMode))
		} else {
			pw.Int8(-1)
		}
		pw.VarInt(int32(len(p.WorldNames)))
		for _, n := range p.WorldNames {
			pw.String(n)
		}
		_ = nbt.Encode(pw, "", p.Codec.Encode())
		_ = nbt.Encode(pw, "", p.Dimension.Settings.NBT())
		pw.String(p.WorldName)
		pw.Uint64(p.HashedSeed)
		pw.VarInt(p.MaxPlayers)
		pw.VarInt(p.ViewDistance)
		pw.Bool(p.ReducedDebugInfo)
		pw.Bool(p.EnableRespawnScreen)
		pw.Bool(p.IsDebug)
		pw.Bool(p.IsFlat)
	})
}

// WritePlayerAbilities encodes the 0x30 PlayerAbilities packet.
func WritePlayerAbilities(w io.Writer, a player.Abilities) error {
	return WriteFrame(w, ClientboundPlayerAbilities, func(pw *proto.Writer) {
		pw.Byte(a.Flags())
		pw.Float32(a.FlyingSpeed)
		pw.Float32(a.FOVModifier)
	})
}

// UnlockRecipesAction is the closed action set of the UnlockRecipes
// packet.
type UnlockRecipesAction byte

const (
	UnlockRecipesInit UnlockRecipesAction = iota
	UnlockRecipesAdd
	UnlockRecipesRemove
)

// WriteUnlockRecipes encodes the 0x35 UnlockRecipes packet.
func WriteUnlockRecipes(w io.Writer, action UnlockRecipesAction, book player.RecipeBookState, list1, list2 []string) error {
	return WriteFrame(w, ClientboundUnlockRecipes, func(pw *proto.Writer) {
		pw.Byte(byte(action))
		pw.Bool(book.Open[0])
		pw.Bool(book.Filter[0])
		pw.Bool(book.Open[1])
		pw.Bool(book.Filter[1])
		pw.Bool(book.Open[2])
		pw.Bool(book.Filter[2])
		pw.Bool(book.Open[3])
		pw.Bool(book.Filter[3])
		writeStringList(pw, list1)
		if action == UnlockRecipesInit {
			writeStringList(pw, list2)
		}
	})
}

func writeStringList(w *proto.Writer, list []string) {
	w.VarInt(int32(len(list)))
	for _, s := range list {
		w.String(s)
	}
}

// PositionAndLookFlags selects which fields of PlayerPositionAndLook are
// relative rather than absolute.
const (
	PosLookFlagX = 1 << iota
	PosLookFlagY
	PosLookFlagZ
	PosLookFlagPitch
	PosLookFlagYaw
)

// WritePlayerPositionAndLook encodes the 0x34 PlayerPositionAndLook
// packet.
func WritePlayerPositionAndLook(w io.Writer, pos player.Position, look player.Look, flags byte, teleportID int32) error {
	return WriteFrame(w, ClientboundPlayerPositionAndLook, func(pw *proto.Writer) {
		pw.Float64(pos.X)
		pw.Float64(pos.Y)
		pw.Float64(pos.Z)
		pw.Float32(look.Yaw)
		pw.Float32(look.Pitch)
		pw.Byte(flags)
		pw.VarInt(teleportID)
	})
}

// WriteHeldItemChange encodes the 0x3F HeldItemChange packet.
func WriteHeldItemChange(w io.Writer, slot int8) error {
	return WriteFrame(w, ClientboundHeldItemChange, func(pw *proto.Writer) {
		pw.Byte(byte(slot))
	})
}

// WriteUpdateViewPosition encodes the 0x40 UpdateViewPosition packet.
func WriteUpdateViewPosition(w io.Writer, chunkX, chunkZ int32) error {
	return WriteFrame(w, ClientboundUpdateViewPosition, func(pw *proto.Writer) {
		pw.VarInt(chunkX)
		pw.VarInt(chunkZ)
	})
}

// WriteDeclareRecipes encodes the 0x5A DeclareRecipes packet.
func WriteDeclareRecipes(w io.Writer, recipes []registry.Recipe) error {
	return WriteFrame(w, ClientboundDeclareRecipes, func(pw *proto.Writer) {
		pw.VarInt(int32(len(recipes)))
		for _, r := range recipes {
			r.WriteTo(pw)
		}
	})
}

// WriteTags encodes the 0x5B Tags packet.
func WriteTags(w io.Writer, tags registry.TagCatalogue) error {
	return WriteFrame(w, ClientboundTags, func(pw *proto.Writer) {
		tags.WriteTo(pw)
	})
}

// WriteCommands encodes the Commands packet declaring graph (a
// supplemented feature, spec.md Non-goals excludes command *execution*
// only).
func WriteCommands(w io.Writer, graph registry.CommandGraph) error {
	return WriteFrame(w, ClientboundCommands, func(pw *proto.Writer) {
		graph.WriteTo(pw)
	})
}
