package packet

import (
	"bytes"

	"github.com/StoreStation/VibeShitCraft/internal/proto"
)

// Handshake is the Handshaking-state 0x00 packet.
type Handshake struct {
	ProtocolVersion int32
	ServerAddress   string
	ServerPort      uint16
	NextState       int32
}

// DecodeHandshake reads the Handshake packet fields in order.
func DecodeHandshake(r *proto.Reader) (Handshake, error) {
	var h Handshake
	var err error
	if h.ProtocolVersion, err = r.VarInt(); err != nil {
		return h, err
	}
	if h.ServerAddress, err = r.String(); err != nil {
		return h, err
	}
	if h.ServerPort, err = r.Uint16(); err != nil {
		return h, err
	}
	if h.NextState, err = r.VarInt(); err != nil {
		return h, err
	}
	return h, nil
}

// DecodePing reads the Status 0x01 Ping payload.
func DecodePing(r *proto.Reader) (int64, error) {
	return r.Int64()
}

// LoginStart is the Login-state 0x00 packet.
type LoginStart struct {
	Username string
}

// DecodeLoginStart reads the LoginStart packet.
func DecodeLoginStart(r *proto.Reader) (LoginStart, error) {
	name, err := r.String()
	return LoginStart{Username: name}, err
}

// DecodeTeleportConfirm reads the TeleportConfirm packet's echoed id.
func DecodeTeleportConfirm(r *proto.Reader) (int32, error) {
	return r.VarInt()
}

// DecodeChatMessage reads the serverbound ChatMessage packet's text.
func DecodeChatMessage(r *proto.Reader) (string, error) {
	return r.String()
}

// DecodeKeepAlive reads the serverbound KeepAlive payload.
func DecodeKeepAlive(r *proto.Reader) (int64, error) {
	return r.Int64()
}

// PluginMessage is the serverbound PluginMessage packet: a channel plus
// the raw remainder of the frame.
type PluginMessage struct {
	Channel string
	Data    []byte
}

// DecodePluginMessage reads channel then drains the rest of the frame.
func DecodePluginMessage(r *proto.Reader) (PluginMessage, error) {
	channel, err := r.String()
	if err != nil {
		return PluginMessage{}, err
	}
	data, err := r.ReadUntilEnd()
	return PluginMessage{Channel: channel, Data: data}, err
}

// BrandChannel is the channel name the brand plugin-message handshake
// uses.
const BrandChannel = "minecraft:brand"

// DecodeBrand reads the embedded varint-length-prefixed brand string from
// a minecraft:brand PluginMessage payload (spec.md §4.3: NOT the
// NBT-string short-length layout; the same varint-string encoding used
// elsewhere).
func DecodeBrand(payload []byte) (string, error) {
	r := proto.NewReader(bytes.NewReader(payload))
	r.SetRemaining(len(payload))
	return r.String()
}

// PlayerPositionAndRotation is the serverbound combined move+look packet.
type PlayerPositionAndRotation struct {
	X, Y, Z    float64
	Yaw, Pitch float32
	OnGround   bool
}

// DecodePlayerPositionAndRotation reads the packet fields in order.
func DecodePlayerPositionAndRotation(r *proto.Reader) (PlayerPositionAndRotation, error) {
	var p PlayerPositionAndRotation
	var err error
	if p.X, err = r.Float64(); err != nil {
		return p, err
	}
	if p.Y, err = r.Float64(); err != nil {
		return p, err
	}
	if p.Z, err = r.Float64(); err != nil {
		return p, err
	}
	if p.Yaw, err = r.Float32(); err != nil {
		return p, err
	}
	if p.Pitch, err = r.Float32(); err != nil {
		return p, err
	}
	if p.OnGround, err = r.Bool(); err != nil {
		return p, err
	}
	return p, nil
}

// DecodeHeldItemChange reads the serverbound HeldItemChange slot.
func DecodeHeldItemChange(r *proto.Reader) (int16, error) {
	return r.Int16()
}

// ClientSettings is the serverbound ClientSettings packet.
type ClientSettings struct {
	Locale            string
	ViewDistance      byte
	ChatMode          int32
	ChatColors        bool
	SkinParts         byte
	MainHand          int32
}

// DecodeClientSettings reads the ClientSettings packet fields in order.
func DecodeClientSettings(r *proto.Reader) (ClientSettings, error) {
	var c ClientSettings
	var err error
	if c.Locale, err = r.String(); err != nil {
		return c, err
	}
	if c.ViewDistance, err = r.Byte(); err != nil {
		return c, err
	}
	if c.ChatMode, err = r.VarInt(); err != nil {
		return c, err
	}
	if c.ChatColors, err = r.Bool(); err != nil {
		return c, err
	}
	if c.SkinParts, err = r.Byte(); err != nil {
		return c, err
	}
	if c.MainHand, err = r.VarInt(); err != nil {
		return c, err
	}
	return c, nil
}

// SetRecipeBookState is the serverbound SetRecipeBookState packet.
type SetRecipeBookState struct {
	BookID int32
	Open   bool
	Filter bool
}

// DecodeSetRecipeBookState reads the packet fields in order.
func DecodeSetRecipeBookState(r *proto.Reader) (SetRecipeBookState, error) {
	var s SetRecipeBookState
	var err error
	if s.BookID, err = r.VarInt(); err != nil {
		return s, err
	}
	if s.Open, err = r.Bool(); err != nil {
		return s, err
	}
	if s.Filter, err = r.Bool(); err != nil {
		return s, err
	}
	return s, nil
}
