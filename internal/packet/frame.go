// Package packet implements the clientbound/serverbound packet catalogue
// for protocol version 498 (spec.md §4.4) on top of internal/proto's byte
// codec, plus the modern packet framing (varint length · varint id ·
// payload) and the single legacy exception (opcode 0xFE, no length
// prefix).
package packet

import (
	"bytes"
	"fmt"
	"io"

	"github.com/StoreStation/VibeShitCraft/internal/proto"
)

// LegacyPingOpcode is the single byte that signals the pre-netty ping,
// the only point where framing deviates from the modern layout.
const LegacyPingOpcode = 0xFE

// LegacyKickOpcode prefixes the legacy ping's reply.
const LegacyKickOpcode = 0xFF

// MaxFrameLength bounds a frame's declared length to reject obviously
// malformed input before allocating a buffer for it.
const MaxFrameLength = 2097151 // max 3-byte VarInt

// Frame is a decoded, still-opaque packet: an id and its raw payload.
type Frame struct {
	ID      int32
	Payload []byte
}

// Reader returns a bounded proto.Reader over the frame's payload.
func (f *Frame) Reader() *proto.Reader {
	r := proto.NewReader(bytes.NewReader(f.Payload))
	r.SetRemaining(len(f.Payload))
	return r
}

// ReadFrame reads one modern frame: varint(total_length) ·
// varint(packet_id) · payload.
func ReadFrame(r io.Reader) (*Frame, error) {
	lr := proto.NewReader(r)
	length, err := lr.VarInt()
	if err != nil {
		return nil, err
	}
	if length < 1 {
		return nil, fmt.Errorf("packet: frame length too small: %d", length)
	}
	if length > MaxFrameLength {
		return nil, fmt.Errorf("packet: frame length too large: %d", length)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("packet: reading frame body: %w", err)
	}

	id, idLen, err := proto.DecodeVarInt(payload)
	if err != nil {
		return nil, fmt.Errorf("packet: reading packet id: %w", err)
	}

	return &Frame{ID: id, Payload: payload[idLen:]}, nil
}

// WriteFrame writes a modern frame for the given packet id, building the
// payload via build.
func WriteFrame(w io.Writer, id int32, build func(w *proto.Writer)) error {
	body := proto.NewWriter()
	build(body)

	var head bytes.Buffer
	idBuf := proto.NewWriter()
	idBuf.VarInt(id)
	totalLen := int32(idBuf.Len() + body.Len())
	lenBuf := proto.NewWriter()
	lenBuf.VarInt(totalLen)

	head.Write(lenBuf.Bytes())
	head.Write(idBuf.Bytes())
	head.Write(body.Bytes())

	_, err := w.Write(head.Bytes())
	return err
}

// WriteLegacyKick writes the pre-netty kick packet: opcode 0xFF, a
// uint16 UTF-16 code-unit count, then the UTF-16BE payload. No varint
// length prefix precedes it.
func WriteLegacyKick(w io.Writer, payload string) error {
	units := utf16Len(payload)

	var buf bytes.Buffer
	buf.WriteByte(LegacyKickOpcode)

	pw := proto.NewWriter()
	pw.Uint16(uint16(units))
	pw.UTF16BE(payload)

	buf.Write(pw.Bytes())
	_, err := w.Write(buf.Bytes())
	return err
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if r > 0xFFFF {
			n += 2
		} else {
			n++
		}
	}
	return n
}
