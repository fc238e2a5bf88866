package proto

import (
	"bytes"
	"encoding/json"
	"unicode/utf16"
)

// Writer accumulates packet payload bytes into an in-memory buffer.
// packet.WriteFrame prefixes the buffer with its varint length before
// writing it out; legacy replies write the raw buffer unprefixed
// instead.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer { return &Writer{} }

// Bytes returns the accumulated payload.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return w.buf.Len() }

// Write implements io.Writer so a Writer can be handed to anything that
// wants to stream raw bytes into the payload (e.g. NBT serialization).
func (w *Writer) Write(p []byte) (int, error) { return w.buf.Write(p) }

// Byte writes a single unsigned byte.
func (w *Writer) Byte(b byte) { w.buf.WriteByte(b) }

// Int8 writes a signed byte.
func (w *Writer) Int8(v int8) { w.buf.WriteByte(byte(v)) }

// Bool writes a boolean as exactly 0x00 or 0x01.
func (w *Writer) Bool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

// Uint16 writes a big-endian unsigned 16-bit integer.
func (w *Writer) Uint16(v uint16) {
	var b [2]byte
	bePut16(b[:], v)
	w.buf.Write(b[:])
}

// Int16 writes a big-endian signed 16-bit integer.
func (w *Writer) Int16(v int16) { w.Uint16(uint16(v)) }

// Uint32 writes a big-endian unsigned 32-bit integer.
func (w *Writer) Uint32(v uint32) {
	var b [4]byte
	bePut32(b[:], v)
	w.buf.Write(b[:])
}

// Int32 writes a big-endian signed 32-bit integer.
func (w *Writer) Int32(v int32) { w.Uint32(uint32(v)) }

// Uint64 writes a big-endian unsigned 64-bit integer.
func (w *Writer) Uint64(v uint64) {
	var b [8]byte
	bePut64(b[:], v)
	w.buf.Write(b[:])
}

// Int64 writes a big-endian signed 64-bit integer.
func (w *Writer) Int64(v int64) { w.Uint64(uint64(v)) }

// Float32 writes a big-endian IEEE-754 32-bit float.
func (w *Writer) Float32(v float32) { w.Uint32(float32Bits(v)) }

// Float64 writes a big-endian IEEE-754 64-bit float.
func (w *Writer) Float64(v float64) { w.Uint64(float64Bits(v)) }

// VarInt writes a LEB128-style varint, at most 5 bytes.
func (w *Writer) VarInt(v int32) {
	var b [5]byte
	n := PutVarInt(b[:], v)
	w.buf.Write(b[:n])
}

// VarLong writes a LEB128-style varlong, at most 10 bytes.
func (w *Writer) VarLong(v int64) {
	var b [10]byte
	n := PutVarLong(b[:], v)
	w.buf.Write(b[:n])
}

// String writes a varint-length-prefixed UTF-8 string.
func (w *Writer) String(s string) {
	b := []byte(s)
	w.VarInt(int32(len(b)))
	w.buf.Write(b)
}

// UUID writes a 16-byte UUID, most-significant-byte first.
func (w *Writer) UUID(u [16]byte) { w.buf.Write(u[:]) }

// Position writes a packed x/y/z block position.
func (w *Writer) Position(x, y, z int32) {
	val := (int64(x&0x3FFFFFF) << 38) | (int64(y&0xFFF) << 26) | int64(z&0x3FFFFFF)
	w.Int64(val)
}

// JSON marshals v and writes it as a String, as clientbound chat/status
// payloads require.
func (w *Writer) JSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	w.String(string(b))
	return nil
}

// UTF16BE writes a UTF-16BE-encoded, non-NUL-terminated string, used only
// by the legacy kick packet's fields.
func (w *Writer) UTF16BE(s string) {
	units := utf16.Encode([]rune(s))
	for _, u := range units {
		w.buf.WriteByte(byte(u >> 8))
		w.buf.WriteByte(byte(u))
	}
}
