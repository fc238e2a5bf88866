package nbt

import (
	"encoding/binary"
	"io"
	"math"
)

// Encode serializes root as a named root compound: type id 0x0A, then
// name (uint16-length-prefixed), then body. This is the on-the-wire shape
// every clientbound NamedNBT field uses (heightmaps, the dimension codec,
// the per-dimension element).
func Encode(w io.Writer, name string, root Compound) error {
	if err := writeByte(w, TagCompound); err != nil {
		return err
	}
	if err := writeString(w, name); err != nil {
		return err
	}
	return writeCompoundBody(w, root)
}

func writeByte(w io.Writer, b byte) error {
	_, err := w.Write([]byte{b})
	return err
}

func writeString(w io.Writer, s string) error {
	b := []byte(s)
	var lenBuf [2]byte
	binary.BigEndian.PutUint16(lenBuf[:], uint16(len(b)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

func writeInt32(w io.Writer, v int32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	_, err := w.Write(b[:])
	return err
}

func writeTagPayload(w io.Writer, t Tag) error {
	switch v := t.(type) {
	case Byte:
		return writeByte(w, byte(v))
	case Short:
		var b [2]byte
		binary.BigEndian.PutUint16(b[:], uint16(v))
		_, err := w.Write(b[:])
		return err
	case Int:
		return writeInt32(w, int32(v))
	case Long:
		var b [8]byte
		binary.BigEndian.PutUint64(b[:], uint64(v))
		_, err := w.Write(b[:])
		return err
	case Float:
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], math.Float32bits(float32(v)))
		_, err := w.Write(b[:])
		return err
	case Double:
		var b [8]byte
		binary.BigEndian.PutUint64(b[:], math.Float64bits(float64(v)))
		_, err := w.Write(b[:])
		return err
	case ByteArray:
		if err := writeInt32(w, int32(len(v))); err != nil {
			return err
		}
		_, err := w.Write(v)
		return err
	case String:
		return writeString(w, string(v))
	case List:
		return writeListBody(w, v)
	case Compound:
		return writeCompoundBody(w, v)
	case IntArray:
		if err := writeInt32(w, int32(len(v))); err != nil {
			return err
		}
		for _, e := range v {
			if err := writeInt32(w, e); err != nil {
				return err
			}
		}
		return nil
	case LongArray:
		if err := writeInt32(w, int32(len(v))); err != nil {
			return err
		}
		for _, e := range v {
			var b [8]byte
			binary.BigEndian.PutUint64(b[:], uint64(e))
			if _, err := w.Write(b[:]); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
}

func writeListBody(w io.Writer, l List) error {
	elemID := l.ElemID
	if len(l.Items) == 0 {
		elemID = TagEnd
	}
	if err := writeByte(w, elemID); err != nil {
		return err
	}
	if err := writeInt32(w, int32(len(l.Items))); err != nil {
		return err
	}
	for _, item := range l.Items {
		if err := writeTagPayload(w, item); err != nil {
			return err
		}
	}
	return nil
}

func writeCompoundBody(w io.Writer, c Compound) error {
	for _, child := range c.Children {
		if err := writeByte(w, child.Payload.ID()); err != nil {
			return err
		}
		if err := writeString(w, child.Name); err != nil {
			return err
		}
		if err := writeTagPayload(w, child.Payload); err != nil {
			return err
		}
	}
	return writeByte(w, TagEnd)
}
