package nbt

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Decode ingests binary NBT from r — the grammar is identical to Encode's
// in reverse — and returns the root's name and compound body.
func Decode(r io.Reader) (name string, root Compound, err error) {
	id, err := readByte(r)
	if err != nil {
		return "", Compound{}, err
	}
	if id != TagCompound {
		return "", Compound{}, fmt.Errorf("nbt: expected root compound, got %s", TagName(id))
	}
	name, err = readString(r)
	if err != nil {
		return "", Compound{}, err
	}
	root, err = readCompoundBody(r)
	return name, root, err
}

func readByte(r io.Reader) (byte, error) {
	var b [1]byte
	_, err := io.ReadFull(r, b[:])
	return b[0], err
}

func readString(r io.Reader) (string, error) {
	var lenBuf [2]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return "", err
	}
	n := binary.BigEndian.Uint16(lenBuf[:])
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func readInt32(r io.Reader) (int32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b[:])), nil
}

func readTagPayload(r io.Reader, id byte) (Tag, error) {
	switch id {
	case TagByte:
		b, err := readByte(r)
		return Byte(int8(b)), err
	case TagShort:
		var b [2]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return nil, err
		}
		return Short(int16(binary.BigEndian.Uint16(b[:]))), nil
	case TagInt:
		v, err := readInt32(r)
		return Int(v), err
	case TagLong:
		var b [8]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return nil, err
		}
		return Long(int64(binary.BigEndian.Uint64(b[:]))), nil
	case TagFloat:
		var b [4]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return nil, err
		}
		return Float(math.Float32frombits(binary.BigEndian.Uint32(b[:]))), nil
	case TagDouble:
		var b [8]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return nil, err
		}
		return Double(math.Float64frombits(binary.BigEndian.Uint64(b[:]))), nil
	case TagByteArray:
		n, err := readInt32(r)
		if err != nil {
			return nil, err
		}
		buf := make([]byte, n)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, err
		}
		return ByteArray(buf), nil
	case TagString:
		s, err := readString(r)
		return String(s), err
	case TagList:
		return readListBody(r)
	case TagCompound:
		return readCompoundBody(r)
	case TagIntArray:
		n, err := readInt32(r)
		if err != nil {
			return nil, err
		}
		out := make(IntArray, n)
		for i := range out {
			v, err := readInt32(r)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case TagLongArray:
		n, err := readInt32(r)
		if err != nil {
			return nil, err
		}
		out := make(LongArray, n)
		for i := range out {
			var b [8]byte
			if _, err := io.ReadFull(r, b[:]); err != nil {
				return nil, err
			}
			out[i] = int64(binary.BigEndian.Uint64(b[:]))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("nbt: unknown tag id %d", id)
	}
}

func readListBody(r io.Reader) (List, error) {
	elemID, err := readByte(r)
	if err != nil {
		return List{}, err
	}
	n, err := readInt32(r)
	if err != nil {
		return List{}, err
	}
	items := make([]Tag, 0, n)
	for i := int32(0); i < n; i++ {
		item, err := readTagPayload(r, elemID)
		if err != nil {
			return List{}, err
		}
		items = append(items, item)
	}
	return List{ElemID: elemID, Items: items}, nil
}

func readCompoundBody(r io.Reader) (Compound, error) {
	var c Compound
	for {
		id, err := readByte(r)
		if err != nil {
			return Compound{}, err
		}
		if id == TagEnd {
			return c, nil
		}
		name, err := readString(r)
		if err != nil {
			return Compound{}, err
		}
		payload, err := readTagPayload(r, id)
		if err != nil {
			return Compound{}, err
		}
		c.Children = append(c.Children, Named{Name: name, Payload: payload})
	}
}
