// Package nbt implements Named Binary Tag, the tagged recursive tree
// serialization Minecraft uses for chunk heightmaps, the dimension codec,
// and block-entity data embedded in packets.
//
// NBT strings are uint16-length-prefixed UTF-8, unlike the varint-prefixed
// strings used elsewhere in the wire protocol (proto.String) — the two are
// named distinctly to keep a stray call site from mixing them up.
package nbt

import "fmt"

// Tag ids, in the order the wire format assigns them.
const (
	TagEnd byte = iota
	TagByte
	TagShort
	TagInt
	TagLong
	TagFloat
	TagDouble
	TagByteArray
	TagString
	TagList
	TagCompound
	TagIntArray
	TagLongArray
)

// Tag is the sum type every NBT value satisfies.
type Tag interface {
	ID() byte
}

// Named pairs a tag with a name; only compound children and the root are
// named.
type Named struct {
	Name    string
	Payload Tag
}

type (
	Byte      int8
	Short     int16
	Int       int32
	Long      int64
	Float     float32
	Double    float64
	ByteArray []byte
	String    string
	IntArray  []int32
	LongArray []int64
)

// List holds a homogeneous sequence of tags; ElemID must equal TagEnd only
// when Items is empty.
type List struct {
	ElemID byte
	Items  []Tag
}

// Compound holds an ordered sequence of named children, terminated on the
// wire by TagEnd.
type Compound struct {
	Children []Named
}

func (Byte) ID() byte      { return TagByte }
func (Short) ID() byte     { return TagShort }
func (Int) ID() byte       { return TagInt }
func (Long) ID() byte      { return TagLong }
func (Float) ID() byte     { return TagFloat }
func (Double) ID() byte    { return TagDouble }
func (ByteArray) ID() byte { return TagByteArray }
func (String) ID() byte    { return TagString }
func (List) ID() byte      { return TagList }
func (Compound) ID() byte  { return TagCompound }
func (IntArray) ID() byte  { return TagIntArray }
func (LongArray) ID() byte { return TagLongArray }

// Get returns the payload of the named child c, or nil if absent.
func (c Compound) Get(name string) Tag {
	for _, n := range c.Children {
		if n.Name == name {
			return n.Payload
		}
	}
	return nil
}

// Put returns a copy of c with name set to payload, replacing any existing
// child of that name.
func (c Compound) Put(name string, payload Tag) Compound {
	for i, n := range c.Children {
		if n.Name == name {
			out := append([]Named(nil), c.Children...)
			out[i] = Named{Name: name, Payload: payload}
			return Compound{Children: out}
		}
	}
	return Compound{Children: append(append([]Named(nil), c.Children...), Named{Name: name, Payload: payload})}
}

// TagName returns a human-readable name for a tag id, for diagnostics.
func TagName(id byte) string {
	names := [...]string{"End", "Byte", "Short", "Int", "Long", "Float", "Double",
		"ByteArray", "String", "List", "Compound", "IntArray", "LongArray"}
	if int(id) < len(names) {
		return names[id]
	}
	return fmt.Sprintf("Unknown(%d)", id)
}

// --- host-type lifts (spec.md §4.2 Conversions) ---

// FromByte lifts a raw byte into a Byte tag.
func FromByte(v byte) Byte { return Byte(int8(v)) }

// FromBool lifts a bool into a Byte tag, 0 or 1.
func FromBool(v bool) Byte {
	if v {
		return 1
	}
	return 0
}

// FromInt16 lifts an int16 into a Short tag.
func FromInt16(v int16) Short { return Short(v) }

// FromInt32 lifts an int32 into an Int tag.
func FromInt32(v int32) Int { return Int(v) }

// FromInt64 lifts an int64 into a Long tag.
func FromInt64(v int64) Long { return Long(v) }

// FromFloat32 lifts a float32 into a Float tag.
func FromFloat32(v float32) Float { return Float(v) }

// FromFloat64 lifts a float64 into a Double tag.
func FromFloat64(v float64) Double { return Double(v) }

// FromString lifts a string into a String tag.
func FromString(v string) String { return String(v) }

// FromStrings lifts a slice of strings into a List of String tags. An
// empty slice yields a valid empty List with ElemID TagEnd.
func FromStrings(vs []string) List {
	items := make([]Tag, len(vs))
	for i, v := range vs {
		items[i] = String(v)
	}
	elemID := byte(TagString)
	if len(items) == 0 {
		elemID = TagEnd
	}
	return List{ElemID: elemID, Items: items}
}

// FromCompound lifts a name-ordered mapping into a Compound, preserving
// the given order (map iteration order is not used so serialization is
// deterministic).
func FromCompound(order []string, values map[string]Tag) Compound {
	children := make([]Named, 0, len(order))
	for _, name := range order {
		children = append(children, Named{Name: name, Payload: values[name]})
	}
	return Compound{Children: children}
}
