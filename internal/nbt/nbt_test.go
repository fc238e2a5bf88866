package nbt

import (
	"bytes"
	"testing"
)

// TestCanonicalHelloWorld matches spec.md scenario 6: encoding the named
// compound {"hello world":{"name":"Bananrama"}} produces the exact 33-byte
// canonical serialization.
func TestCanonicalHelloWorld(t *testing.T) {
	inner := Compound{Children: []Named{{Name: "name", Payload: String("Bananrama")}}}

	var buf bytes.Buffer
	if err := Encode(&buf, "hello world", inner); err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	want := []byte{
		0x0A, 0x00, 0x0B, 'h', 'e', 'l', 'l', 'o', ' ', 'w', 'o', 'r', 'l', 'd',
		0x08, 0x00, 0x04, 'n', 'a', 'm', 'e', 0x00, 0x09, 'B', 'a', 'n', 'a', 'n', 'r', 'a', 'm', 'a',
		0x00,
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("Encode() =\n % X\nwant\n % X", buf.Bytes(), want)
	}
	if len(buf.Bytes()) != 33 {
		t.Fatalf("encoded length = %d, want 33", len(buf.Bytes()))
	}

	gotName, gotRoot, err := Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if gotName != "hello world" {
		t.Errorf("root name = %q, want %q", gotName, "hello world")
	}
	if s, ok := gotRoot.Get("name").(String); !ok || s != "Bananrama" {
		t.Errorf("name child = %v, want Bananrama", gotRoot.Get("name"))
	}
}

func TestRoundTripAllTagTypes(t *testing.T) {
	root := Compound{Children: []Named{
		{Name: "b", Payload: Byte(-5)},
		{Name: "s", Payload: Short(1234)},
		{Name: "i", Payload: Int(-123456)},
		{Name: "l", Payload: Long(123456789012345)},
		{Name: "f", Payload: Float(1.5)},
		{Name: "d", Payload: Double(2.25)},
		{Name: "ba", Payload: ByteArray{1, 2, 3, 4}},
		{Name: "str", Payload: String("hi")},
		{Name: "list", Payload: FromStrings([]string{"a", "b", "c"})},
		{Name: "emptylist", Payload: FromStrings(nil)},
		{Name: "comp", Payload: Compound{Children: []Named{{Name: "x", Payload: Int(1)}}}},
		{Name: "ia", Payload: IntArray{1, -2, 3}},
		{Name: "la", Payload: LongArray{1, -2, 3}},
	}}

	var buf bytes.Buffer
	if err := Encode(&buf, "", root); err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	_, got, err := Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}

	if len(got.Children) != len(root.Children) {
		t.Fatalf("child count = %d, want %d", len(got.Children), len(root.Children))
	}
	for i, want := range root.Children {
		gotChild := got.Children[i]
		if gotChild.Name != want.Name {
			t.Errorf("child[%d].Name = %q, want %q", i, gotChild.Name, want.Name)
		}
		if gotChild.Payload.ID() != want.Payload.ID() {
			t.Errorf("child[%d] tag id = %d, want %d", i, gotChild.Payload.ID(), want.Payload.ID())
		}
	}
}

func TestEmptyListEncodesTagEndAndZeroLength(t *testing.T) {
	root := Compound{Children: []Named{{Name: "e", Payload: FromStrings(nil)}}}
	var buf bytes.Buffer
	if err := Encode(&buf, "", root); err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	// root compound header(3: id+len0 name) then child: id(1) name-len(2) name(1='e')
	// then list elem tag (1 byte = TagEnd) + length (int32 = 0).
	idx := 1 + 2 + 0 // TagCompound + name-len(0) + name("")
	idx += 1 + 2 + 1 // child tag id + name len + "e"
	if buf.Bytes()[idx] != TagEnd {
		t.Fatalf("empty list element tag = %d, want TagEnd", buf.Bytes()[idx])
	}
	if got := buf.Bytes()[idx+1 : idx+5]; !bytes.Equal(got, []byte{0, 0, 0, 0}) {
		t.Fatalf("empty list length bytes = % X, want 00 00 00 00", got)
	}
}

func TestCompoundGetPut(t *testing.T) {
	c := Compound{}
	c = c.Put("a", Int(1))
	c = c.Put("b", Int(2))
	c = c.Put("a", Int(99))
	if v, ok := c.Get("a").(Int); !ok || v != 99 {
		t.Fatalf("Get(a) = %v, want 99", c.Get("a"))
	}
	if len(c.Children) != 2 {
		t.Fatalf("Put on existing key should not duplicate, got %d children", len(c.Children))
	}
}
