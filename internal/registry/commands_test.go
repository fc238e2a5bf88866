package registry

import (
	"bytes"
	"testing"

	"github.com/StoreStation/VibeShitCraft/internal/proto"
)

func TestDefaultCommandGraphWireShape(t *testing.T) {
	graph := DefaultCommandGraph()
	w := proto.NewWriter()
	graph.WriteTo(w)

	r := proto.NewReader(bytes.NewReader(w.Bytes()))
	count, err := r.VarInt()
	if err != nil {
		t.Fatalf("VarInt node count: %v", err)
	}
	if int(count) != len(graph.Nodes) {
		t.Fatalf("node count = %d, want %d", count, len(graph.Nodes))
	}

	// Root node: kind flags 0x00, 2 children (help, list), no redirect,
	// no name/parser.
	flags, err := r.Byte()
	if err != nil || flags != 0x00 {
		t.Fatalf("root flags = %#x, err = %v, want 0x00", flags, err)
	}
	childCount, err := r.VarInt()
	if err != nil || childCount != 2 {
		t.Fatalf("root child count = %d, err = %v, want 2", childCount, err)
	}
	for i := int32(0); i < childCount; i++ {
		if _, err := r.VarInt(); err != nil {
			t.Fatalf("root child %d: %v", i, err)
		}
	}

	// help/list: literal + executable flags (0x01 | 0x04), 0 children, name
	// string follows.
	for _, wantName := range []string{"help", "list"} {
		nodeFlags, err := r.Byte()
		if err != nil {
			t.Fatalf("node flags: %v", err)
		}
		if nodeFlags != 0x01|0x04 {
			t.Fatalf("%s flags = %#x, want %#x", wantName, nodeFlags, byte(0x01|0x04))
		}
		nChildren, err := r.VarInt()
		if err != nil || nChildren != 0 {
			t.Fatalf("%s child count = %d, err = %v, want 0", wantName, nChildren, err)
		}
		name, err := r.String()
		if err != nil || name != wantName {
			t.Fatalf("name = %q, err = %v, want %q", name, err, wantName)
		}
	}

	root, err := r.VarInt()
	if err != nil || root != graph.Root {
		t.Fatalf("root index = %d, err = %v, want %d", root, err, graph.Root)
	}
}
