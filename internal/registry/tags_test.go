package registry

import (
	"bytes"
	"testing"

	"github.com/StoreStation/VibeShitCraft/internal/proto"
)

func TestTagCatalogueWriteToOrderAndCounts(t *testing.T) {
	cat := DefaultTags()
	w := proto.NewWriter()
	cat.WriteTo(w)

	r := proto.NewReader(bytes.NewReader(w.Bytes()))
	for _, group := range [][]TagGroup{cat.Block, cat.Item, cat.Fluid, cat.Entity} {
		count, err := r.VarInt()
		if err != nil {
			t.Fatalf("VarInt count: %v", err)
		}
		if int(count) != len(group) {
			t.Fatalf("category count = %d, want %d", count, len(group))
		}
		for _, want := range group {
			name, err := r.String()
			if err != nil || name != want.Name {
				t.Fatalf("name = %q, err = %v, want %q", name, err, want.Name)
			}
			entryCount, err := r.VarInt()
			if err != nil || int(entryCount) != len(want.Entries) {
				t.Fatalf("entry count = %d, err = %v, want %d", entryCount, err, len(want.Entries))
			}
			for _, wantEntry := range want.Entries {
				got, err := r.VarInt()
				if err != nil || got != wantEntry {
					t.Fatalf("entry = %d, err = %v, want %d", got, err, wantEntry)
				}
			}
		}
	}
}
