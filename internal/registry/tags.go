package registry

import "github.com/StoreStation/VibeShitCraft/internal/proto"

// TagGroup is a named tag (e.g. "minecraft:planks") mapping to the varint
// ids of the entries it contains.
type TagGroup struct {
	Name    string
	Entries []int32
}

func (g TagGroup) WriteTo(w *proto.Writer) {
	w.String(g.Name)
	w.VarInt(int32(len(g.Entries)))
	for _, e := range g.Entries {
		w.VarInt(e)
	}
}

// TagCatalogue holds the four tag categories the Tags packet declares, in
// wire order: block, item, fluid, entity.
type TagCatalogue struct {
	Block  []TagGroup
	Item   []TagGroup
	Fluid  []TagGroup
	Entity []TagGroup
}

func writeTagGroups(w *proto.Writer, groups []TagGroup) {
	w.VarInt(int32(len(groups)))
	for _, g := range groups {
		g.WriteTo(w)
	}
}

// WriteTo encodes the four-category body of the Tags packet (spec.md
// §4.4): 4 × (varint count, tags).
func (c TagCatalogue) WriteTo(w *proto.Writer) {
	writeTagGroups(w, c.Block)
	writeTagGroups(w, c.Item)
	writeTagGroups(w, c.Fluid)
	writeTagGroups(w, c.Entity)
}

// DefaultTags returns a minimal built-in tag catalogue.
func DefaultTags() TagCatalogue {
	return TagCatalogue{
		Block:  []TagGroup{{Name: "minecraft:planks", Entries: []int32{5}}},
		Item:   []TagGroup{{Name: "minecraft:planks", Entries: []int32{5}}},
		Fluid:  []TagGroup{{Name: "minecraft:water", Entries: []int32{1}}},
		Entity: []TagGroup{{Name: "minecraft:skeletons", Entries: []int32{}}},
	}
}
