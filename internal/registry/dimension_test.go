package registry

import (
	"testing"

	"github.com/StoreStation/VibeShitCraft/internal/nbt"
)

func TestDefaultDimensionCodecHasPlains(t *testing.T) {
	codec := DefaultDimensionCodec()
	if !codec.HasPlains() {
		t.Fatal("DefaultDimensionCodec must include minecraft:plains")
	}
}

func TestDimensionCodecEncodeShape(t *testing.T) {
	codec := DefaultDimensionCodec()
	root := codec.Encode()

	dims, ok := root.Get("minecraft:dimension_type").(nbt.Compound)
	if !ok {
		t.Fatal("minecraft:dimension_type should be a compound")
	}
	if _, ok := dims.Get("type").(nbt.String); !ok {
		t.Error("dimension_type.type should be a string")
	}
	list, ok := dims.Get("value").(nbt.List)
	if !ok {
		t.Fatal("dimension_type.value should be a list")
	}
	if len(list.Items) != len(codec.Dimensions) {
		t.Errorf("dimension list len = %d, want %d", len(list.Items), len(codec.Dimensions))
	}

	biomes, ok := root.Get("minecraft:worldgen/biome").(nbt.Compound)
	if !ok {
		t.Fatal("minecraft:worldgen/biome should be a compound")
	}
	biomeList, ok := biomes.Get("value").(nbt.List)
	if !ok {
		t.Fatal("worldgen/biome.value should be a list")
	}
	if len(biomeList.Items) != len(codec.Biomes) {
		t.Errorf("biome list len = %d, want %d", len(biomeList.Items), len(codec.Biomes))
	}
}

func TestElementListOfEmptyUsesTagEnd(t *testing.T) {
	empty := DimensionCodec{}
	root := empty.Encode()
	dims := root.Get("minecraft:dimension_type").(nbt.Compound)
	list := dims.Get("value").(nbt.List)
	if list.ElemID != nbt.TagEnd {
		t.Errorf("empty list elem id = %d, want TagEnd", list.ElemID)
	}
	if len(list.Items) != 0 {
		t.Errorf("empty list should have 0 items, got %d", len(list.Items))
	}
}
