package world

import (
	"bytes"
	"testing"

	"github.com/StoreStation/VibeShitCraft/internal/proto"
)

func TestUniformColumnLayerContents(t *testing.T) {
	col := UniformColumn()
	sec := col.Sections[0]
	if sec == nil {
		t.Fatal("section 0 is nil")
	}

	cases := []struct {
		y    int
		want uint16
	}{
		{0, blockStateBedrock},
		{1, blockStateDirt},
		{3, blockStateDirt},
		{4, blockStateGrass},
		{5, blockStateAir},
		{15, blockStateAir},
	}
	for _, c := range cases {
		idx := ((c.y * 16) + 0) * 16
		if got := sec.Blocks[idx]; got != c.want {
			t.Errorf("y=%d block = %d, want %d", c.y, got, c.want)
		}
	}

	for i := 1; i < SectionsPerColumn; i++ {
		if col.Sections[i] != nil {
			t.Errorf("section %d should be absent in the generation stub", i)
		}
	}
}

func TestPrimaryBitmaskOnlySection0(t *testing.T) {
	col := UniformColumn()
	if got, want := col.PrimaryBitmask(), int32(1); got != want {
		t.Fatalf("PrimaryBitmask() = %#x, want %#x", got, want)
	}
}

// TestSectionEncodeByteLength matches spec.md §8's invariant: with
// bits-per-block fixed at 16, a section's encoded wire size is always
// 2 (non-air count) + 1 (bits-per-block) + varint(8192) + 8192 bytes.
func TestSectionEncodeByteLength(t *testing.T) {
	sec := &ChunkSection{}
	for i := range sec.Blocks {
		sec.Blocks[i] = uint16(i % 7)
	}

	w := proto.NewWriter()
	sec.Encode(w)

	const want = 2 + 1 + 2 + 8192 // varint(8192) encodes as 2 bytes
	if got := w.Len(); got != want {
		t.Fatalf("section encoded length = %d, want %d", got, want)
	}
}

func TestSectionNonAirCount(t *testing.T) {
	sec := &ChunkSection{}
	sec.Blocks[0] = blockStateBedrock
	sec.Blocks[1] = blockStateAir
	sec.Blocks[2] = blockStateDirt
	if got, want := sec.NonAirCount(), int16(2); got != want {
		t.Fatalf("NonAirCount() = %d, want %d", got, want)
	}
}

func TestChunkColumnEncodeBiomeArrayOnFull(t *testing.T) {
	col := UniformColumn()
	w := proto.NewWriter()
	if err := col.Encode(w, EncodeParams{X: 1, Z: -1, Full: true, BiomeID: 1}); err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if w.Len() == 0 {
		t.Fatal("Encode produced no bytes")
	}

	r := proto.NewReader(bytes.NewReader(w.Bytes()))
	x, err := r.Int32()
	if err != nil || x != 1 {
		t.Fatalf("x = %d, err = %v, want 1", x, err)
	}
	z, err := r.Int32()
	if err != nil || z != -1 {
		t.Fatalf("z = %d, err = %v, want -1", z, err)
	}
	full, err := r.Bool()
	if err != nil || !full {
		t.Fatalf("full = %v, err = %v, want true", full, err)
	}
	mask, err := r.VarInt()
	if err != nil || mask != 1 {
		t.Fatalf("primary bitmask = %#x, err = %v, want 0x1", mask, err)
	}

	// Heightmaps: an empty root compound (tag id, zero-length name, TagEnd).
	for i := 0; i < 4; i++ {
		if _, err := r.Byte(); err != nil {
			t.Fatalf("heightmaps byte %d: %v", i, err)
		}
	}
	biomeCount, err := r.VarInt()
	if err != nil || biomeCount != 1024 {
		t.Fatalf("biome count = %d, err = %v, want 1024", biomeCount, err)
	}
	for i := 0; i < 1024; i++ {
		b, err := r.VarInt()
		if err != nil || b != 1 {
			t.Fatalf("biome[%d] = %d, err = %v, want 1", i, b, err)
		}
	}
}
