// Package world holds the authoritative server model: the entity table
// each World owns, and the chunk column/section codec spec.md §4.5
// describes. World generation itself is a stub per spec.md §1 — every
// chunk is uniform (bedrock, dirt, grass, air), matching the teacher's
// GenerateFlatChunkData (pkg/world/chunk.go) with the 1.8 light-nibble
// layout replaced by the 1.16-era bits-per-block=16 direct format,
// heightmap NBT, and biome-varint array spec.md requires.
package world

import (
	"encoding/binary"

	"github.com/StoreStation/VibeShitCraft/internal/nbt"
	"github.com/StoreStation/VibeShitCraft/internal/proto"
)

const (
	SectionVolume     = 16 * 16 * 16
	SectionsPerColumn = 16
	BitsPerBlockFixed = 16
	BiomesPerSection  = 4 * 4 * 4 // 64
)

// ChunkSection is a full 16×16×16 region of block states. bits-per-block
// is fixed at 16 in this design, so the direct global-palette format
// applies and no palette prefix is written (spec.md §9 Design Note).
type ChunkSection struct {
	// Blocks holds 4096 packed block-state ids, indexed
	// ((y*16)+z)*16+x — left to right, bottom to top, front to back.
	Blocks [SectionVolume]uint16
}

// NonAirCount returns the number of entries in Blocks that are not the
// air state (id 0).
func (s *ChunkSection) NonAirCount() int16 {
	var n int16
	for _, b := range s.Blocks {
		if b != 0 {
			n++
		}
	}
	return n
}

// Encode writes this section's wire representation: i16 BE non-air
// count, u8 bits-per-block, varint byte length of the packed data, then
// the 4096 packed u16 BE block states. With bits-per-block=16 this is
// always exactly 2+1+varint(8192)+8192 bytes (spec.md §8).
func (s *ChunkSection) Encode(w *proto.Writer) {
	w.Int16(s.NonAirCount())
	w.Byte(BitsPerBlockFixed)

	data := make([]byte, SectionVolume*2)
	for i, b := range s.Blocks {
		binary.BigEndian.PutUint16(data[i*2:], b)
	}
	w.VarInt(int32(len(data)))
	w.Write(data)
}

// ChunkColumn is 16 stacked sections; a nil entry means the section is
// absent and its bit in the primary bitmask is cleared.
type ChunkColumn struct {
	Sections [SectionsPerColumn]*ChunkSection
}

// PrimaryBitmask reports, bit i set iff section i is present — spec.md's
// invariant under test.
func (c *ChunkColumn) PrimaryBitmask() int32 {
	var mask int32
	for i, s := range c.Sections {
		if s != nil {
			mask |= 1 << uint(i)
		}
	}
	return mask
}

// EncodeParams bundles the packet-level fields Encode needs beyond the
// column itself.
type EncodeParams struct {
	X, Z     int32
	Full     bool
	BiomeID  int32 // used uniformly across all 1024 biome cells when Full
}

// Encode writes the full ChunkData packet body (spec.md §4.4/§4.5):
// position, full flag, primary bitmask, heightmaps NBT, the optional
// biome array, the concatenated per-section data, and a zero block-entity
// count (persistence and block entities beyond the stub are out of
// scope per spec.md §1).
func (c *ChunkColumn) Encode(w *proto.Writer, p EncodeParams) error {
	w.Int32(p.X)
	w.Int32(p.Z)
	w.Bool(p.Full)
	w.VarInt(c.PrimaryBitmask())

	// Heightmaps: an empty compound is tolerated by the reference client
	// in the 1.16 era (spec.md §9 Design Note) — MOTION_BLOCKING and
	// WORLD_SURFACE are elided rather than invented.
	if err := nbt.Encode(w, "", nbt.Compound{}); err != nil {
		return err
	}

	sectionBytes := proto.NewWriter()
	for _, s := range c.Sections {
		if s == nil {
			continue
		}
		s.Encode(sectionBytes)
	}

	if p.Full {
		w.VarInt(1024)
		for i := 0; i < 1024; i++ {
			w.VarInt(p.BiomeID)
		}
	}

	w.VarInt(int32(sectionBytes.Len()))
	w.Write(sectionBytes.Bytes())

	w.VarInt(0) // block entity count: none in the generation stub
	return nil
}

// UniformColumn builds the bedrock/dirt/grass/air stub column spec.md §1
// requires in place of real world generation: layer 0 bedrock, 1-3 dirt,
// 4 grass, everything above air. Only section 0 is non-empty.
func UniformColumn() *ChunkColumn {
	sec := &ChunkSection{}
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			for y := 0; y < 16; y++ {
				idx := ((y * 16) + z) * 16 + x
				switch {
				case y == 0:
					sec.Blocks[idx] = blockStateBedrock
				case y <= 3:
					sec.Blocks[idx] = blockStateDirt
				case y == 4:
					sec.Blocks[idx] = blockStateGrass
				default:
					sec.Blocks[idx] = blockStateAir
				}
			}
		}
	}
	col := &ChunkColumn{}
	col.Sections[0] = sec
	return col
}

// Stand-in global-palette block state ids for the generation stub. A real
// deployment would look these up from the block-state registry this
// design does not implement (world generation is out of scope, spec.md
// §1).
const (
	blockStateAir     uint16 = 0
	blockStateBedrock uint16 = 33
	blockStateDirt    uint16 = 10
	blockStateGrass   uint16 = 9
)
