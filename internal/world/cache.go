package world

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// ChunkSendCache remembers, per connection, the content hash of the last
// ChunkData packet sent for each column so a re-entry into the same
// column's view distance doesn't re-encode and resend identical bytes.
// Grounded on dm-vev-adamant's use of xxhash for content-addressed cache
// keys; not safe for concurrent use, matching the per-connection
// single-goroutine ownership spec.md §5 assumes for connection state.
type ChunkSendCache struct {
	sent map[chunkKey]uint64
}

type chunkKey struct{ x, z int32 }

// NewChunkSendCache returns an empty cache.
func NewChunkSendCache() *ChunkSendCache {
	return &ChunkSendCache{sent: make(map[chunkKey]uint64)}
}

// ShouldSend hashes col's packed section bytes and reports whether that
// hash differs from (or is absent from) what was last sent for (x, z),
// recording the new hash as a side effect when it does.
func (c *ChunkSendCache) ShouldSend(x, z int32, col *ChunkColumn) bool {
	h := hashColumn(col)
	key := chunkKey{x, z}
	if prev, ok := c.sent[key]; ok && prev == h {
		return false
	}
	c.sent[key] = h
	return true
}

// Forget drops the cached hash for (x, z), forcing the next ShouldSend
// call for it to report true regardless of content.
func (c *ChunkSendCache) Forget(x, z int32) {
	delete(c.sent, chunkKey{x, z})
}

func hashColumn(col *ChunkColumn) uint64 {
	digest := xxhash.New()
	var idBuf [2]byte
	for _, s := range col.Sections {
		if s == nil {
			digest.Write([]byte{0})
			continue
		}
		digest.Write([]byte{1})
		for _, b := range s.Blocks {
			binary.BigEndian.PutUint16(idBuf[:], b)
			digest.Write(idBuf[:])
		}
	}
	return digest.Sum64()
}
