// Package conn implements spec.md §4.3's connection state machine:
// Handshaking, Status, Login, and Play, built by generalizing the
// teacher's handleConnection/handleHandshake/handleStatusRequest/
// handlePing/handleLoginStart/handlePlay dispatch loop
// (pkg/server/server.go) from protocol-47's 3-state switch to the
// 498-era 4-variant state machine and the packet catalogue in
// internal/packet.
package conn

import (
	"sync"

	"github.com/StoreStation/VibeShitCraft/internal/player"
	"github.com/StoreStation/VibeShitCraft/internal/world"
)

// Session is a registered Play-state connection: the handle a Server
// keeps in its connections table for broadcast and keep-alive, decoupled
// from the raw net.Conn so the writer goroutine is the only thing that
// ever touches the socket for output.
type Session struct {
	EntityID int32
	Player   *player.Player
	Entity   *world.Entity

	// ChunkCache remembers which columns have already been sent to this
	// session so re-entering view distance of an unchanged column
	// doesn't re-encode and resend it (internal/world.ChunkSendCache).
	// Only ever touched from this session's own connection goroutine.
	ChunkCache *world.ChunkSendCache

	out       chan []byte
	closeOnce sync.Once
	closed    chan struct{}
}

// NewSession constructs a Session for a just-registered entity. Exported
// so internal/gameserver, which owns the session table, can build one
// from inside its Server.Register implementation.
func NewSession(p *player.Player, e *world.Entity, id int32) *Session {
	return &Session{
		EntityID:   id,
		Player:     p,
		Entity:     e,
		ChunkCache: world.NewChunkSendCache(),
		out:        make(chan []byte, 64),
		closed:     make(chan struct{}),
	}
}

// Send enqueues a pre-framed packet for this session's writer goroutine.
// A full queue drops the packet rather than blocking the caller (often a
// broadcaster holding a world snapshot, per spec.md §5's "release before
// writing" discipline) — a single slow client never stalls the others.
func (s *Session) Send(frame []byte) {
	select {
	case <-s.closed:
	case s.out <- frame:
	default:
	}
}

// Close marks the session closed; safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() { close(s.closed) })
}
