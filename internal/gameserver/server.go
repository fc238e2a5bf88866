// Package gameserver implements spec.md §4.6/§4.7's Server: the shared
// session table, broadcast, keep-alive ticker, and accept loop,
// generalized from the teacher's Server/acceptLoop/handleConnection
// (pkg/server/server.go) — same listener + goroutine-per-connection
// shape, new per-connection state machine (internal/conn) and a
// connections table now separate from the world's entity table, the
// two-level split spec.md §4.7 calls for.
package gameserver

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net"
	"sync"
	"time"

	"github.com/StoreStation/VibeShitCraft/internal/chat"
	"github.com/StoreStation/VibeShitCraft/internal/conn"
	"github.com/StoreStation/VibeShitCraft/internal/packet"
	"github.com/StoreStation/VibeShitCraft/internal/player"
	"github.com/StoreStation/VibeShitCraft/internal/protoerr"
	"github.com/StoreStation/VibeShitCraft/internal/registry"
	"github.com/StoreStation/VibeShitCraft/internal/world"
)

// buildFrame runs write against an in-memory buffer and returns the
// accumulated bytes, the same small helper internal/conn uses to turn a
// packet.WriteXxx call into a frame a Session.Send can queue.
func buildFrame(write func(w io.Writer) error) ([]byte, error) {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// keepAliveInterval is how often the server pings every Play-state
// session, matching the vanilla 20-second cadence spec.md §5 describes.
const keepAliveInterval = 20 * time.Second

// Server owns the shared, mutable state every connection reaches
// through the conn.Server facade: the world's entity table and this
// package's own session table, kept separate per spec.md §4.7.
type Server struct {
	settings conn.Settings
	world    *world.World
	listener net.Listener
	stopCh   chan struct{}

	mu       sync.RWMutex
	sessions map[int32]*conn.Session
}

// Options bundles the startup values New needs, mirroring the teacher's
// Config (pkg/server/server.go) plus the registry defaults this design
// adds.
type Options struct {
	Address         string
	MaxPlayers      int
	MOTD            string
	Seed            int64
	DefaultGameMode player.GameMode
	OnlineMode      bool
	ViewDistance    int32
	WorldName       string
	Codec           registry.DimensionCodec
	Dimension       registry.Dimension
	Recipes         []registry.Recipe
	Tags            registry.TagCatalogue
	Commands        registry.CommandGraph
}

// New constructs a Server, generalizing the teacher's server.New: same
// "fill in a random seed when unset, log it" behavior.
func New(opts Options) *Server {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("World seed: %d", seed)

	var seedBytes [32]byte
	for i := 0; i < 8; i++ {
		seedBytes[i] = byte(seed >> (8 * (7 - i)))
	}

	return &Server{
		settings: conn.Settings{
			Address:         opts.Address,
			MOTD:            opts.MOTD,
			MaxPlayers:      opts.MaxPlayers,
			ProtocolVersion: 498,
			ViewDistance:    opts.ViewDistance,
			WorldName:       opts.WorldName,
			DefaultGameMode: opts.DefaultGameMode,
			OnlineMode:      opts.OnlineMode,
			Codec:           opts.Codec,
			Dimension:       opts.Dimension,
			Recipes:         opts.Recipes,
			Tags:            opts.Tags,
			Commands:        opts.Commands,
		},
		world:    world.New(opts.WorldName, seedBytes),
		stopCh:   make(chan struct{}),
		sessions: make(map[int32]*conn.Session),
	}
}

// Settings implements conn.Server.
func (s *Server) Settings() conn.Settings { return s.settings }

// World implements conn.Server.
func (s *Server) World() *world.World { return s.world }

// Register implements conn.Server: wraps p as a world entity, allocates
// it a random id, and tracks a new Session for broadcast/keep-alive.
func (s *Server) Register(p *player.Player) (*world.Entity, *conn.Session) {
	entity := world.NewPlayerEntity(p)
	id := s.world.RegisterEntity(entity)

	session := conn.NewSession(p, entity, id)

	s.mu.Lock()
	s.sessions[id] = session
	s.mu.Unlock()

	return entity, session
}

// Unregister implements conn.Server.
func (s *Server) Unregister(session *conn.Session) {
	s.mu.Lock()
	delete(s.sessions, session.EntityID)
	s.mu.Unlock()
	s.world.RemoveEntity(session.EntityID)
	log.Printf("%s left", session.Player.Username)
}

// snapshot returns a copy of the session table, released before any
// per-session send — the same discipline world.World.Snapshot documents
// (spec.md §5).
func (s *Server) snapshot() []*conn.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*conn.Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		out = append(out, session)
	}
	return out
}

// Broadcast implements conn.Server.
func (s *Server) Broadcast(msg chat.Message, position chat.Position, sender [16]byte) {
	frame, err := buildFrame(func(w io.Writer) error {
		return packet.WriteChatMessage(w, msg, position, sender)
	})
	if err != nil {
		log.Printf("broadcast: %v", err)
		return
	}
	for _, session := range s.snapshot() {
		session.Send(frame)
	}
}

// Start begins listening and accepting connections, generalizing the
// teacher's Server.Start/acceptLoop.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.settings.Address)
	if err != nil {
		return fmt.Errorf("gameserver: listen on %s: %w", s.settings.Address, err)
	}
	s.listener = listener
	log.Printf("Server listening on %s", s.settings.Address)

	go s.acceptLoop()
	go s.keepAliveLoop()
	return nil
}

// Stop closes the listener and every active session's connection.
func (s *Server) Stop() {
	close(s.stopCh)
	if s.listener != nil {
		s.listener.Close()
	}
	for _, session := range s.snapshot() {
		session.Close()
		if session.Player != nil && session.Player.Conn != nil {
			session.Player.Conn.Close()
		}
	}
}

func (s *Server) acceptLoop() {
	for {
		rawConn, err := s.listener.Accept()
		if err != nil {
			select {
			case <-s.stopCh:
				return
			default:
				log.Printf("accept error: %v", err)
				continue
			}
		}
		go s.handle(rawConn)
	}
}

func (s *Server) handle(rawConn net.Conn) {
	err := conn.Serve(rawConn, s)
	switch protoerr.KindOf(err) {
	case protoerr.GracefulExit, protoerr.Recoverable:
	default:
		log.Printf("connection error: %v", err)
	}
}

func (s *Server) keepAliveLoop() {
	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.sendKeepAlives()
		}
	}
}

func (s *Server) sendKeepAlives() {
	now := time.Now()
	for _, session := range s.snapshot() {
		id := now.UnixNano()
		session.Entity.Lock()
		if p, err := session.Entity.Player(); err == nil {
			p.KeepAlive.LastID = id
			p.KeepAlive.SentAt = now.UnixNano()
		}
		session.Entity.Unlock()

		frame, err := buildFrame(func(w io.Writer) error {
			return packet.WriteKeepAlive(w, id)
		})
		if err != nil {
			continue
		}
		session.Send(frame)
	}
}
