package conn

import (
	"bufio"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/StoreStation/VibeShitCraft/internal/packet"
	"github.com/StoreStation/VibeShitCraft/internal/proto"
	"github.com/StoreStation/VibeShitCraft/internal/protoerr"
)

// readTimeout bounds how long a connection may sit idle before a frame
// read fails, matching the teacher's 30s SetReadDeadline in
// handleConnection (pkg/server/server.go).
const readTimeout = 30 * time.Second

// Serve drives one connection through Handshaking -> Status|Login ->
// Play -> Exit, generalizing the teacher's handleConnection dispatch
// loop. It always returns a non-nil error: a protoerr GracefulExit on an
// orderly close, otherwise the error that ended the connection; callers
// use protoerr.KindOf to decide whether to log it.
func Serve(rawConn net.Conn, srv Server) error {
	defer rawConn.Close()

	br := bufio.NewReader(rawConn)

	rawConn.SetReadDeadline(time.Now().Add(readTimeout))
	first, err := proto.PeekByte(br)
	if err != nil {
		return protoerr.Exit()
	}
	if first == packet.LegacyPingOpcode {
		return handleLegacyPing(rawConn, br, srv)
	}

	state := StateHandshaking
	for {
		rawConn.SetReadDeadline(time.Now().Add(readTimeout))
		fr, err := packet.ReadFrame(br)
		if err != nil {
			if state == StatePlay {
				return protoerr.Exit()
			}
			return protoerr.WrapRecoverable(err)
		}

		switch state {
		case StateHandshaking:
			next, err := handleHandshake(fr)
			if err != nil {
				return err
			}
			state = next

		case StateStatus:
			done, err := handleStatusFrame(rawConn, fr, srv)
			if err != nil {
				return err
			}
			if done {
				return protoerr.Exit()
			}

		case StateLogin:
			return handleLogin(rawConn, br, fr, srv)

		default:
			return protoerr.Fatalf("conn: frame received in state %s", state)
		}
	}
}

func handleHandshake(fr *packet.Frame) (State, error) {
	if fr.ID != packet.ServerboundHandshake {
		return StateHandshaking, protoerr.Recoverablef("conn: expected Handshake, got id 0x%02X", fr.ID)
	}
	hs, err := packet.DecodeHandshake(fr.Reader())
	if err != nil {
		return StateHandshaking, protoerr.WrapFatal(err)
	}
	switch hs.NextState {
	case 1:
		return StateStatus, nil
	case 2:
		return StateLogin, nil
	default:
		return StateHandshaking, protoerr.Recoverablef("conn: invalid handshake next_state %d", hs.NextState)
	}
}

func handleLegacyPing(conn net.Conn, br *bufio.Reader, srv Server) error {
	// Drain the legacy ping's single opcode byte; the remaining payload
	// layout is unused by this server and the client expects only the
	// kick reply, not a read of its request fields.
	if _, err := br.ReadByte(); err != nil {
		return protoerr.Exit()
	}

	settings := srv.Settings()
	online := srv.World().PlayerCount()
	// "§1\0<protocol>\0<version>\0<motd>\0<online>\0<max>" (spec.md §4.3
	// Handshaking handlers, scenario 2): the §1 prefix is what the
	// pre-netty client keys off of to parse the extended fields.
	fields := []string{
		"§1",
		strconv.Itoa(int(settings.ProtocolVersion)),
		VersionName,
		settings.MOTD,
		strconv.Itoa(online),
		strconv.Itoa(settings.MaxPlayers),
	}
	kick := strings.Join(fields, "\x00")
	if err := packet.WriteLegacyKick(conn, kick); err != nil {
		return protoerr.WrapRecoverable(err)
	}
	return protoerr.Exit()
}
