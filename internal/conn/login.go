package conn

import (
	"bufio"
	"net"

	"github.com/StoreStation/VibeShitCraft/internal/packet"
	"github.com/StoreStation/VibeShitCraft/internal/player"
	"github.com/StoreStation/VibeShitCraft/internal/protoerr"
)

// handleLogin completes the offline-mode-only login handshake — no
// encryption request, no Mojang session check (spec.md §1 Non-goals) —
// and then hands off into the Play state. Generalizes the teacher's
// handleLoginStart (pkg/server/server.go), which already skips
// encryption entirely since protocol-47 offline mode does the same.
func handleLogin(rawConn net.Conn, br *bufio.Reader, fr *packet.Frame, srv Server) error {
	if srv.Settings().OnlineMode {
		return protoerr.Fatalf("conn: online-mode login is not supported by this server")
	}
	if fr.ID != packet.ServerboundLoginStart {
		return protoerr.Fatalf("conn: expected LoginStart, got id 0x%02X", fr.ID)
	}
	start, err := packet.DecodeLoginStart(fr.Reader())
	if err != nil {
		return protoerr.WrapFatal(err)
	}
	if start.Username == "" {
		return protoerr.Recoverablef("conn: empty username at login")
	}

	id := player.OfflineUUID(start.Username)
	if err := packet.WriteLoginSuccess(rawConn, id, start.Username); err != nil {
		return protoerr.WrapRecoverable(err)
	}

	// JoinGame, the brand PluginMessage, ChangeDifficulty, and
	// PlayerAbilities follow in that order once Play begins
	// (spec.md §4.3 Login handler, scenario 3).
	return enterPlay(rawConn, br, srv, start.Username, id)
}
