package conn

import (
	"encoding/json"
	"net"

	"github.com/StoreStation/VibeShitCraft/internal/packet"
	"github.com/StoreStation/VibeShitCraft/internal/protoerr"
)

// statusSample is one entry of the players.sample array a client uses to
// render the hover tooltip. This server never populates it with real
// players, but the field must still marshal as [] rather than null.
type statusSample struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// statusResponse is the JSON body of a server-list ping reply.
type statusResponse struct {
	Version struct {
		Name     string `json:"name"`
		Protocol int32  `json:"protocol"`
	} `json:"version"`
	Players struct {
		Max    int            `json:"max"`
		Online int            `json:"online"`
		Sample []statusSample `json:"sample"`
	} `json:"players"`
	Description struct {
		Text string `json:"text"`
	} `json:"description"`
}

// handleStatusFrame processes one Status-state frame, generalizing the
// teacher's handleStatusRequest/handlePing pair. It reports done=true
// once a Ping has been answered, since the protocol closes the
// connection right after (spec.md §4.3).
func handleStatusFrame(conn net.Conn, fr *packet.Frame, srv Server) (done bool, err error) {
	switch fr.ID {
	case packet.ServerboundStatusRequest:
		settings := srv.Settings()
		var resp statusResponse
		resp.Version.Name = VersionName
		resp.Version.Protocol = settings.ProtocolVersion
		resp.Players.Max = settings.MaxPlayers
		resp.Players.Online = srv.World().PlayerCount()
		resp.Players.Sample = []statusSample{}
		resp.Description.Text = settings.MOTD

		body, jsonErr := json.Marshal(resp)
		if jsonErr != nil {
			return false, protoerr.WrapFatal(jsonErr)
		}
		if err := packet.WriteStatusResponse(conn, string(body)); err != nil {
			return false, protoerr.WrapRecoverable(err)
		}
		return false, nil

	case packet.ServerboundPing:
		payload, err := packet.DecodePing(fr.Reader())
		if err != nil {
			return false, protoerr.WrapFatal(err)
		}
		if err := packet.WritePong(conn, payload); err != nil {
			return false, protoerr.WrapRecoverable(err)
		}
		return true, nil

	default:
		return false, protoerr.Recoverablef("conn: unexpected status-state id 0x%02X", fr.ID)
	}
}
