package conn

import (
	"bufio"
	"bytes"
	"io"
	"log"
	"math/rand"
	"net"
	"time"

	"github.com/StoreStation/VibeShitCraft/internal/chat"
	"github.com/StoreStation/VibeShitCraft/internal/packet"
	"github.com/StoreStation/VibeShitCraft/internal/player"
	"github.com/StoreStation/VibeShitCraft/internal/protoerr"
	"github.com/StoreStation/VibeShitCraft/internal/world"
)

// spawnX/spawnY/spawnZ are the fixed point every player joins at, standing atop
// the uniform stub column's grass layer (world.UniformColumn puts grass
// at y=4, world generation itself being out of scope per spec.md §1).
const (
	spawnX = 8.0
	spawnY = 5.0
	spawnZ = 8.0
)

// enterPlay builds the Player, registers it with the server, and runs
// the Play-state session to completion. Generalizes the teacher's
// handlePlay (pkg/server/server.go) from its inline packet construction
// to the internal/packet catalogue, and from a monotonic entity-id
// counter to the world's random-id RegisterEntity.
func enterPlay(rawConn net.Conn, br *bufio.Reader, srv Server, username string, id [16]byte) error {
	settings := srv.Settings()
	p := player.New(username, settings.DefaultGameMode, spawnX, spawnY, spawnZ)
	p.UUID = id
	p.Conn = rawConn

	_, session := srv.Register(p)
	defer srv.Unregister(session)
	defer session.Close()

	go writeLoop(rawConn, session)

	if err := sendJoinBatch(session, srv, settings, session.EntityID); err != nil {
		return protoerr.WrapFatal(err)
	}

	log.Printf("%s joined (entity id %d, uuid %x)", username, session.EntityID, id)

	for {
		rawConn.SetReadDeadline(time.Now().Add(readTimeout))
		fr, err := packet.ReadFrame(br)
		if err != nil {
			return protoerr.Exit()
		}
		if err := dispatchPlayFrame(fr, session, srv, settings); err != nil {
			if protoerr.KindOf(err) == protoerr.Fatal {
				return err
			}
			log.Printf("play: %v", err)
		}
	}
}

// resolveEntity looks session's entity up in the world's entity table by
// id rather than trusting session.Entity's cached pointer, so a handler
// always observes the table a concurrent RemoveEntity might have acted
// on. A session's own entity going missing means the world and session
// tables have diverged — fatal, not recoverable.
func resolveEntity(srv Server, session *Session) (*world.Entity, error) {
	entity, ok := srv.World().GetEntity(session.EntityID)
	if !ok {
		return nil, protoerr.Fatalf("conn: entity %d missing from world table", session.EntityID)
	}
	return entity, nil
}

// writeLoop is the single goroutine allowed to write to rawConn once
// Play begins, draining session's outbound queue.
func writeLoop(rawConn net.Conn, session *Session) {
	for {
		select {
		case <-session.closed:
			return
		case frame := <-session.out:
			if _, err := rawConn.Write(frame); err != nil {
				return
			}
		}
	}
}

func buildFrame(write func(w io.Writer) error) ([]byte, error) {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// sendJoinBatch writes the Login->Play handoff batch spec.md §4.3's
// scenario 3 pins the order of: JoinGame, PluginMessage(brand),
// ChangeDifficulty, PlayerAbilities. The chunk/position packets that
// spec.md's ClientSettings handler lists are deferred to
// sendClientSettingsBatch, fired once the client actually asks for them.
func sendJoinBatch(session *Session, srv Server, settings Settings, entityID int32) error {
	entity, err := resolveEntity(srv, session)
	if err != nil {
		return err
	}
	entity.RLock()
	p, err := entity.Player()
	if err != nil {
		entity.RUnlock()
		return err
	}
	gameMode, abilities := p.GameMode, p.Abilities
	entity.RUnlock()

	params := packet.JoinGameParams{
		EntityID:            entityID,
		IsHardcore:          false,
		GameMode:            gameMode,
		PreviousGameMode:    nil,
		WorldNames:          []string{settings.Dimension.Name},
		Codec:               settings.Codec,
		Dimension:           settings.Dimension,
		WorldName:           settings.WorldName,
		HashedSeed:          srv.World().HashedSeed(),
		MaxPlayers:          int32(settings.MaxPlayers),
		ViewDistance:        settings.ViewDistance,
		ReducedDebugInfo:    false,
		EnableRespawnScreen: true,
		IsDebug:             false,
		IsFlat:              false,
	}
	if err := sendOne(session, func(w io.Writer) error { return packet.WriteJoinGame(w, params) }); err != nil {
		return err
	}
	if err := sendOne(session, func(w io.Writer) error {
		return packet.WritePluginMessageBrand(w, "vibeshitcraft")
	}); err != nil {
		return err
	}
	if err := sendOne(session, func(w io.Writer) error {
		return packet.WriteChangeDifficulty(w, world.DifficultyNormal, false)
	}); err != nil {
		return err
	}
	return sendOne(session, func(w io.Writer) error {
		return packet.WritePlayerAbilities(w, abilities)
	})
}

func sendOne(session *Session, write func(w io.Writer) error) error {
	frame, err := buildFrame(write)
	if err != nil {
		return err
	}
	session.Send(frame)
	return nil
}

// sendClientSettingsBatch replies to ClientSettings with the packet
// sequence spec.md §4.3 pins: HeldItemChange, DeclareRecipes (plus the
// supplemented Tags/Commands registry sync), EntityStatus, UnlockRecipes
// in Init mode, a join chat announcement, UpdateViewPosition, the
// view-distance square of ChunkData, then PlayerPositionAndLook with a
// fresh random teleport id.
func sendClientSettingsBatch(session *Session, srv Server, settings Settings, entity *world.Entity) error {
	entity.RLock()
	p, err := entity.Player()
	if err != nil {
		entity.RUnlock()
		return err
	}
	slot := p.SelectedSlot
	opLevel := p.OperatorLevel
	book := p.RecipeBook
	unlocked := append([]string(nil), p.UnlockedRecipe...)
	username := p.Username
	uuid := p.UUID
	entity.RUnlock()

	if err := sendOne(session, func(w io.Writer) error {
		return packet.WriteHeldItemChange(w, slot)
	}); err != nil {
		return err
	}
	if err := sendOne(session, func(w io.Writer) error {
		return packet.WriteDeclareRecipes(w, settings.Recipes)
	}); err != nil {
		return err
	}
	if err := sendOne(session, func(w io.Writer) error {
		return packet.WriteTags(w, settings.Tags)
	}); err != nil {
		return err
	}
	if err := sendOne(session, func(w io.Writer) error {
		return packet.WriteCommands(w, settings.Commands)
	}); err != nil {
		return err
	}
	if err := sendOne(session, func(w io.Writer) error {
		return packet.WriteEntityStatus(w, session.EntityID, 24+opLevel)
	}); err != nil {
		return err
	}
	if err := sendOne(session, func(w io.Writer) error {
		return packet.WriteUnlockRecipes(w, packet.UnlockRecipesInit, book, unlocked, unlocked)
	}); err != nil {
		return err
	}

	srv.Broadcast(chat.Text(username+" joined the game"), chat.PositionSystemMessage, uuid)

	entity.RLock()
	p, err = entity.Player()
	if err != nil {
		entity.RUnlock()
		return err
	}
	chunkX, chunkZ := p.ChunkX(), p.ChunkZ()
	entity.RUnlock()
	if err := sendOne(session, func(w io.Writer) error {
		return packet.WriteUpdateViewPosition(w, chunkX, chunkZ)
	}); err != nil {
		return err
	}

	if err := sendSpawnChunks(session, settings, chunkX, chunkZ); err != nil {
		return err
	}

	teleportID := rand.Int31()
	entity.Lock()
	p, err = entity.Player()
	if err != nil {
		entity.Unlock()
		return err
	}
	p.TeleportID = teleportID
	pos, look := p.Pos, p.Look
	entity.Unlock()
	return sendOne(session, func(w io.Writer) error {
		return packet.WritePlayerPositionAndLook(w, pos, look, 0, teleportID)
	})
}

// sendSpawnChunks sends the view-distance square of ChunkData packets
// centered on (chunkX, chunkZ), skipping any column whose content hash
// already matches what this session was last sent for that coordinate
// (internal/world.ChunkSendCache).
func sendSpawnChunks(session *Session, settings Settings, chunkX, chunkZ int32) error {
	radius := settings.ViewDistance
	if radius < 0 {
		radius = 0
	}
	col := world.UniformColumn()
	for dz := -radius; dz <= radius; dz++ {
		for dx := -radius; dx <= radius; dx++ {
			x, z := chunkX+dx, chunkZ+dz
			if !session.ChunkCache.ShouldSend(x, z, col) {
				continue
			}
			params := world.EncodeParams{X: x, Z: z, Full: true, BiomeID: 1}
			if err := sendOne(session, func(w io.Writer) error {
				return packet.WriteChunkData(w, col, params)
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

// dispatchPlayFrame handles one serverbound Play packet, generalizing
// the teacher's handlePlayPacket switch (pkg/server/packet_handler.go):
// same "decode, lock, mutate, unlock, maybe reply" shape, new id table —
// the lock now belongs to the session's world.Entity rather than the
// Player struct it wraps, so a lookup through World.GetEntity precedes
// every case (spec.md §3/§5).
func dispatchPlayFrame(fr *packet.Frame, session *Session, srv Server, settings Settings) error {
	entity, err := resolveEntity(srv, session)
	if err != nil {
		return err
	}

	switch fr.ID {
	case packet.ServerboundTeleportConfirm:
		id, err := packet.DecodeTeleportConfirm(fr.Reader())
		if err != nil {
			return protoerr.WrapFatal(err)
		}
		entity.Lock()
		p, err := entity.Player()
		if err != nil {
			entity.Unlock()
			return protoerr.WrapFatal(err)
		}
		p.TeleportID = id
		entity.Unlock()
		return nil

	case packet.ServerboundChatMessage:
		text, err := packet.DecodeChatMessage(fr.Reader())
		if err != nil {
			return protoerr.WrapFatal(err)
		}
		entity.RLock()
		p, err := entity.Player()
		if err != nil {
			entity.RUnlock()
			return protoerr.WrapFatal(err)
		}
		name, uuid := p.Username, p.UUID
		entity.RUnlock()
		srv.Broadcast(chat.Text("<"+name+"> "+text), chat.PositionSystemMessage, uuid)
		return nil

	case packet.ServerboundKeepAlive:
		id, err := packet.DecodeKeepAlive(fr.Reader())
		if err != nil {
			return protoerr.WrapFatal(err)
		}
		entity.Lock()
		p, err := entity.Player()
		if err != nil {
			entity.Unlock()
			return protoerr.WrapFatal(err)
		}
		if id != p.KeepAlive.LastID {
			name := p.Username
			entity.Unlock()
			return protoerr.Fatalf("conn: keep-alive id mismatch from %s", name)
		}
		p.Latency = int32(time.Since(time.Unix(0, p.KeepAlive.SentAt)).Milliseconds())
		entity.Unlock()
		return nil

	case packet.ServerboundPluginMessage:
		msg, err := packet.DecodePluginMessage(fr.Reader())
		if err != nil {
			return protoerr.WrapFatal(err)
		}
		if msg.Channel == packet.BrandChannel {
			if _, err := packet.DecodeBrand(msg.Data); err != nil {
				return protoerr.Recoverablef("conn: malformed brand payload: %v", err)
			}
		}
		return nil

	case packet.ServerboundPlayerPosition, packet.ServerboundPlayerPositionRotation, packet.ServerboundPlayerRotation, packet.ServerboundPlayerMovement:
		return handleMovement(fr, entity)

	case packet.ServerboundHeldItemChange:
		slot, err := packet.DecodeHeldItemChange(fr.Reader())
		if err != nil {
			return protoerr.WrapFatal(err)
		}
		if slot < 0 || slot > 8 {
			return protoerr.Recoverablef("conn: held item slot %d out of range", slot)
		}
		entity.Lock()
		p, err := entity.Player()
		if err != nil {
			entity.Unlock()
			return protoerr.WrapFatal(err)
		}
		p.SelectedSlot = int8(slot)
		entity.Unlock()
		return nil

	case packet.ServerboundClientSettings:
		if _, err := packet.DecodeClientSettings(fr.Reader()); err != nil {
			return protoerr.WrapFatal(err)
		}
		return sendClientSettingsBatch(session, srv, settings, entity)

	case packet.ServerboundSetRecipeBookState:
		state, err := packet.DecodeSetRecipeBookState(fr.Reader())
		if err != nil {
			return protoerr.WrapFatal(err)
		}
		if state.BookID < 0 || int(state.BookID) >= 4 {
			return protoerr.Recoverablef("conn: recipe book id %d out of range", state.BookID)
		}
		entity.Lock()
		p, err := entity.Player()
		if err != nil {
			entity.Unlock()
			return protoerr.WrapFatal(err)
		}
		p.RecipeBook.Open[state.BookID] = state.Open
		p.RecipeBook.Filter[state.BookID] = state.Filter
		entity.Unlock()
		return nil

	case packet.ServerboundClientStatus, packet.ServerboundPlayerAbilities:
		return nil

	default:
		return protoerr.Recoverablef("conn: unhandled play packet id 0x%02X", fr.ID)
	}
}

func handleMovement(fr *packet.Frame, entity *world.Entity) error {
	r := fr.Reader()
	switch fr.ID {
	case packet.ServerboundPlayerPosition:
		x, err := r.Float64()
		if err != nil {
			return protoerr.WrapFatal(err)
		}
		y, err := r.Float64()
		if err != nil {
			return protoerr.WrapFatal(err)
		}
		z, err := r.Float64()
		if err != nil {
			return protoerr.WrapFatal(err)
		}
		onGround, err := r.Bool()
		if err != nil {
			return protoerr.WrapFatal(err)
		}
		entity.Lock()
		p, err := entity.Player()
		if err != nil {
			entity.Unlock()
			return protoerr.WrapFatal(err)
		}
		p.Pos = player.Position{X: x, Y: y, Z: z, OnGround: onGround}
		entity.Unlock()
		return nil

	case packet.ServerboundPlayerPositionRotation:
		pr, err := packet.DecodePlayerPositionAndRotation(r)
		if err != nil {
			return protoerr.WrapFatal(err)
		}
		entity.Lock()
		p, err := entity.Player()
		if err != nil {
			entity.Unlock()
			return protoerr.WrapFatal(err)
		}
		p.Pos = player.Position{X: pr.X, Y: pr.Y, Z: pr.Z, OnGround: pr.OnGround}
		p.Look = player.Look{Yaw: pr.Yaw, Pitch: pr.Pitch}
		entity.Unlock()
		return nil

	case packet.ServerboundPlayerRotation:
		yaw, err := r.Float32()
		if err != nil {
			return protoerr.WrapFatal(err)
		}
		pitch, err := r.Float32()
		if err != nil {
			return protoerr.WrapFatal(err)
		}
		onGround, err := r.Bool()
		if err != nil {
			return protoerr.WrapFatal(err)
		}
		entity.Lock()
		p, err := entity.Player()
		if err != nil {
			entity.Unlock()
			return protoerr.WrapFatal(err)
		}
		p.Look = player.Look{Yaw: yaw, Pitch: pitch}
		p.Pos.OnGround = onGround
		entity.Unlock()
		return nil

	default: // ServerboundPlayerMovement
		onGround, err := r.Bool()
		if err != nil {
			return protoerr.WrapFatal(err)
		}
		entity.Lock()
		p, err := entity.Player()
		if err != nil {
			entity.Unlock()
			return protoerr.WrapFatal(err)
		}
		p.Pos.OnGround = onGround
		entity.Unlock()
		return nil
	}
}
