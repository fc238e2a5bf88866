// Package config loads VibeShitCraft's server settings: the teacher's flat
// flag-populated Config struct (cmd/server/main.go), extended with a TOML
// file layer loaded first and then overridden by any flag the operator
// actually passed.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"

	"github.com/StoreStation/VibeShitCraft/internal/player"
)

// ProtocolVersion is fixed at 498 (spec.md §1); unlike the teacher's
// protocol-47 constant this is never a flag.
const ProtocolVersion = 498

// Config holds server configuration, generalized from the teacher's
// server.Config (pkg/server/server.go) with the fields spec.md's Play
// session and registry defaults need.
type Config struct {
	Address         string `toml:"address"`
	MaxPlayers      int    `toml:"max_players"`
	MOTD            string `toml:"motd"`
	Seed            int64  `toml:"seed"`
	DefaultGameMode string `toml:"default_gamemode"`
	OnlineMode      bool   `toml:"online_mode"`
	ViewDistance    int32  `toml:"view_distance"`
	WorldName       string `toml:"world_name"`
}

// Default mirrors the teacher's DefaultConfig, with the new fields this
// design adds.
func Default() Config {
	return Config{
		Address:         ":25565",
		MaxPlayers:      20,
		MOTD:            "A VibeShitCraft Server",
		DefaultGameMode: "survival",
		ViewDistance:    10,
		WorldName:       "world",
	}
}

// LoadFile reads a TOML config file at path into a copy of Default,
// leaving any field absent from the file at its default value. A missing
// file is not an error: the caller falls back to flags alone, the same
// as the teacher running with no config at all.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// GameMode resolves the configured default game mode string, falling
// back to survival on an unrecognized value.
func (c Config) GameMode() player.GameMode {
	mode, ok := player.ParseGameMode(c.DefaultGameMode)
	if !ok {
		return player.GameModeSurvival
	}
	return mode
}
