package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/StoreStation/VibeShitCraft/internal/config"
	"github.com/StoreStation/VibeShitCraft/internal/gameserver"
	"github.com/StoreStation/VibeShitCraft/internal/registry"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file (optional)")
	address := flag.String("address", "", "Server address to listen on (overrides config)")
	maxPlayers := flag.Int("max-players", 0, "Maximum number of players (overrides config)")
	motd := flag.String("motd", "", "Server MOTD (overrides config)")
	seed := flag.Int64("seed", 0, "World seed (0 = random, overrides config)")
	defaultGameMode := flag.String("default-gamemode", "", "Default game mode: survival, creative, adventure, spectator (overrides config)")
	onlineMode := flag.Bool("online-mode", false, "Require Mojang session verification (unsupported; every login is refused if true)")
	biomeOverrides := flag.String("biome-overrides", "", "Path to an optional YAML biome override table")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	if *address != "" {
		cfg.Address = *address
	}
	if *maxPlayers != 0 {
		cfg.MaxPlayers = *maxPlayers
	}
	if *motd != "" {
		cfg.MOTD = *motd
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *defaultGameMode != "" {
		cfg.DefaultGameMode = *defaultGameMode
	}
	if *onlineMode {
		cfg.OnlineMode = true
	}

	codec := registry.DefaultDimensionCodec()
	if *biomeOverrides != "" {
		loaded, err := registry.LoadBiomeOverrides(*biomeOverrides, codec)
		if err != nil {
			log.Fatalf("Failed to load biome overrides: %v", err)
		}
		codec = loaded
	}

	srv := gameserver.New(gameserver.Options{
		Address:         cfg.Address,
		MaxPlayers:      cfg.MaxPlayers,
		MOTD:            cfg.MOTD,
		Seed:            cfg.Seed,
		DefaultGameMode: cfg.GameMode(),
		OnlineMode:      cfg.OnlineMode,
		ViewDistance:    cfg.ViewDistance,
		WorldName:       cfg.WorldName,
		Codec:           codec,
		Dimension:       registry.DefaultOverworld(),
		Recipes:         registry.DefaultRecipes(),
		Tags:            registry.DefaultTags(),
		Commands:        registry.DefaultCommandGraph(),
	})
	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Printf("VibeShitCraft server started (Minecraft 1.14.4, Protocol %d)", config.ProtocolVersion)
	log.Printf("Address: %s | Max Players: %d", cfg.Address, cfg.MaxPlayers)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Printf("Shutting down server (received signal: %v)...", sig)

	srv.Stop()
	log.Println("Server stopped.")
}
