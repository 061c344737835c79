package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	httpapi "temple-chambers/internal/api/http"
	"temple-chambers/internal/api/ws"
	"temple-chambers/internal/config"
	"temple-chambers/internal/observability"
	"temple-chambers/internal/room"
	"temple-chambers/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	mem := store.NewMemoryStore()
	rm := room.NewManager(mem, cfg.Game, logger)
	hub := ws.NewHub(rm, logger)
	rm.SetBroadcaster(hub)

	r := httpapi.SetupRouter(rm, hub)

	logger.Info("listening", zap.String("addr", cfg.HTTPAddr))
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
