package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/streetbite/streetbite/internal/logging"
	"github.com/streetbite/streetbite/internal/mockapi"
)

func main() {
	cfg, err := mockapi.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.NewTextLogger(os.Stdout, slog.LevelInfo)

	store := mockapi.NewStore()
	tokens := mockapi.NewTokenService(cfg.JWTSecret, cfg.AccessTTL)
	router := mockapi.NewRouter(store, tokens, logger)

	logger.Info(context.Background(), "mock backend listening", "addr", cfg.Addr)
	if err := router.Run(cfg.Addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
