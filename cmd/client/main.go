package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/streetbite/streetbite/internal/client/cli"
	"github.com/streetbite/streetbite/internal/client/config"
	"github.com/streetbite/streetbite/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	ctx := context.Background()
	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
