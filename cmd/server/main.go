package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/edvora/internal/logging"
	"github.com/dmitrijs2005/edvora/internal/server"
	"github.com/dmitrijs2005/edvora/internal/server/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewJSONLogger(os.Stdout, slog.LevelInfo)

	app := server.NewApp(ctx, cfg, logger)
	app.Run(ctx)
}
