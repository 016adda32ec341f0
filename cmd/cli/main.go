package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/edvora/internal/client/cli"
	"github.com/dmitrijs2005/edvora/internal/client/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	cli.NewApp(cfg).Run(ctx)
}
