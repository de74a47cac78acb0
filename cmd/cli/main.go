package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/vibelook/vibelook/internal/buildinfo"
	"github.com/vibelook/vibelook/internal/client/cli"
	"github.com/vibelook/vibelook/internal/client/config"
	"github.com/vibelook/vibelook/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app := cli.NewApp(cfg, log)
	app.Run(ctx)
}
