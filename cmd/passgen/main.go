package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/handler"
	"github.com/vaultpass/passgen/internal/output"
	"github.com/vaultpass/passgen/internal/service"
)

func main() {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg := config.Load()
	level.Set(cfg.LogLevel)

	genService := service.NewGeneratorService(
		service.WithDefaults(cfg.Length, cfg.Count),
		service.WithHasher(crypto.NewHasher(cfg.Hash)),
		service.WithLogger(logger),
	)
	genHandler := handler.NewGeneratorHandler(genService, output.SystemClipboard{}, logger)

	app := handler.NewApp(cfg, genHandler, level)
	if err := app.Run(os.Args); err != nil {
		slog.Error("passgen failed", "error", err)
		os.Exit(1)
	}
}
