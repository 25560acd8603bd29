package main

import (
	"context"
	"os"

	"github.com/vytor/edugame/cmd/edugame-cli/commands"
	"github.com/vytor/edugame/internal/config"
	"github.com/vytor/edugame/internal/logger"
)

func main() {
	cfg := config.Load()
	logger.SetDefault(logger.New(
		logger.WithOutput(os.Stderr),
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	))

	commands.ExecuteContext(context.Background(), cfg)
}
