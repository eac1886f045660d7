package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/katalvlaran/lvwords/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		logging.New(os.Stderr, slog.LevelError).Error("command failed", "error", err)
		os.Exit(1)
	}
}
