package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/iwat/profiledesk/internal/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.RootCmd(cmd.NewAppBuilder()).ExecuteContext(ctx); err != nil {
		slog.Error("command failed", "error", err)
		stop()
		os.Exit(1)
	}
}
