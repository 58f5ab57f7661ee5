// Command scheduler runs the daily insurance package status recalculation
// and serves /healthz and /metrics on the ops listener. It stops on SIGINT
// or SIGTERM.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/insurance-admin/internal/app"
)

func main() {
	if err := run(); err != nil {
		slog.Error("scheduler failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx)
}
