// Command recalc-packages runs one package status recalculation pass and
// exits. It is intended to be invoked by an external cron job when the
// long-running scheduler is not deployed.
//
// Exit codes: 0 = success, 1 = error or at least one package failed.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/heartmarshall/insurance-admin/internal/adapter/postgres"
	"github.com/heartmarshall/insurance-admin/internal/app"
	"github.com/heartmarshall/insurance-admin/internal/config"
	"github.com/heartmarshall/insurance-admin/internal/domain"
	"github.com/heartmarshall/insurance-admin/internal/service/insurancepackage"
	"github.com/heartmarshall/insurance-admin/pkg/ctxutil"
)

var errPackagesFailed = errors.New("some packages failed to recalculate")

type recalculator interface {
	RecalculateStatuses(ctx context.Context) (insurancepackage.RecalcResult, error)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if err := run(cfg, logger); err != nil {
		logger.Error("package status recalculation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Scheduler.Timeout)
	defer cancel()
	ctx = ctxutil.WithActor(ctx, domain.SystemActor)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	svc := app.NewServices(logger, pool, cfg)
	return recalculate(ctx, logger, svc.Packages)
}

func recalculate(ctx context.Context, logger *slog.Logger, r recalculator) error {
	result, err := r.RecalculateStatuses(ctx)
	if err != nil {
		return fmt.Errorf("recalculate after %d packages: %w", result.Scanned, err)
	}

	logger.Info("package status recalculation completed",
		slog.Int("scanned", result.Scanned),
		slog.Int("updated", result.Updated),
		slog.Int("unchanged", result.Unchanged),
		slog.Int("failed", result.Failed),
	)
	if result.Failed > 0 {
		return fmt.Errorf("%d of %d: %w", result.Failed, result.Scanned, errPackagesFailed)
	}
	return nil
}
