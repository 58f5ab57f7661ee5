package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/insurance-admin/internal/adapter/directory"
	"github.com/heartmarshall/insurance-admin/internal/adapter/postgres"
	claimrepo "github.com/heartmarshall/insurance-admin/internal/adapter/postgres/claim"
	companyrepo "github.com/heartmarshall/insurance-admin/internal/adapter/postgres/company"
	enrollmentrepo "github.com/heartmarshall/insurance-admin/internal/adapter/postgres/enrollment"
	packagerepo "github.com/heartmarshall/insurance-admin/internal/adapter/postgres/insurancepackage"
	planrepo "github.com/heartmarshall/insurance-admin/internal/adapter/postgres/plan"
	revisionrepo "github.com/heartmarshall/insurance-admin/internal/adapter/postgres/revision"
	userrepo "github.com/heartmarshall/insurance-admin/internal/adapter/postgres/user"
	"github.com/heartmarshall/insurance-admin/internal/adapter/redis"
	"github.com/heartmarshall/insurance-admin/internal/app/scheduler"
	"github.com/heartmarshall/insurance-admin/internal/config"
	"github.com/heartmarshall/insurance-admin/internal/domain"
	"github.com/heartmarshall/insurance-admin/internal/service/claim"
	"github.com/heartmarshall/insurance-admin/internal/service/company"
	"github.com/heartmarshall/insurance-admin/internal/service/enrollment"
	"github.com/heartmarshall/insurance-admin/internal/service/history"
	"github.com/heartmarshall/insurance-admin/internal/service/insurancepackage"
	"github.com/heartmarshall/insurance-admin/internal/service/plan"
	"github.com/heartmarshall/insurance-admin/internal/service/user"
	"github.com/heartmarshall/insurance-admin/internal/transport/rest"
)

// Run is the entry point of the scheduler process. It loads configuration,
// connects to PostgreSQL and the optional Redis, and runs the daily package
// status recalculation next to the ops listener until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting scheduler",
		slog.String("version", BuildVersion()),
		slog.String("run_at", cfg.Scheduler.RunAt),
		slog.Bool("run_on_start", cfg.Scheduler.RunOnStart),
		slog.Bool("redis_lock", cfg.Redis.Enabled()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	checks := []rest.Check{{Name: "postgres", Ping: pool.Ping}}

	var lock interface {
		Acquire(ctx context.Context, day time.Time) (bool, error)
	}
	rdb, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	if rdb != nil {
		defer rdb.Close()
		lock = redis.NewDailyLock(rdb, cfg.Redis.LockTTL)
		checks = append(checks, rest.Check{Name: "redis", Ping: func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}})
	}

	svc := NewServices(logger, pool, cfg)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	sched := scheduler.New(logger, svc.Packages, lock, scheduler.NewMetrics(reg), scheduler.Options{
		Hour:       cfg.Scheduler.Hour,
		Minute:     cfg.Scheduler.Minute,
		RunOnStart: cfg.Scheduler.RunOnStart,
		Timeout:    cfg.Scheduler.Timeout,
	})

	srv := &http.Server{
		Addr:              cfg.Ops.Addr(),
		Handler:           rest.NewOpsRouter(logger, rest.NewHealthHandler(Version, checks...), reg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sched.Run(gctx)
	})
	g.Go(func() error {
		logger.Info("ops listener started", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("ops listener: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Ops.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	logger.Info("scheduler exited")
	return err
}

// Services is the set of application services sharing one pool and one
// transaction manager.
type Services struct {
	Companies   *company.Service
	Users       *user.Service
	Packages    *insurancepackage.Service
	Plans       *plan.Service
	Enrollments *enrollment.Service
	Claims      *claim.Service
	History     *history.Service
}

// NewServices wires repositories and services over pool. The directory is
// built from cfg.Directory; without a base URL accounts are not provisioned.
func NewServices(logger *slog.Logger, pool *pgxpool.Pool, cfg *config.Config) *Services {
	tx := postgres.NewTxManager(pool)

	companies := companyrepo.New(pool)
	users := userrepo.New(pool)
	packages := packagerepo.New(pool)
	plans := planrepo.New(pool)
	enrollments := enrollmentrepo.New(pool)
	claims := claimrepo.New(pool)
	revisions := revisionrepo.New(pool)

	return &Services{
		Companies:   company.NewService(logger, companies, users, revisions, tx),
		Users:       user.NewService(logger, users, companies, newDirectory(logger, cfg.Directory), revisions, tx),
		Packages:    insurancepackage.NewService(logger, packages, companies, revisions, tx, cfg.Scheduler.BatchSize),
		Plans:       plan.NewService(logger, plans, packages, revisions, tx),
		Enrollments: enrollment.NewService(logger, enrollments, users, plans, revisions, tx),
		Claims:      claim.NewService(logger, claims, users, enrollments, revisions, tx),
		History:     history.NewService(logger, revisions),
	}
}

type accountDirectory interface {
	CreateAccount(ctx context.Context, u *domain.User) error
	UpdateAccount(ctx context.Context, u *domain.User) error
	SendInvitation(ctx context.Context, u *domain.User) error
}

func newDirectory(logger *slog.Logger, cfg config.DirectoryConfig) accountDirectory {
	if !cfg.Enabled() {
		return directory.NewDisabled(logger)
	}
	return directory.NewClient(cfg, logger)
}
