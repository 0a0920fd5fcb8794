package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mediscan-kh/mediscan/gen/ent"
	"github.com/mediscan-kh/mediscan/internal/common"
	"github.com/mediscan-kh/mediscan/internal/export"
	"github.com/mediscan-kh/mediscan/internal/llm/gemini"
	"github.com/mediscan-kh/mediscan/internal/quota"
	"github.com/mediscan-kh/mediscan/internal/queue"
	repo "github.com/mediscan-kh/mediscan/internal/repository"
	"github.com/mediscan-kh/mediscan/internal/server"
	"github.com/mediscan-kh/mediscan/internal/storage"
	"github.com/mediscan-kh/mediscan/internal/uploads"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- DB
	var (
		entc *ent.Client
		pool *pgxpool.Pool
		err  error
	)
	switch cfg.Database.Driver {
	case "sqlite":
		entc, err = repo.OpenSQLite(cfg.Database.DSN, logger)
	default:
		entc, pool, err = repo.Open(ctx, repo.Config{
			DSN:              cfg.Database.DSN,
			MaxConns:         cfg.Database.MaxConns,
			MinConns:         cfg.Database.MinConns,
			MaxConnLifetime:  cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
			DialTimeout:      cfg.Database.DialTimeout,
			StatementTimeout: cfg.Database.StatementTimeout,
		}, logger)
	}
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.Migrate(ctx, entc, logger); err != nil {
		logger.Error("migrate db", "error", err)
		os.Exit(1)
	}

	// --- repos
	usersRepo := repo.NewUserRepository(entc, logger)
	imagesRepo := repo.NewImageRepository(entc, logger)
	jobsRepo := repo.NewAnalysisJobRepository(entc, logger)

	// --- blob store
	var store storage.ObjectStore
	switch cfg.Storage.Backend {
	case "file":
		store, err = storage.NewFilestore(cfg.Storage.FileRoot, cfg.Storage.FileBaseURL, logger)
	default:
		store, err = storage.NewS3Store(ctx, cfg.Storage.S3Bucket, cfg.Storage.S3Region, cfg.Storage.S3BaseURL, logger)
	}
	if err != nil {
		logger.Error("init blob store", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}

	// --- analysis capability
	analyzer := gemini.NewClient(gemini.Config{
		APIKey:   cfg.Gemini.APIKey,
		BaseURL:  cfg.Gemini.BaseURL,
		Model:    cfg.Gemini.Model,
		Timeout:  cfg.Gemini.Timeout,
		Language: cfg.Gemini.Language,
	}, logger)

	// --- worker queue
	workQueue := queue.NewWorkerQueue(analyzer, imagesRepo, jobsRepo, logger,
		queue.WithWorkers(cfg.Queue.Workers),
		queue.WithQueueSize(cfg.Queue.QueueSize),
		queue.WithProcessTimeout(cfg.Queue.ProcessTimeout),
		queue.WithBaseDelay(cfg.Queue.BaseDelay),
		queue.WithMaxAttempts(cfg.Queue.MaxAttempts),
	)
	if err := workQueue.Recover(ctx); err != nil {
		logger.Error("recover unfinished jobs", "error", err)
		os.Exit(1)
	}

	// --- services
	ledger := quota.NewLedger(usersRepo, cfg.Quota.FreeUploadLimit, logger)
	uploadsSvc := uploads.NewService(
		usersRepo, imagesRepo, jobsRepo,
		store, workQueue, ledger, analyzer,
		cfg.Queue.AnalyzeInline, logger,
	)
	exportSvc := export.NewService(imagesRepo, logger)

	ping := func(ctx context.Context) error {
		if pool != nil {
			return repo.HealthCheck(ctx, pool, 3*time.Second, logger)
		}
		return nil
	}

	srv := server.New(uploadsSvc, exportSvc, imagesRepo, ping, logger)
	httpServer := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           srv.NewRouter(cfg.Server.JWTSecret),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("http serving", "addr", cfg.Server.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", "error", err)
	}
	workQueue.Shutdown(shutdownCtx)
	logger.Info("stopped")
}
