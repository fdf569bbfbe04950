package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/project-admin/config"
	"github.com/GoSim-25-26J-441/project-admin/internal/bootstrap"
	"github.com/GoSim-25-26J-441/project-admin/internal/logging"
	"github.com/GoSim-25-26J-441/project-admin/internal/storage/postgres"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the admin HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx)
		},
	}
}

// loadEnv reads configuration and sets up logging and the gin mode.
func loadEnv() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logging.Init(cfg.App.LogLevel)
	bootstrap.SetGinMode(cfg.App.Environment)
	return cfg, nil
}

func openDatabase(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, *sql.DB, error) {
	pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{
		DSN:      postgres.DSN(&cfg.Database),
		MaxConns: cfg.Database.MaxConns,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return pool, postgres.NewConnection(pool), nil
}

func serve(ctx context.Context) error {
	cfg, err := loadEnv()
	if err != nil {
		return err
	}

	pool, db, err := openDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()
	defer db.Close()

	rdb, err := bootstrap.OpenRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	}

	svc, err := bootstrap.BuildProjectService(db, rdb, cfg)
	if err != nil {
		return err
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "project-admin",
		Version:     cfg.App.Version,
		DB:          pool,
		Redis:       rdb,
		Projects:    svc,
		Admin:       cfg.Admin,
		CORSOrigins: cfg.Server.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.Server.Port, "env", cfg.App.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	slog.Info("server exited")
	return nil
}
