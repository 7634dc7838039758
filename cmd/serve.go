package main

import (
	"context"
	"dorker/internal/api"
	"dorker/internal/api/handler/v1handler"
	"dorker/internal/config"
	"dorker/internal/dorkgen"
	"dorker/internal/dorks"
	"dorker/pkg/logger"
	"dorker/pkg/tracing"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

func setupTracing(ctx context.Context, cfg *config.Config) (*sdktrace.TracerProvider, func(ctx context.Context)) {
	tp, err := tracing.NewProvider(tracing.Options{Exporter: cfg.Tracing.Exporter})
	if err != nil {
		logger.Fatal(ctx, "could not create tracer provider", zap.Error(err))
	}
	otel.SetTracerProvider(tp)
	logger.Info(ctx, "tracing enabled", zap.String("exporter", cfg.Tracing.Exporter))

	return tp, func(ctx context.Context) {
		logger.Info(ctx, "stopping tracer provider...")
		if err := tp.Shutdown(ctx); err != nil {
			logger.Warn(ctx, "could not stop tracer provider", zap.Error(err))
		}
	}
}

func setupServer(ctx context.Context, cfg *config.Config, db *database, tp trace.TracerProvider) func(ctx context.Context) {
	opts := api.NewOptions(cfg)
	opts.TracerProvider = tp
	server, err := api.NewServer(api.Deps{
		Deps: v1handler.Deps{
			Dorks:     dorks.New(db),
			Generator: dorkgen.New(dorkgen.NewOptions(cfg)),
			Storage:   db,
		},
	}, opts)
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			db, closeDB := getStorage(ctx, c.cfg)
			defer closeDB()

			if !c.cfg.Database.SkipMigrate {
				if err := runMigrations(ctx, db); err != nil {
					logger.Fatal(ctx, "could not migrate database", zap.Error(err))
				}
			}

			tp, stopTracing := setupTracing(ctx, c.cfg)
			stopWebserver := setupServer(ctx, c.cfg, db, tp)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), c.cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopTracing(shutdownCtx)
		},
	}

	return cmd
}
