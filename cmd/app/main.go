package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"logistics/cmd"
	"logistics/internal/adapters/out/postgres"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/sync/errgroup"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		return err
	}

	logger, err := cmd.NewLogger(cfg, os.Stdout)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := gorm.Open(postgresdriver.Open(cfg.DSN()), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err = postgres.Migrate(ctx, gormDB, logger); err != nil {
		return err
	}

	app, err := cmd.NewCompositionRoot(ctx, cfg, gormDB, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Warn("Failed to close broadcast transport", "error", closeErr)
		}
	}()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, app, cfg, logger)
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, cfg cmd.Config, logger *slog.Logger) error {
	e := echo.New()
	e.HideBanner = true
	level, _ := cfg.Level()
	e.Logger.SetLevel(cmd.EchoLogLevel(level))
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}))

	app.CreateHTTPServer().Register(e)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("HTTP server listening", "port", cfg.HTTPPort)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
