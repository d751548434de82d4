package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "jippymart/docs" // swagger docs
	"jippymart/internal/app"
	"jippymart/internal/cache"
	"jippymart/internal/config"
	"jippymart/internal/db"
	"jippymart/internal/http/handlers"
	"jippymart/internal/http/middleware"
	"jippymart/internal/logging"
	"jippymart/internal/telemetry"
)

// @title JippyMart API
// @version 1.0
// @description Restaurant discovery, catalog, search, settings and admin ledger API for the JippyMart apps.

// @contact.name API Support
// @contact.email support@jippymart.in

// @host localhost:8080
// @BasePath /api

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	closeLog := logging.Setup(logging.Options{
		Level:       cfg.LogLevel,
		Development: cfg.IsDevelopment(),
		File:        cfg.LogFile,
	})
	defer closeLog()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing, enabled, err := telemetry.Init(ctx, cfg.Telemetry)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to initialize telemetry, continuing without it")
	} else if enabled {
		log.Info().Msg("Telemetry initialized successfully")
	} else {
		log.Info().Msg("Telemetry disabled")
	}

	database, err := db.NewDatabase(cfg.DB, cfg.AppDebug)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(database); err != nil {
			log.Fatal().Err(err).Msg("Failed to run migrations")
		}
	}

	backend := cache.Open(ctx, cache.Options{
		Driver:   cfg.Cache.Driver,
		RedisURL: cfg.Cache.RedisURL,
		Path:     cfg.Cache.Path,
	}, database)
	backend.StartJanitor(ctx, cfg.Cache.PruneInterval)

	services := app.NewServices(database, cache.New(backend.Store, cfg.Cache.Prefix))

	if err := services.Settings.Load(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to load settings, serving defaults until the next refresh")
	}
	services.Settings.StartRefresher(ctx, cfg.SettingsRefreshInterval)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{AllowOrigins: cfg.CORSOrigins}))
	e.Use(middleware.RequestID())
	e.Use(middleware.Telemetry())
	e.Use(middleware.AccessLog())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	if cfg.IsDevelopment() {
		e.GET("/docs/*", echoSwagger.WrapHandler)
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	api := e.Group("/api")
	handlers.SetupRoutes(api, services, handlers.Errors{Debug: cfg.AppDebug})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("cache_driver", backend.Store.Driver()).Msg("Server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	cancel()

	shutdownCtx, stop := context.WithTimeout(context.Background(), 30*time.Second)
	defer stop()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("Failed to flush traces")
	}
	if err := backend.Close(); err != nil {
		log.Warn().Err(err).Msg("Failed to close cache connection")
	}
	if err := db.Close(database); err != nil {
		log.Warn().Err(err).Msg("Failed to close database")
	}

	log.Info().Msg("Server exited")
}
