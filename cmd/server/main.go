package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SAP-F-2025/report-service/internal/cache"
	"github.com/SAP-F-2025/report-service/internal/config"
	"github.com/SAP-F-2025/report-service/internal/handlers"
	"github.com/SAP-F-2025/report-service/internal/repositories/postgres"
	"github.com/SAP-F-2025/report-service/internal/services"
	"github.com/SAP-F-2025/report-service/internal/utils"
	"github.com/SAP-F-2025/report-service/internal/validator"
	"github.com/SAP-F-2025/report-service/pkg"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := pkg.NewZapLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := utils.NewLogger(cfg.Environment, cfg.LogLevel)
	slogger := utils.ToSlogLogger(appLogger)

	logger.Info("starting report service",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment))

	db, err := pkg.InitDatabase(cfg, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	if cfg.AutoMigrate {
		if err := pkg.AutoMigrate(db, logger); err != nil {
			logger.Fatal("database migration failed", zap.Error(err))
		}
	}

	// Reports still generate without Redis, only uncached
	var cacheSvc cache.CacheService
	rdb, err := pkg.NewRedisClient(cfg, logger)
	if err != nil {
		logger.Warn("redis unavailable, report cache disabled", zap.Error(err))
	} else {
		cacheSvc = cache.NewRedisCache(rdb, logger)
	}

	publisher, err := cfg.Events.CreateEventPublisher(slogger)
	if err != nil {
		logger.Fatal("failed to create event publisher", zap.Error(err))
	}

	v := validator.New()
	repo := postgres.NewRepository(db)
	serviceManager := services.NewServiceManager(repo, slogger, v, services.ServiceManagerConfig{
		Cache:          cacheSvc,
		EventPublisher: publisher,
		CacheTTL:       cfg.ReportCacheTTL,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), utils.ContextLogger(appLogger), utils.LoggerMiddleware(appLogger))
	handlers.NewHandlerManager(serviceManager, v, appLogger).SetupRoutes(router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("http server shutdown failed", zap.Error(err))
	}
	if err := publisher.Close(); err != nil {
		logger.Error("event publisher close failed", zap.Error(err))
	}
	if rdb != nil {
		rdb.Close()
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Info("server stopped")
}
