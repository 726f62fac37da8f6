package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/quintonfesq04/realsports-picks/internal/api"
	"github.com/quintonfesq04/realsports-picks/internal/api/middleware"
	"github.com/quintonfesq04/realsports-picks/internal/models"
	"github.com/quintonfesq04/realsports-picks/internal/providers"
	"github.com/quintonfesq04/realsports-picks/internal/services"
	"github.com/quintonfesq04/realsports-picks/pkg/config"
	"github.com/quintonfesq04/realsports-picks/pkg/database"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Setup logging
	if cfg.IsDevelopment() {
		logrus.SetLevel(logrus.DebugLevel)
		gin.SetMode(gin.DebugMode)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL, cfg.IsDevelopment())
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.PlayerStat{}, &models.RefreshJob{}); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	// Connect to Redis
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logrus.Fatalf("Failed to parse Redis URL: %v", err)
	}
	redisClient := redis.NewClient(opt)
	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logrus.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize services
	cacheService := services.NewCacheService(redisClient)
	hub := services.NewHub()
	go hub.Run()

	snapshots := services.NewSnapshotService(db, cacheService, logrus.StandardLogger())
	feed := providers.NewFeedClient(cfg.StatsFeedURL, cfg.FeedTimeout, cfg.FeedRateLimit, cfg.CircuitBreakerThreshold, logrus.StandardLogger())
	refresher := services.NewRefreshService(db, snapshots, feed, hub, logrus.StandardLogger())

	if cfg.StatsFeedURL != "" {
		if err := refresher.Start(cfg.RefreshCron, cfg.SkipInitialRefresh); err != nil {
			logrus.Errorf("Failed to start snapshot refresher: %v", err)
		}
		defer refresher.Stop()
	} else {
		logrus.Warn("STATS_FEED_URL not set, snapshot refresh disabled")
	}

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.CorsOrigins))

	apiV1 := router.Group("/api/v1")
	api.SetupRoutes(apiV1, db, cacheService, hub, snapshots, refresher, cfg)

	// Setup server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited")
}
