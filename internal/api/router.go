package api

import (
	"github.com/gin-gonic/gin"

	"github.com/quintonfesq04/realsports-picks/internal/api/handlers"
	"github.com/quintonfesq04/realsports-picks/internal/api/middleware"
	"github.com/quintonfesq04/realsports-picks/internal/services"
	"github.com/quintonfesq04/realsports-picks/pkg/config"
	"github.com/quintonfesq04/realsports-picks/pkg/database"
)

// SetupRoutes configures all API routes on the given router group
func SetupRoutes(group *gin.RouterGroup, db *database.DB, cache *services.CacheService, hub *services.Hub, snapshots *services.SnapshotService, refresher *services.RefreshService, cfg *config.Config) {
	picksHandler := handlers.NewPicksHandler(snapshots, cache, hub, cfg)
	sportsHandler := handlers.NewSportsHandler(snapshots, refresher)
	healthHandler := handlers.NewHealthHandler(db)
	wsHandler := handlers.NewWSHandler(hub)

	group.GET("/health", healthHandler.Health)

	group.GET("/sports", sportsHandler.ListSports)
	group.GET("/sports/:sport/players", sportsHandler.ListPlayers)

	group.POST("/picks", picksHandler.ComputePicks)

	group.GET("/ws", wsHandler.Connect)

	admin := group.Group("")
	admin.Use(middleware.AuthRequired(cfg.JWTSecret))
	{
		admin.POST("/sports/:sport/refresh", sportsHandler.RefreshSport)
		admin.GET("/refresh/jobs", sportsHandler.ListRefreshJobs)
	}
}
