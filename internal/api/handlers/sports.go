package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/quintonfesq04/realsports-picks/internal/models"
	"github.com/quintonfesq04/realsports-picks/internal/services"
	"github.com/quintonfesq04/realsports-picks/pkg/utils"
)

type SportsHandler struct {
	snapshots *services.SnapshotService
	refresher *services.RefreshService
}

func NewSportsHandler(snapshots *services.SnapshotService, refresher *services.RefreshService) *SportsHandler {
	return &SportsHandler{
		snapshots: snapshots,
		refresher: refresher,
	}
}

// ListSports handles GET /sports.
func (h *SportsHandler) ListSports(c *gin.Context) {
	sports := make([]gin.H, 0)
	for _, sport := range models.SupportedSports() {
		catalog, _ := models.Catalog(sport)
		sports = append(sports, gin.H{
			"sport":       sport,
			"stats":       models.StatNames(sport),
			"uses_target": catalog.UsesTarget,
		})
	}
	utils.SendSuccess(c, sports)
}

// ListPlayers handles GET /sports/:sport/players.
func (h *SportsHandler) ListPlayers(c *gin.Context) {
	sport := c.Param("sport")
	if _, ok := models.Catalog(sport); !ok {
		utils.SendNotFound(c, "Unknown sport")
		return
	}

	records, err := h.snapshots.Records(c.Request.Context(), sport)
	if err != nil {
		logrus.Errorf("Failed to load %s players: %v", sport, err)
		utils.SendInternalError(c, "Failed to load players")
		return
	}
	utils.SendSuccess(c, records)
}

// RefreshSport handles POST /sports/:sport/refresh.
func (h *SportsHandler) RefreshSport(c *gin.Context) {
	sport := c.Param("sport")
	if _, ok := models.Catalog(sport); !ok {
		utils.SendNotFound(c, "Unknown sport")
		return
	}

	job, err := h.refresher.RefreshSport(c.Request.Context(), sport)
	if err != nil {
		logrus.Errorf("Refresh for %s failed: %v", sport, err)
		if job != nil {
			// Job row records the failure; report it rather than a bare 500.
			utils.SendError(c, 502, utils.NewAppError(utils.ErrCodeInternal, "Snapshot refresh failed", job.Error))
			return
		}
		utils.SendInternalError(c, "Snapshot refresh failed")
		return
	}
	utils.SendSuccess(c, job)
}

// ListRefreshJobs handles GET /refresh/jobs.
func (h *SportsHandler) ListRefreshJobs(c *gin.Context) {
	jobs, err := h.refresher.RecentJobs(c.Request.Context(), c.Query("sport"), 20)
	if err != nil {
		logrus.Errorf("Failed to list refresh jobs: %v", err)
		utils.SendInternalError(c, "Failed to list refresh jobs")
		return
	}
	utils.SendSuccess(c, jobs)
}
