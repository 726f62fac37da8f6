package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/quintonfesq04/realsports-picks/internal/engine"
	"github.com/quintonfesq04/realsports-picks/internal/models"
	"github.com/quintonfesq04/realsports-picks/internal/services"
	"github.com/quintonfesq04/realsports-picks/pkg/config"
	"github.com/quintonfesq04/realsports-picks/pkg/utils"
)

// RecordSource supplies the stat records an analysis runs against.
type RecordSource interface {
	Records(ctx context.Context, sport string) ([]engine.PlayerRecord, error)
}

// PicksCache is the slice of the cache service the picks handler uses.
type PicksCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

// Broadcaster notifies realtime subscribers when picks are computed.
type Broadcaster interface {
	BroadcastEvent(eventType string, data interface{})
}

type PicksHandler struct {
	source RecordSource
	cache  PicksCache
	hub    Broadcaster
	config *config.Config
}

func NewPicksHandler(source RecordSource, cache PicksCache, hub Broadcaster, cfg *config.Config) *PicksHandler {
	return &PicksHandler{
		source: source,
		cache:  cache,
		hub:    hub,
		config: cfg,
	}
}

// PicksRequest is the API request contract. Target is optional: when present
// the analysis is target-relative, when absent it is rank-only. TopTwelve
// switches rank-only output to the 4-tier 12-player form.
type PicksRequest struct {
	Sport     string   `json:"sport" binding:"required"`
	Stat      string   `json:"stat" binding:"required"`
	Teams     []string `json:"teams"`
	Target    *float64 `json:"target"`
	TopTwelve bool     `json:"top_twelve"`
}

// PicksResponse pairs the structured tier list with its rendered text block.
type PicksResponse struct {
	Sport  string             `json:"sport"`
	Stat   string             `json:"stat"`
	Target *float64           `json:"target,omitempty"`
	Picks  []engine.TierPicks `json:"picks"`
	Text   string             `json:"text"`
}

// ComputePicks handles POST /picks.
func (h *PicksHandler) ComputePicks(c *gin.Context) {
	var req PicksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	catalog, ok := models.Catalog(req.Sport)
	if !ok {
		utils.SendValidationError(c, "Unsupported sport",
			fmt.Sprintf("sport %q is not one of %v", req.Sport, models.SupportedSports()))
		return
	}

	statKey, ok := models.ResolveStatKey(req.Sport, req.Stat)
	if !ok {
		utils.SendValidationError(c, "Unknown stat",
			fmt.Sprintf("stat %q is not valid for %s; available: %v", req.Stat, req.Sport, models.StatNames(req.Sport)))
		return
	}

	engReq := engine.Request{
		Statistic:  statKey,
		TeamFilter: req.Teams,
		Bans:       h.config.BanList(),
		Mode:       engine.ModeRankOnly,
	}
	if catalog.UsesTarget && req.Target != nil && !req.TopTwelve {
		engReq.Mode = engine.ModeTargetRelative
		engReq.Target = *req.Target
	}

	policy := h.config.TierPolicy()
	if req.TopTwelve {
		policy.RankTiers = 4
	}

	ctx := c.Request.Context()
	cacheKey := services.PicksCacheKey(req.Sport, services.HashRequest(req))
	if h.cache != nil {
		var cached PicksResponse
		if err := h.cache.Get(ctx, cacheKey, &cached); err == nil {
			utils.SendSuccess(c, cached)
			return
		}
	}

	records, err := h.source.Records(ctx, req.Sport)
	if err != nil {
		logrus.Errorf("Failed to load %s records: %v", req.Sport, err)
		utils.SendInternalError(c, "Failed to load player statistics")
		return
	}

	result, err := engine.Analyze(records, engReq, policy)
	if err != nil {
		h.sendEngineError(c, err)
		return
	}

	resp := PicksResponse{
		Sport:  req.Sport,
		Stat:   req.Stat,
		Target: req.Target,
		Picks:  result.Picks,
		Text:   result.Text(),
	}

	if h.cache != nil {
		ttl := time.Duration(h.config.PicksCacheExpiration) * time.Second
		if err := h.cache.Set(ctx, cacheKey, resp, ttl); err != nil {
			logrus.Warnf("Failed to cache picks: %v", err)
		}
	}

	if h.hub != nil {
		h.hub.BroadcastEvent("picks_computed", map[string]interface{}{
			"sport": req.Sport,
			"stat":  req.Stat,
			"text":  resp.Text,
		})
	}

	utils.SendSuccess(c, resp)
}

// sendEngineError maps the engine's typed errors onto API responses.
func (h *PicksHandler) sendEngineError(c *gin.Context, err error) {
	var invalidStat *engine.InvalidStatisticError
	var invalidTarget *engine.InvalidTargetError
	var noTeams *engine.NoMatchingTeamsError

	switch {
	case errors.As(err, &invalidStat):
		utils.SendValidationError(c, "Invalid statistic", invalidStat.Error())
	case errors.As(err, &invalidTarget):
		utils.SendValidationError(c, "Invalid target", invalidTarget.Error())
	case errors.As(err, &noTeams):
		utils.SendNotFound(c, noTeams.Error())
	default:
		logrus.Errorf("Pick analysis failed: %v", err)
		utils.SendInternalError(c, "Pick analysis failed")
	}
}
