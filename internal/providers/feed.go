package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/quintonfesq04/realsports-picks/internal/models"
)

// FeedClient fetches per-sport player statistics from the JSON stats feed.
// Calls go through a circuit breaker so a failing feed does not get hammered,
// and a rate limiter keeps us under the feed's request ceiling.
type FeedClient struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	limiter    *rate.Limiter
	logger     *logrus.Logger
}

// feedPlayer is the feed's wire format for one player.
type feedPlayer struct {
	Player string                 `json:"player"`
	Team   string                 `json:"team"`
	Stats  map[string]interface{} `json:"stats"`
}

func NewFeedClient(baseURL string, timeout time.Duration, ratePerSec float64, breakerThreshold int, logger *logrus.Logger) *FeedClient {
	settings := gobreaker.Settings{
		Name:        "stats-feed",
		MaxRequests: uint32(breakerThreshold),
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"component": "circuit_breaker",
				"service":   name,
				"from":      from.String(),
				"to":        to.String(),
			}).Info("Circuit breaker state changed")
		},
	}

	return &FeedClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		breaker:    gobreaker.NewCircuitBreaker(settings),
		limiter:    rate.NewLimiter(rate.Limit(ratePerSec), 1),
		logger:     logger,
	}
}

// FetchPlayers retrieves the current stats snapshot for a sport.
func (c *FeedClient) FetchPlayers(ctx context.Context, sport string) ([]models.PlayerStat, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("stats feed URL is not configured")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait: %w", err)
	}

	url := fmt.Sprintf("%s/%s/players.json", c.baseURL, sport)
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetch(ctx, url)
	})
	if err != nil {
		return nil, fmt.Errorf("fetch %s players: %w", sport, err)
	}

	players := result.([]feedPlayer)
	stats := make([]models.PlayerStat, 0, len(players))
	for _, p := range players {
		if p.Player == "" {
			continue
		}
		stats = append(stats, models.PlayerStat{
			Sport: sport,
			Name:  p.Player,
			Team:  p.Team,
			Stats: p.Stats,
		})
	}

	c.logger.WithFields(logrus.Fields{
		"sport":   sport,
		"players": len(stats),
	}).Debug("Fetched stats feed snapshot")

	return stats, nil
}

func (c *FeedClient) fetch(ctx context.Context, url string) ([]feedPlayer, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	var players []feedPlayer
	if err := json.NewDecoder(resp.Body).Decode(&players); err != nil {
		return nil, fmt.Errorf("decode feed response: %w", err)
	}
	return players, nil
}
