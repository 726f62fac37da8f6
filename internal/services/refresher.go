package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/quintonfesq04/realsports-picks/internal/models"
	"github.com/quintonfesq04/realsports-picks/pkg/database"
)

// StatsFeed is the slice of the feed client the refresher needs.
type StatsFeed interface {
	FetchPlayers(ctx context.Context, sport string) ([]models.PlayerStat, error)
}

// RefreshService keeps the per-sport snapshots current on a cron schedule and
// on demand, recording a RefreshJob row per attempt.
type RefreshService struct {
	db        *database.DB
	snapshots *SnapshotService
	feed      StatsFeed
	hub       *Hub
	logger    *logrus.Logger
	cron      *cron.Cron
	mu        sync.Mutex
	isRunning bool
}

func NewRefreshService(db *database.DB, snapshots *SnapshotService, feed StatsFeed, hub *Hub, logger *logrus.Logger) *RefreshService {
	return &RefreshService{
		db:        db,
		snapshots: snapshots,
		feed:      feed,
		hub:       hub,
		logger:    logger,
		cron:      cron.New(),
	}
}

// Start schedules refreshes of every supported sport using the given cron
// spec (e.g. "@every 2h").
func (s *RefreshService) Start(spec string, skipInitial bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("refresh service is already running")
	}

	if _, err := s.cron.AddFunc(spec, s.refreshAll); err != nil {
		return fmt.Errorf("failed to schedule snapshot refresh: %w", err)
	}

	s.cron.Start()
	s.isRunning = true

	if !skipInitial {
		go s.refreshAll()
	}

	s.logger.Info("Refresh service started")
	return nil
}

// Stop halts the schedule. In-flight refreshes finish on their own.
func (s *RefreshService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}
	s.cron.Stop()
	s.isRunning = false
	s.logger.Info("Refresh service stopped")
}

func (s *RefreshService) refreshAll() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	for _, sport := range models.SupportedSports() {
		if _, err := s.RefreshSport(ctx, sport); err != nil {
			s.logger.Errorf("Scheduled refresh for %s failed: %v", sport, err)
		}
	}
}

// RefreshSport fetches a fresh snapshot for one sport, replaces the stored
// one, and notifies websocket subscribers. The returned job carries the
// outcome either way.
func (s *RefreshService) RefreshSport(ctx context.Context, sport string) (*models.RefreshJob, error) {
	job := &models.RefreshJob{
		ID:        uuid.NewString(),
		Sport:     sport,
		Status:    models.JobStatusRunning,
		StartedAt: time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(job).Error; err != nil {
		return nil, fmt.Errorf("create refresh job: %w", err)
	}

	stats, err := s.feed.FetchPlayers(ctx, sport)
	if err != nil {
		s.finishJob(ctx, job, 0, err)
		return job, err
	}

	if err := s.snapshots.ReplaceSnapshot(ctx, sport, stats); err != nil {
		s.finishJob(ctx, job, len(stats), err)
		return job, err
	}

	s.finishJob(ctx, job, len(stats), nil)

	if s.hub != nil {
		s.hub.BroadcastEvent("snapshot_refreshed", map[string]interface{}{
			"sport":   sport,
			"players": len(stats),
			"job_id":  job.ID,
		})
	}

	return job, nil
}

// RecentJobs lists the latest refresh jobs, optionally for one sport.
func (s *RefreshService) RecentJobs(ctx context.Context, sport string, limit int) ([]models.RefreshJob, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	query := s.db.WithContext(ctx).Order("started_at DESC").Limit(limit)
	if sport != "" {
		query = query.Where("sport = ?", sport)
	}

	var jobs []models.RefreshJob
	if err := query.Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("list refresh jobs: %w", err)
	}
	return jobs, nil
}

func (s *RefreshService) finishJob(ctx context.Context, job *models.RefreshJob, playerCount int, jobErr error) {
	now := time.Now().UTC()
	job.FinishedAt = &now
	job.PlayerCount = playerCount
	if jobErr != nil {
		job.Status = models.JobStatusFailed
		job.Error = jobErr.Error()
	} else {
		job.Status = models.JobStatusCompleted
	}

	if err := s.db.WithContext(ctx).Save(job).Error; err != nil {
		s.logger.Errorf("Failed to update refresh job %s: %v", job.ID, err)
	}
}
