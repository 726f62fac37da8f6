package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/quintonfesq04/realsports-picks/internal/engine"
	"github.com/quintonfesq04/realsports-picks/internal/models"
	"github.com/quintonfesq04/realsports-picks/pkg/database"
)

const playersCacheTTL = 10 * time.Minute

// SnapshotService owns the stored per-sport stat snapshots. The engine never
// touches storage; every analysis gets a fresh slice of records from here.
type SnapshotService struct {
	db     *database.DB
	cache  *CacheService
	logger *logrus.Logger
}

func NewSnapshotService(db *database.DB, cache *CacheService, logger *logrus.Logger) *SnapshotService {
	return &SnapshotService{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

// Records loads the current snapshot for a sport as engine records, going
// through the cache when possible.
func (s *SnapshotService) Records(ctx context.Context, sport string) ([]engine.PlayerRecord, error) {
	cacheKey := PlayersCacheKey(sport)

	var cached []engine.PlayerRecord
	if s.cache != nil {
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	var stats []models.PlayerStat
	if err := s.db.WithContext(ctx).Where("sport = ?", sport).Find(&stats).Error; err != nil {
		return nil, fmt.Errorf("load %s snapshot: %w", sport, err)
	}

	records := make([]engine.PlayerRecord, 0, len(stats))
	for i := range stats {
		records = append(records, stats[i].Record())
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, records, playersCacheTTL); err != nil {
			s.logger.Warnf("Failed to cache %s players: %v", sport, err)
		}
	}

	return records, nil
}

// ReplaceSnapshot swaps a sport's stored snapshot for a new one in a single
// transaction and invalidates the players cache.
func (s *SnapshotService) ReplaceSnapshot(ctx context.Context, sport string, stats []models.PlayerStat) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sport = ?", sport).Delete(&models.PlayerStat{}).Error; err != nil {
			return err
		}
		if len(stats) == 0 {
			return nil
		}
		return tx.CreateInBatches(stats, 200).Error
	})
	if err != nil {
		return fmt.Errorf("replace %s snapshot: %w", sport, err)
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, PlayersCacheKey(sport)); err != nil {
			s.logger.Warnf("Failed to invalidate %s players cache: %v", sport, err)
		}
	}

	s.logger.WithFields(logrus.Fields{
		"sport":   sport,
		"players": len(stats),
	}).Info("Snapshot replaced")
	return nil
}

// PlayerCount reports how many players a sport's snapshot holds.
func (s *SnapshotService) PlayerCount(ctx context.Context, sport string) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.PlayerStat{}).Where("sport = ?", sport).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count %s players: %w", sport, err)
	}
	return count, nil
}
