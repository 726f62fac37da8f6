package models

import "time"

// RefreshJob status values.
const (
	JobStatusRunning   = "running"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)

// RefreshJob records one snapshot refresh attempt for a sport.
type RefreshJob struct {
	ID          string     `gorm:"primaryKey;type:uuid" json:"id"`
	Sport       string     `gorm:"not null;index" json:"sport"`
	Status      string     `gorm:"not null" json:"status"`
	PlayerCount int        `json:"player_count"`
	Error       string     `json:"error,omitempty"`
	StartedAt   time.Time  `gorm:"not null" json:"started_at"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`
}

func (RefreshJob) TableName() string {
	return "refresh_jobs"
}
