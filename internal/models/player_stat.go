package models

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/quintonfesq04/realsports-picks/internal/engine"
)

// PlayerStat is one player's stored statistics snapshot for a sport. Stats is
// a JSON map of field key to value; values arrive from feeds as numbers or as
// formatted strings ("1,234"), so conversion is tolerant.
type PlayerStat struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	Sport     string            `gorm:"not null;index:idx_sport_team" json:"sport"`
	Name      string            `gorm:"not null" json:"name"`
	Team      string            `gorm:"not null;index:idx_sport_team" json:"team"`
	Stats     datatypes.JSONMap `json:"stats"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func (PlayerStat) TableName() string {
	return "player_stats"
}

// Record converts the stored row into an engine record. Values that fail
// numeric conversion are left out of the map, which the engine treats as
// missing.
func (p *PlayerStat) Record() engine.PlayerRecord {
	stats := make(map[string]float64, len(p.Stats))
	for key, raw := range p.Stats {
		if v, ok := toFloat(raw); ok {
			stats[key] = v
		}
	}
	return engine.PlayerRecord{Name: p.Name, Team: p.Team, Stats: stats}
}

func toFloat(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		cleaned := strings.ReplaceAll(strings.TrimSpace(v), ",", "")
		if cleaned == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(cleaned, 64)
		return f, err == nil
	}
	return 0, false
}
