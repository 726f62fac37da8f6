package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/quintonfesq04/realsports-picks/internal/engine"
)

type Config struct {
	// Server
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	// Database
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Redis
	RedisURL string `mapstructure:"REDIS_URL"`

	// JWT
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS
	CorsOrigins []string `mapstructure:"CORS_ORIGINS"`

	// Stats feed
	StatsFeedURL            string        `mapstructure:"STATS_FEED_URL"`
	FeedTimeout             time.Duration `mapstructure:"FEED_TIMEOUT"`
	FeedRateLimit           float64       `mapstructure:"FEED_RATE_LIMIT"`
	CircuitBreakerThreshold int           `mapstructure:"CIRCUIT_BREAKER_THRESHOLD"`

	// Snapshot refresh
	RefreshCron        string `mapstructure:"REFRESH_CRON"`
	SkipInitialRefresh bool   `mapstructure:"SKIP_INITIAL_REFRESH"`

	// Pick caching
	PicksCacheExpiration int `mapstructure:"PICKS_CACHE_EXPIRATION"`

	// Tier policy
	TierHi           float64 `mapstructure:"TIER_HI"`
	TierLo           float64 `mapstructure:"TIER_LO"`
	PickQuota        int     `mapstructure:"PICK_QUOTA"`
	RedSortAscending bool    `mapstructure:"RED_SORT_ASCENDING"`

	// Ban lists
	BannedPlayers     []string `mapstructure:"BANNED_PLAYERS"`
	StatBannedPlayers string   `mapstructure:"STAT_BANNED_PLAYERS"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("DATABASE_URL", "picks.db")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("JWT_SECRET", "your-secret-key")
	viper.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")
	viper.SetDefault("STATS_FEED_URL", "")
	viper.SetDefault("FEED_TIMEOUT", "10s")
	viper.SetDefault("FEED_RATE_LIMIT", 2.0) // requests per second
	viper.SetDefault("CIRCUIT_BREAKER_THRESHOLD", 5)
	viper.SetDefault("REFRESH_CRON", "@every 2h")
	viper.SetDefault("SKIP_INITIAL_REFRESH", false)
	viper.SetDefault("PICKS_CACHE_EXPIRATION", 300) // seconds

	// Tier policy defaults match the canonical 110/85 boundaries and the
	// 3-per-tier quota. The upstream call sites disagree on these values,
	// which is exactly why they are configuration.
	viper.SetDefault("TIER_HI", 110.0)
	viper.SetDefault("TIER_LO", 85.0)
	viper.SetDefault("PICK_QUOTA", 3)
	viper.SetDefault("RED_SORT_ASCENDING", false)

	viper.SetDefault("BANNED_PLAYERS", "")
	viper.SetDefault("STAT_BANNED_PLAYERS", "")

	// Read from environment
	viper.AutomaticEnv()

	// Read config file if exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Parse CORS origins from comma-separated string
	if corsStr := viper.GetString("CORS_ORIGINS"); corsStr != "" {
		config.CorsOrigins = strings.Split(corsStr, ",")
	}

	// Parse banned players from comma-separated string
	config.BannedPlayers = splitList(viper.GetString("BANNED_PLAYERS"))

	return &config, nil
}

// TierPolicy builds the engine policy from configuration.
func (c *Config) TierPolicy() engine.TierPolicy {
	return engine.TierPolicy{
		Hi:           c.TierHi,
		Lo:           c.TierLo,
		Quota:        c.PickQuota,
		RedAscending: c.RedSortAscending,
		RankTiers:    3,
	}
}

// BanList builds the engine ban list. STAT_BANNED_PLAYERS uses the form
// "AST=Jordan Poole|Other Name;3PM=Klay Thompson".
func (c *Config) BanList() engine.BanList {
	byStat := make(map[string][]string)
	for _, entry := range strings.Split(c.StatBannedPlayers, ";") {
		stat, names, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		stat = strings.TrimSpace(stat)
		players := splitOn(names, "|")
		if stat != "" && len(players) > 0 {
			byStat[stat] = players
		}
	}
	return engine.NewBanList(c.BannedPlayers, byStat)
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func splitList(s string) []string {
	return splitOn(s, ",")
}

func splitOn(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
