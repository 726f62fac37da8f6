package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/quintonfesq04/realsports-picks/internal/engine"
	"github.com/quintonfesq04/realsports-picks/internal/models"
	"github.com/quintonfesq04/realsports-picks/internal/providers"
	"github.com/quintonfesq04/realsports-picks/pkg/config"
)

func main() {
	var (
		file      = flag.String("file", "", "CSV or JSON file of player stats")
		sport     = flag.String("sport", "nba", "Sport the stats belong to")
		stat      = flag.String("stat", "", "Stat to rank on (name or key)")
		target    = flag.Float64("target", 0, "Success target; omit for rank-only output")
		teams     = flag.String("teams", "", "Comma-separated team filter")
		topTwelve = flag.Bool("top12", false, "Produce the 4-tier top-12 list")
	)
	flag.Parse()

	if *file == "" || *stat == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	catalog, ok := models.Catalog(*sport)
	if !ok {
		logrus.Fatalf("Unsupported sport %q (supported: %s)", *sport, strings.Join(models.SupportedSports(), ", "))
	}
	statKey, ok := models.ResolveStatKey(*sport, *stat)
	if !ok {
		logrus.Fatalf("Unknown stat %q for %s (known: %s)", *stat, *sport, strings.Join(models.StatNames(*sport), ", "))
	}

	records, err := providers.LoadRecords(*file)
	if err != nil {
		logrus.Fatalf("Failed to load records: %v", err)
	}

	req := engine.Request{
		Statistic: statKey,
		Mode:      engine.ModeRankOnly,
		Bans:      cfg.BanList(),
	}
	if *teams != "" {
		req.TeamFilter = strings.Split(*teams, ",")
	}
	if catalog.UsesTarget && *target > 0 && !*topTwelve {
		req.Mode = engine.ModeTargetRelative
		req.Target = *target
	}

	policy := cfg.TierPolicy()
	if *topTwelve {
		policy.RankTiers = 4
	}

	result, err := engine.Analyze(records, req, policy)
	if err != nil {
		logrus.Fatalf("Analysis failed: %v", err)
	}

	fmt.Println(result.Text())
}
