package providers

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/quintonfesq04/realsports-picks/internal/engine"
)

// LoadRecords reads player records from a .csv or .json file. This is the
// input adapter the CLI uses instead of the stats feed.
func LoadRecords(path string) ([]engine.PlayerRecord, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(path)
	case ".json":
		return loadJSON(path)
	}
	return nil, fmt.Errorf("unsupported stats file type %q (want .csv or .json)", filepath.Ext(path))
}

// loadCSV expects a header row with Player and Team columns (matched
// case-insensitively); every other column is treated as a statistic. Values
// that fail numeric parsing are left out of the record, which the engine
// treats as missing.
func loadCSV(path string) ([]engine.PlayerRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s has no data rows", path)
	}

	header := rows[0]
	nameCol, teamCol := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "player", "name":
			nameCol = i
		case "team":
			teamCol = i
		}
	}
	if nameCol < 0 || teamCol < 0 {
		return nil, fmt.Errorf("%s is missing Player or Team column", path)
	}

	records := make([]engine.PlayerRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != len(header) {
			continue
		}
		rec := engine.PlayerRecord{
			Name:  strings.TrimSpace(row[nameCol]),
			Team:  strings.TrimSpace(row[teamCol]),
			Stats: make(map[string]float64, len(header)-2),
		}
		if rec.Name == "" {
			continue
		}
		for i, h := range header {
			if i == nameCol || i == teamCol {
				continue
			}
			if v, ok := parseNumeric(row[i]); ok {
				rec.Stats[strings.TrimSpace(h)] = v
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// loadJSON accepts the same shape the stats feed serves:
// [{"player": "...", "team": "...", "stats": {...}}].
func loadJSON(path string) ([]engine.PlayerRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var players []feedPlayer
	if err := json.Unmarshal(data, &players); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	records := make([]engine.PlayerRecord, 0, len(players))
	for _, p := range players {
		if p.Player == "" {
			continue
		}
		rec := engine.PlayerRecord{
			Name:  p.Player,
			Team:  p.Team,
			Stats: make(map[string]float64, len(p.Stats)),
		}
		for key, raw := range p.Stats {
			if v, ok := rawToFloat(raw); ok {
				rec.Stats[key] = v
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
