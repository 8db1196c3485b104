// Command gigweek is a file-based stand-in for the serving layer: it reads
// scraped show listings and an optional listening profile, runs the matcher
// and the weekly organizer, and writes the resulting week schedule as JSON
// on stdout. All I/O lives here; the internal packages stay pure.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"gigweek/internal/app/matching"
	"gigweek/internal/app/schedule"
	"gigweek/internal/logging"
	"gigweek/internal/models"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	}).With().Str("run_id", uuid.New().String()).Logger()

	ctx := context.Background()

	shows, err := loadShows(cfg.ShowsFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("load shows")
	}
	logger.Info().Str("file", cfg.ShowsFile).Int("shows", len(shows)).Msg("loaded show listings")

	if cfg.ProfileFile != "" {
		profile, err := loadProfile(cfg.ProfileFile)
		if err != nil {
			logger.Fatal().Err(err).Msg("load profile")
		}
		shows, err = matching.New(logger).MatchShows(ctx, profile, shows)
		if err != nil {
			logger.Fatal().Err(err).Msg("match shows")
		}
		logger.Info().Int("matches", len(shows)).Msg("matched shows against profile")
	}

	week, err := schedule.New(logger).WeekByOffset(ctx, shows, cfg.WeekOffset)
	if err != nil {
		logger.Fatal().Err(err).Msg("organize week")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(week); err != nil {
		logger.Fatal().Err(err).Msg("encode schedule")
	}
}

func loadShows(path string) ([]models.Show, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read shows file: %w", err)
	}
	var shows []models.Show
	if err := json.Unmarshal(data, &shows); err != nil {
		return nil, fmt.Errorf("decode shows file: %w", err)
	}
	if shows == nil {
		return nil, fmt.Errorf("shows file %s does not contain an array", path)
	}
	return shows, nil
}

func loadProfile(path string) ([]models.Artist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile file: %w", err)
	}
	var artists []models.Artist
	if err := json.Unmarshal(data, &artists); err != nil {
		return nil, fmt.Errorf("decode profile file: %w", err)
	}
	return artists, nil
}
