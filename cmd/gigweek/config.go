package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config contains application-wide settings sourced from the environment.
type Config struct {
	ShowsFile   string // scraper-produced shows JSON, required
	ProfileFile string // listening-profile JSON; empty skips matching
	WeekOffset  int    // whole weeks from now, 0 = current week
	LogLevel    string
	LogFormat   string
}

func loadConfig() (Config, error) {
	_ = godotenv.Load("config/local.env")

	showsFile := os.Getenv("SHOWS_FILE")
	if showsFile == "" {
		return Config{}, errors.New("SHOWS_FILE env var is required")
	}

	offset, err := strconv.Atoi(envOrDefault("WEEK_OFFSET", "0"))
	if err != nil {
		return Config{}, fmt.Errorf("parse WEEK_OFFSET: %w", err)
	}

	return Config{
		ShowsFile:   showsFile,
		ProfileFile: os.Getenv("PROFILE_FILE"),
		WeekOffset:  offset,
		LogLevel:    envOrDefault("LOG_LEVEL", "info"),
		LogFormat:   envOrDefault("LOG_FORMAT", "json"),
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
