package matching

import (
	"context"

	"github.com/rs/zerolog"

	"gigweek/internal/models"
)

// Service coordinates profile-to-show matching and reports how much of the
// input the drop policy discarded.
type Service struct {
	log zerolog.Logger
}

// New constructs a matching Service.
func New(log zerolog.Logger) *Service {
	return &Service{log: log}
}

// MatchShows returns the shows featuring any artist of the profile, sorted
// by date. Malformed shows are filtered silently; a nil shows collection is
// a contract violation and returns ErrNilShows.
func (s *Service) MatchShows(ctx context.Context, profile []models.Artist, shows []models.Show) ([]models.Show, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	nameSet := BuildNameSet(profile)
	matches, dropped, err := findMatches(nameSet, shows)
	if err != nil {
		return nil, err
	}

	s.log.Debug().
		Int("profile_artists", len(nameSet)).
		Int("shows_in", len(shows)).
		Int("shows_dropped", dropped).
		Int("shows_matched", len(matches)).
		Msg("matched shows against profile")

	return matches, nil
}
