package schedule

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"gigweek/internal/models"
)

// Service coordinates week organization and logs drop diagnostics. The
// clock is a field so offset-based lookups stay deterministic under test.
type Service struct {
	log zerolog.Logger
	now func() time.Time
}

// New constructs a schedule Service using the wall clock.
func New(log zerolog.Logger) *Service {
	return &Service{log: log, now: time.Now}
}

// Week organizes shows into the week containing ref.
func (s *Service) Week(ctx context.Context, shows []models.Show, ref time.Time) (models.WeekSchedule, error) {
	if err := ctx.Err(); err != nil {
		return models.WeekSchedule{}, err
	}

	week, stats, err := Organize(shows, ref)
	if err != nil {
		return models.WeekSchedule{}, err
	}

	s.log.Debug().
		Time("week_start", week.WeekStartDate).
		Int("shows_in", len(shows)).
		Int("dropped_bad_date", stats.BadDate).
		Int("dropped_out_of_window", stats.OutOfWindow).
		Int("zero_time", stats.ZeroTime).
		Msg("organized shows into week")

	return week, nil
}

// CurrentWeek organizes shows into the week containing the present moment.
// Callers needing reproducible output should use Week with an explicit
// reference date instead.
func (s *Service) CurrentWeek(ctx context.Context, shows []models.Show) (models.WeekSchedule, error) {
	return s.Week(ctx, shows, s.now())
}

// WeekByOffset organizes shows into the week offset whole weeks from now;
// 0 is the current week, negative offsets look back.
func (s *Service) WeekByOffset(ctx context.Context, shows []models.Show, offset int) (models.WeekSchedule, error) {
	return s.Week(ctx, shows, s.now().AddDate(0, 0, 7*offset))
}
