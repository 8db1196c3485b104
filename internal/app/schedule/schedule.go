// Package schedule buckets shows into the Monday-through-Sunday week
// containing a reference date. Shows with unparseable or out-of-window
// dates are dropped, never defaulted; within a day, shows are ordered by
// showtime with input order preserved on ties.
package schedule

import (
	"errors"
	"sort"
	"time"

	"gigweek/internal/models"
	"gigweek/internal/showtime"
)

// ErrNilShows signals a caller contract violation: the show collection
// itself was absent rather than merely noisy.
var ErrNilShows = errors.New("shows collection is nil")

// DropStats counts records the organizer filtered or defaulted, so the
// silent-drop policy stays observable.
type DropStats struct {
	BadDate     int // date failed the strict M/D/YYYY parse
	OutOfWindow int // valid date outside the requested week
	ZeroTime    int // time string did not parse; show kept at minute 0
}

// Dropped returns the number of shows excluded from the week.
func (d DropStats) Dropped() int {
	return d.BadDate + d.OutOfWindow
}

// OrganizeByWeek builds the week schedule around ref from the given shows.
func OrganizeByWeek(shows []models.Show, ref time.Time) (models.WeekSchedule, error) {
	week, _, err := Organize(shows, ref)
	return week, err
}

// Organize is OrganizeByWeek plus drop diagnostics. The returned schedule
// always holds exactly seven days labeled Mon..Sun by position, covering
// WeekStart(ref) through the following Sunday; every show it contains is an
// independent copy of its input record.
func Organize(shows []models.Show, ref time.Time) (models.WeekSchedule, DropStats, error) {
	if shows == nil {
		return models.WeekSchedule{}, DropStats{}, ErrNilShows
	}

	start := showtime.WeekStart(ref)
	end := showtime.WeekEnd(ref)

	days := make([]models.DaySchedule, len(showtime.DayLabels))
	index := make(map[string]int, len(days))
	for i := range days {
		date := showtime.ISODate(start.AddDate(0, 0, i))
		days[i] = models.DaySchedule{
			Label: showtime.DayLabels[i],
			Date:  date,
			Shows: []models.Show{},
		}
		index[date] = i
	}

	var stats DropStats
	for _, show := range shows {
		parsed, ok := showtime.ParseDate(show.Date)
		if !ok {
			stats.BadDate++
			continue
		}
		i, ok := index[showtime.ISODate(parsed)]
		if !ok {
			stats.OutOfWindow++
			continue
		}
		if !showtime.ClockValid(show.Time) {
			stats.ZeroTime++
		}
		days[i].Shows = append(days[i].Shows, show.Clone())
	}

	for i := range days {
		day := days[i].Shows
		sort.SliceStable(day, func(a, b int) bool {
			return showtime.ParseClock(day[a].Time) < showtime.ParseClock(day[b].Time)
		})
	}

	return models.WeekSchedule{
		WeekStartDate: start,
		WeekEndDate:   end,
		Days:          days,
	}, stats, nil
}
