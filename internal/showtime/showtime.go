// Package showtime parses the date and time strings found on scraped show
// records and computes Monday-based week windows. All calendar math uses
// local time fields; mixing in UTC here would misassign shows near week
// boundaries.
package showtime

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DayLabels are the week's day names, Monday first. Schedule builders label
// buckets by position with these rather than re-deriving the weekday.
var DayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

var clockPattern = regexp.MustCompile(`^\s*(\d{1,2}):(\d{2})\s+([AaPp][Mm])\s*$`)

// ParseDate parses a strict M/D/YYYY string into local midnight of that day.
// It returns false for anything else: wrong segment count, non-numeric
// segments, or a day/month pair that does not exist in the given year.
// Rollover is rejected by re-deriving the fields from the constructed date,
// so "2/30/2026" fails rather than becoming March 2nd.
func ParseDate(s string) (time.Time, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// ParseFlexible parses either M/D/YYYY or ISO YYYY-MM-DD, returning local
// midnight of the day. The scraper emits the slash form while profile-side
// fixtures use ISO; this is the single place both shapes are accepted, used
// only for ordering matched shows. Week bucketing stays on the strict
// ParseDate path.
func ParseFlexible(s string) (time.Time, bool) {
	if t, ok := ParseDate(s); ok {
		return t, true
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseClock converts an "H:MM AM/PM" string to minutes since midnight in
// [0,1439]. Any string that does not match, or whose hour falls outside
// 1-12 or minute outside 0-59, yields 0. Callers must treat 0 as
// "midnight or unknown": a genuine 12:00 AM show also maps to 0.
func ParseClock(s string) int {
	minutes, _ := parseClock(s)
	return minutes
}

// ClockValid reports whether s is an accepted clock string. It lets callers
// tell a failed parse from a genuine midnight show, since ParseClock maps
// both to 0.
func ClockValid(s string) bool {
	_, ok := parseClock(s)
	return ok
}

func parseClock(s string) (int, bool) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour < 1 || hour > 12 || minute > 59 {
		return 0, false
	}

	if hour == 12 {
		hour = 0
	}
	if strings.EqualFold(m[3], "PM") {
		hour += 12
	}
	return hour*60 + minute, true
}

// WeekStart returns local midnight of the Monday on or before t. Sunday
// belongs to the week that began the previous Monday.
func WeekStart(t time.Time) time.Time {
	offset := int(t.Weekday()) - 1
	if t.Weekday() == time.Sunday {
		offset = 6
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -offset)
}

// WeekEnd returns the Sunday of t's week at 23:59:59.999 local time.
func WeekEnd(t time.Time) time.Time {
	end := WeekStart(t).AddDate(0, 0, 6)
	return time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59,
		int(999*time.Millisecond), end.Location())
}

// ISODate formats t's local calendar day as zero-padded YYYY-MM-DD.
func ISODate(t time.Time) string {
	return t.Format("2006-01-02")
}
