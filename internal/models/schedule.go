package models

import "time"

// DaySchedule holds the shows for one calendar day of a week window.
type DaySchedule struct {
	Label string `json:"label"` // Mon..Sun, fixed by position within the week
	Date  string `json:"date"`  // ISO YYYY-MM-DD, local calendar fields
	Shows []Show `json:"shows"` // ascending by showtime
}

// WeekSchedule is a Monday-through-Sunday week of day buckets. Days always
// has exactly seven entries covering WeekStartDate + 0..6 days, present even
// when empty.
type WeekSchedule struct {
	WeekStartDate time.Time     `json:"week_start_date"` // local midnight Monday
	WeekEndDate   time.Time     `json:"week_end_date"`   // local Sunday 23:59:59.999
	Days          []DaySchedule `json:"days"`
}
