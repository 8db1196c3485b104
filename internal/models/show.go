package models

// Show represents a single concert listing as produced by the scraper.
// Field values are raw strings and may be malformed; consumers are expected
// to validate and drop rather than fail a whole batch.
type Show struct {
	Artists []string `json:"artists"`         // performer names in billing order, duplicates allowed
	Venue   string   `json:"venue"`
	Date    string   `json:"date"`            // M/D/YYYY from the scraper
	Time    string   `json:"time"`            // H:MM AM/PM
}

// WellFormed reports whether the show carries at least one artist entry.
// Shows missing an artist list come from partial scrapes and are skipped,
// never surfaced as errors.
func (s Show) WellFormed() bool {
	return len(s.Artists) > 0
}

// Clone returns a copy of the show with its own Artists backing array, so
// derived structures never alias caller-owned data.
func (s Show) Clone() Show {
	out := s
	if s.Artists != nil {
		out.Artists = make([]string, len(s.Artists))
		copy(out.Artists, s.Artists)
	}
	return out
}

// Artist represents one entry of a user's listening profile. Only Name
// participates in matching; the remaining fields are provider metadata
// passed through for collaborator convenience.
type Artist struct {
	Name        string   `json:"name"`
	Genres      []string `json:"genres,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	ExternalURL string   `json:"external_url,omitempty"`
}
