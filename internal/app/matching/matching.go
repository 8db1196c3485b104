// Package matching decides which scraped shows feature an artist from a
// user's listening profile. Names from the two sources never agree on
// casing, articles, or punctuation, so all comparison goes through a lossy
// normalized form; originals are preserved everywhere in output.
package matching

import (
	"errors"
	"regexp"
	"sort"
	"strings"

	"gigweek/internal/models"
	"gigweek/internal/showtime"
)

// ErrNilShows signals a caller contract violation: the show collection
// itself was absent. Malformed records inside a present collection are
// dropped silently instead.
var ErrNilShows = errors.New("shows collection is nil")

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	apostrophes   = strings.NewReplacer("‘", "'", "’", "'")
)

// Normalize reduces an artist name to its comparison form: lowercased,
// whitespace collapsed, a leading "the " stripped, " & " spelled out as
// " and ", and curly apostrophes straightened. The result is for equality
// testing only and is never shown to users.
func Normalize(name string) string {
	n := strings.TrimSpace(strings.ToLower(name))
	n = whitespaceRun.ReplaceAllString(n, " ")
	n = strings.TrimPrefix(n, "the ")
	n = strings.ReplaceAll(n, " & ", " and ")
	n = apostrophes.Replace(n)
	return strings.TrimSpace(n)
}

// NamesMatch reports whether two artist names normalize to the same form.
func NamesMatch(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// BuildNameSet collects the normalized names of a listening profile.
// Entries without a name are skipped; names that collapse to the same
// normalized form ("The National", "National") occupy one slot.
func BuildNameSet(artists []models.Artist) map[string]struct{} {
	set := make(map[string]struct{}, len(artists))
	for _, a := range artists {
		if a.Name == "" {
			continue
		}
		set[Normalize(a.Name)] = struct{}{}
	}
	return set
}

// FindMatches returns copies of the shows whose billing includes at least
// one artist from nameSet, sorted ascending by date. Shows without a
// usable artist list are dropped. Dates are ordered via
// showtime.ParseFlexible; shows whose date fails to parse sort after all
// dated shows, keeping their relative input order.
func FindMatches(nameSet map[string]struct{}, shows []models.Show) ([]models.Show, error) {
	matches, _, err := findMatches(nameSet, shows)
	return matches, err
}

// findMatches additionally reports how many shows were dropped as
// malformed, so callers can surface the filtering.
func findMatches(nameSet map[string]struct{}, shows []models.Show) ([]models.Show, int, error) {
	if shows == nil {
		return nil, 0, ErrNilShows
	}

	dropped := 0
	matches := make([]models.Show, 0, len(shows))
	for _, show := range shows {
		if !show.WellFormed() {
			dropped++
			continue
		}
		for _, name := range show.Artists {
			if _, ok := nameSet[Normalize(name)]; ok {
				matches = append(matches, show.Clone())
				break
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		di, iok := showtime.ParseFlexible(matches[i].Date)
		dj, jok := showtime.ParseFlexible(matches[j].Date)
		if iok != jok {
			return iok
		}
		if !iok {
			return false
		}
		return di.Before(dj)
	})

	return matches, dropped, nil
}
