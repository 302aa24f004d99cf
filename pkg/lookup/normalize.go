// Package lookup builds the join tables between the curated datasets and a
// media server catalog.
package lookup

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Sentinel arc titles that resolve to season 0. The two are independent
// buckets in the curated data and are matched exactly, not via the season
// map.
const (
	SpecialsTitle  = "Specials"
	FanLetterTitle = "One Piece Fan Letter"
)

var lowercase = cases.Lower(language.Und)

// NormalizeTitle canonicalizes a title for case and whitespace insensitive
// matching. It is the join key for every title-based lookup.
func NormalizeTitle(s string) string {
	return lowercase.String(strings.TrimSpace(s))
}

// ResolveSeason maps an arc title to its season number. "Specials" and
// "One Piece Fan Letter" always resolve to season 0 regardless of the map.
// ok is false when the arc is unknown; callers skip the record and log a
// warning rather than failing the run.
func ResolveSeason(arcTitle string, numbers map[string]int) (int, bool) {
	if arcTitle == SpecialsTitle {
		return 0, true
	}
	if arcTitle == FanLetterTitle {
		return 0, true
	}

	n, ok := numbers[NormalizeTitle(arcTitle)]
	return n, ok
}
