package lookup

import (
	"fmt"
	"strings"

	"github.com/pacemeta/pacemeta/pkg/sheets"
)

// ToBeReleased is the date sentinel for entries that exist in the release
// sheet but have not shipped yet.
const ToBeReleased = "To Be Released"

// Release is one real-world release entry joined by label containment.
type Release = sheets.ReleaseRow

// ReleaseIndex joins release rows to episode numbers by zero-padded
// substring containment of the episode number in the label. The dataset is
// small (hundreds of rows), so a linear scan per lookup is fine; collapsing
// this into an exact-match map would change the documented containment
// semantics.
type ReleaseIndex []Release

// Find returns the first release whose label contains the zero-padded
// episode number as a distinct numeric token: "05" matches "Episode 05" but
// not "Episode 105".
func (ri ReleaseIndex) Find(episode int) (Release, bool) {
	token := fmt.Sprintf("%02d", episode)
	for _, r := range ri {
		if containsToken(r.Label, token) {
			return r, true
		}
	}

	return Release{}, false
}

// Released reports whether the release carries a usable date.
func Released(r Release) bool {
	return r.Date != "" && r.Date != ToBeReleased
}

// containsToken reports whether label contains token not flanked by other
// digits, so a padded episode number can't match inside a longer number.
func containsToken(label, token string) bool {
	for from := 0; ; {
		i := strings.Index(label[from:], token)
		if i < 0 {
			return false
		}
		i += from

		before := i - 1
		after := i + len(token)
		if (before < 0 || !isDigit(label[before])) && (after >= len(label) || !isDigit(label[after])) {
			return true
		}

		from = i + 1
	}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
