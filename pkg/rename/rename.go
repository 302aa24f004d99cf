// Package rename matches local release filenames against the curated
// lookups and proposes canonical names. It is report-only and never touches
// the filesystem.
package rename

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/pacemeta/pacemeta/pkg/lookup"
)

var (
	ErrNoMatch        = errors.New("filename does not match the release pattern")
	ErrUnknownArc     = errors.New("arc title not present in season map")
	ErrUnknownEpisode = errors.New("episode not present in lookups")
)

// filePattern matches release filenames of the form
// "[One Pace][1-7] Romance Dawn 01 [1080p][ABCDEF12].mkv", capturing the arc
// title and the episode number.
var filePattern = regexp.MustCompile(`^\[One Pace\]\[[^\]]*\]\s+(.+?)\s+(\d+)\s+\[`)

// illegalPathChars are stripped from proposed filenames.
var illegalPathChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// Proposal is the result of matching one filename.
type Proposal struct {
	Original string
	Proposed string
	Season   int
	Episode  int
	Title    string
}

// AlreadyCorrect reports whether the file already carries its canonical name.
func (p Proposal) AlreadyCorrect() bool {
	return p.Original == p.Proposed
}

// Match extracts the arc title and episode number from a release filename.
func Match(filename string) (string, int, error) {
	m := filePattern.FindStringSubmatch(filename)
	if m == nil {
		return "", 0, ErrNoMatch
	}

	episode, err := strconv.Atoi(m[2])
	if err != nil {
		return "", 0, ErrNoMatch
	}

	return strings.TrimSpace(m[1]), episode, nil
}

// Propose resolves a filename through the lookups and builds the canonical
// name, keeping the original extension.
func Propose(filename string, set *lookup.Set) (Proposal, error) {
	arc, episode, err := Match(filename)
	if err != nil {
		return Proposal{}, err
	}

	season, ok := lookup.ResolveSeason(arc, set.SeasonNumbers)
	if !ok {
		return Proposal{}, fmt.Errorf("%w: %q", ErrUnknownArc, arc)
	}

	info, ok := set.Episodes[lookup.EpisodeKey(season, episode)]
	if !ok {
		return Proposal{}, fmt.Errorf("%w: %s episode %d", ErrUnknownEpisode, arc, episode)
	}

	proposed := fmt.Sprintf("One Pace - S%02dE%02d - %s%s",
		season, episode, Sanitize(info.Title), filepath.Ext(filename))

	return Proposal{
		Original: filename,
		Proposed: proposed,
		Season:   season,
		Episode:  episode,
		Title:    info.Title,
	}, nil
}

// Sanitize strips characters that are illegal in path components.
func Sanitize(name string) string {
	return strings.TrimSpace(illegalPathChars.ReplaceAllString(name, ""))
}

var videoExtensions = map[string]struct{}{
	".mkv":  {},
	".mp4":  {},
	".avi":  {},
	".m4v":  {},
	".webm": {},
}

// IsVideo reports whether a filename carries a known video extension.
func IsVideo(filename string) bool {
	_, ok := videoExtensions[strings.ToLower(filepath.Ext(filename))]
	return ok
}
