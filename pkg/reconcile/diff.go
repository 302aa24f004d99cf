package reconcile

import (
	"strings"
	"time"

	"github.com/pacemeta/pacemeta/pkg/catalog"
	"github.com/pacemeta/pacemeta/pkg/lookup"
)

// Options gates each field category of the diff independently. DryRun gates
// whether a computed diff is applied or only logged.
type Options struct {
	Title       bool
	SeasonTitle bool
	Description bool
	Date        bool
	Posters     bool
	DryRun      bool
}

// seasonFields computes the field diff of one season against the season map.
// Title and description are independent diffs.
func seasonFields(season catalog.Season, info lookup.SeasonInfo, opts Options) catalog.Fields {
	var fields catalog.Fields

	if opts.SeasonTitle && info.Title != "" && season.Title != info.Title {
		fields.Title = ptr(info.Title)
	}

	if opts.Description && info.Description != "" && season.Summary != info.Description {
		fields.Summary = ptr(info.Description)
	}

	return fields
}

// episodeFields computes the field diff of one episode against the episode
// lookup and release index. found is false when the episode has no lookup
// entry at all; the caller skips the item with a warning.
func episodeFields(episode catalog.Episode, seasonNumber int, set *lookup.Set, opts Options) (catalog.Fields, bool) {
	key := lookup.EpisodeKey(seasonNumber, episode.Number)
	info, ok := set.Episodes[key]
	if !ok {
		return catalog.Fields{}, false
	}

	var fields catalog.Fields

	if opts.Title && episode.Title != info.Title {
		fields.Title = ptr(info.Title)
	}

	release, hasRelease := set.Releases.Find(episode.Number)

	if opts.Description && info.Description != "" {
		desired := composeDescription(info.Description, release, hasRelease)
		if episode.Summary != desired {
			fields.Summary = ptr(desired)
		}
	}

	if opts.Date && hasRelease && lookup.Released(release) {
		desired := normalizeDate(release.Date)
		if normalizeDate(episode.AirDate) != desired {
			fields.AirDate = ptr(desired)
		}
	}

	return fields, true
}

// composeDescription appends the release's chapter and episode source lines
// to the canonical description when a release entry exists.
func composeDescription(description string, release lookup.Release, hasRelease bool) string {
	if !hasRelease {
		return description
	}

	var b strings.Builder
	b.WriteString(description)

	if release.Chapters != "" {
		b.WriteString("\n\nChapters: ")
		b.WriteString(release.Chapters)
	}

	if release.Episodes != "" {
		if release.Chapters == "" {
			b.WriteString("\n\nEpisodes: ")
		} else {
			b.WriteString("\nEpisodes: ")
		}
		b.WriteString(release.Episodes)
	}

	return b.String()
}

var dateLayouts = []string{
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
	"01/02/2006",
}

// normalizeDate reduces a date string to 2006-01-02 when one of the known
// layouts parses it; otherwise the trimmed raw string is compared as-is.
func normalizeDate(s string) string {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}

	return s
}

func ptr[A any](a A) *A {
	return &a
}
