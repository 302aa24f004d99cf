package lookup

import (
	"context"
	"fmt"

	"github.com/pacemeta/pacemeta/pkg/logger"
	"github.com/pacemeta/pacemeta/pkg/sheets"
)

// SeasonInfo is the canonical title and description of one season.
type SeasonInfo struct {
	Title       string
	Description string
}

// EpisodeInfo is the canonical title and description of one episode.
type EpisodeInfo struct {
	Title       string
	Description string
}

// Set bundles every lookup a reconciliation run needs. Built once per
// session and reused across runs.
type Set struct {
	// SeasonNumbers maps a normalized arc title to its season number.
	SeasonNumbers map[string]int
	// Seasons maps a season number to its canonical title and description.
	Seasons map[int]SeasonInfo
	// Episodes maps an EpisodeKey to canonical episode metadata.
	Episodes map[string]EpisodeInfo
	// Releases is scanned linearly per lookup; see ReleaseIndex.
	Releases ReleaseIndex
}

// EpisodeKey composes the join key between catalog items and curated data.
// Both numbers are plain decimal integers; zero-padding either side breaks
// the join silently.
func EpisodeKey(season, episode int) string {
	return fmt.Sprintf("%d-%d", season, episode)
}

// BuildSet builds every lookup from the parsed datasets.
func BuildSet(ctx context.Context, ds sheets.Datasets) *Set {
	seasonRows := sheets.SeasonMapRows(ds.Seasons)

	numbers := BuildSeasonNumbers(seasonRows)
	return &Set{
		SeasonNumbers: numbers,
		Seasons:       BuildSeasons(seasonRows),
		Episodes:      BuildEpisodes(ctx, sheets.EpisodeRows(ds.Episodes), numbers),
		Releases:      ReleaseIndex(sheets.ReleaseRows(ds.Releases)),
	}
}

// BuildSeasonNumbers keeps rows carrying both a part number and a title.
// The "Specials" title forces season 0 regardless of its part cell.
func BuildSeasonNumbers(rows []sheets.SeasonMapRow) map[string]int {
	numbers := make(map[string]int, len(rows))
	for _, r := range rows {
		if r.Title == "" {
			continue
		}

		if r.Title == SpecialsTitle {
			numbers[NormalizeTitle(r.Title)] = 0
			continue
		}

		if r.Part == nil {
			continue
		}

		numbers[NormalizeTitle(r.Title)] = *r.Part
	}

	return numbers
}

// BuildSeasons maps season numbers back to their canonical title and
// description for season-level updates.
func BuildSeasons(rows []sheets.SeasonMapRow) map[int]SeasonInfo {
	seasons := make(map[int]SeasonInfo, len(rows))
	for _, r := range rows {
		if r.Title == "" {
			continue
		}

		number := 0
		if r.Title != SpecialsTitle {
			if r.Part == nil {
				continue
			}
			number = *r.Part
		}

		seasons[number] = SeasonInfo{
			Title:       r.Title,
			Description: r.Description,
		}
	}

	return seasons
}

// BuildEpisodes resolves each row's arc to a season number and keys the
// result by EpisodeKey. Rows with unresolvable arcs are dropped with a
// warning.
func BuildEpisodes(ctx context.Context, rows []sheets.EpisodeRow, numbers map[string]int) map[string]EpisodeInfo {
	log := logger.FromCtx(ctx)

	episodes := make(map[string]EpisodeInfo, len(rows))
	for _, r := range rows {
		season, ok := ResolveSeason(r.ArcTitle, numbers)
		if !ok {
			log.Warnw("unresolvable arc, dropping episode row", "arc", r.ArcTitle, "part", r.ArcPart)
			continue
		}

		episodes[EpisodeKey(season, r.ArcPart)] = EpisodeInfo{
			Title:       r.Title,
			Description: r.Description,
		}
	}

	return episodes
}
