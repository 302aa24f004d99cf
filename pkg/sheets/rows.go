package sheets

import (
	"strconv"
	"strings"
)

// Expected column names of the three dataset sources. These are conventions
// of the published sheets, not enforced; absent columns read as empty.
const (
	ColumnPart        = "part"
	ColumnArcTitle    = "arc_title"
	ColumnArcPart     = "arc_part"
	ColumnTitle       = "title_en"
	ColumnDescription = "description_en"

	ColumnReleaseLabel    = "One Pace Episode"
	ColumnReleaseDate     = "Release Date"
	ColumnReleaseChapters = "Chapters"
	ColumnReleaseEpisodes = "Episodes"
)

// SeasonMapRow is one curated arc-to-season mapping. Part is nil when the
// part cell is blank or not a number.
type SeasonMapRow struct {
	Part        *int
	Title       string
	Description string
}

// EpisodeRow is one canonical episode as defined by the curated data.
type EpisodeRow struct {
	ArcTitle    string
	ArcPart     int
	Title       string
	Description string
}

// ReleaseRow is one real-world release entry. Date may be empty or the
// "To Be Released" sentinel; Chapters and Episodes may be empty.
type ReleaseRow struct {
	Label    string
	Date     string
	Chapters string
	Episodes string
}

// SeasonMapRows maps raw rows into typed season-map records.
func SeasonMapRows(rows []Row) []SeasonMapRow {
	out := make([]SeasonMapRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, SeasonMapRow{
			Part:        parseOptionalInt(r[ColumnPart]),
			Title:       strings.TrimSpace(r[ColumnTitle]),
			Description: strings.TrimSpace(r[ColumnDescription]),
		})
	}
	return out
}

// EpisodeRows maps raw rows into typed episode records. Rows whose arc part
// is not a number are kept with ArcPart zero; the lookup builder drops them.
func EpisodeRows(rows []Row) []EpisodeRow {
	out := make([]EpisodeRow, 0, len(rows))
	for _, r := range rows {
		part, _ := strconv.Atoi(strings.TrimSpace(r[ColumnArcPart]))
		out = append(out, EpisodeRow{
			ArcTitle:    strings.TrimSpace(r[ColumnArcTitle]),
			ArcPart:     part,
			Title:       strings.TrimSpace(r[ColumnTitle]),
			Description: strings.TrimSpace(r[ColumnDescription]),
		})
	}
	return out
}

// ReleaseRows maps raw rows into typed release records.
func ReleaseRows(rows []Row) []ReleaseRow {
	out := make([]ReleaseRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, ReleaseRow{
			Label:    strings.TrimSpace(r[ColumnReleaseLabel]),
			Date:     strings.TrimSpace(r[ColumnReleaseDate]),
			Chapters: strings.TrimSpace(r[ColumnReleaseChapters]),
			Episodes: strings.TrimSpace(r[ColumnReleaseEpisodes]),
		})
	}
	return out
}

func parseOptionalInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}

	return &n
}
