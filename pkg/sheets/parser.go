// Package sheets fetches and parses the published spreadsheet datasets that
// carry the curated season, episode, and release metadata.
package sheets

import (
	"strings"
)

// Delimiter is the column separator of the published datasets. The sources
// are tab-separated exports.
const Delimiter = "\t"

// Row is one parsed data line keyed by header column name.
type Row map[string]string

// Parse turns raw delimited text into an ordered sequence of rows. The first
// non-empty line is the header; each following line becomes a Row keyed by
// the header names. Missing trailing fields default to the empty string and
// extra fields are ignored. Lines consisting only of whitespace are dropped.
// Structurally empty input (fewer than a header and one data line) yields an
// empty slice rather than an error.
func Parse(text string) []Row {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}

	if len(lines) < 2 {
		return []Row{}
	}

	header := strings.Split(lines[0], Delimiter)

	rows := make([]Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		cells := strings.Split(line, Delimiter)

		row := make(Row, len(header))
		for i, name := range header {
			if i < len(cells) {
				row[name] = cells[i]
				continue
			}
			row[name] = ""
		}

		rows = append(rows, row)
	}

	return rows
}
