package reconcile

import (
	"testing"

	"github.com/pacemeta/pacemeta/pkg/catalog"
	"github.com/pacemeta/pacemeta/pkg/lookup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSet() *lookup.Set {
	return &lookup.Set{
		Episodes: map[string]lookup.EpisodeInfo{
			"1-3": {Title: "Romance Dawn", Description: "Dawn of the adventure."},
			"1-4": {Title: "Orange Town"},
		},
		Releases: lookup.ReleaseIndex{
			{Label: "One Pace Episode 03", Date: "2021-03-06", Chapters: "1-7", Episodes: "1-3"},
			{Label: "One Pace Episode 04", Date: lookup.ToBeReleased},
		},
	}
}

func TestSeasonFields(t *testing.T) {
	info := lookup.SeasonInfo{Title: "East Blue", Description: "The East Blue saga."}
	opts := Options{SeasonTitle: true, Description: true}

	t.Run("both fields differ", func(t *testing.T) {
		season := catalog.Season{Title: "Season 1", Summary: "old"}
		fields := seasonFields(season, info, opts)
		require.NotNil(t, fields.Title)
		require.NotNil(t, fields.Summary)
		assert.Equal(t, "East Blue", *fields.Title)
		assert.Equal(t, "The East Blue saga.", *fields.Summary)
	})

	t.Run("fields diff independently", func(t *testing.T) {
		season := catalog.Season{Title: "East Blue", Summary: "old"}
		fields := seasonFields(season, info, opts)
		assert.Nil(t, fields.Title)
		require.NotNil(t, fields.Summary)
	})

	t.Run("empty lookup values never overwrite", func(t *testing.T) {
		season := catalog.Season{Title: "Season 1", Summary: "old"}
		fields := seasonFields(season, lookup.SeasonInfo{Title: "East Blue"}, opts)
		require.NotNil(t, fields.Title)
		assert.Nil(t, fields.Summary)
	})

	t.Run("disabled options produce no diff", func(t *testing.T) {
		season := catalog.Season{Title: "Season 1", Summary: "old"}
		fields := seasonFields(season, info, Options{})
		assert.True(t, fields.Empty())
	})
}

func TestEpisodeFields(t *testing.T) {
	set := testSet()

	t.Run("missing lookup entry", func(t *testing.T) {
		episode := catalog.Episode{Number: 99, Title: "Unknown"}
		_, found := episodeFields(episode, 1, set, Options{Title: true})
		assert.False(t, found)
	})

	t.Run("title diff", func(t *testing.T) {
		episode := catalog.Episode{Number: 3, Title: "Old Title"}
		fields, found := episodeFields(episode, 1, set, Options{Title: true})
		require.True(t, found)
		require.NotNil(t, fields.Title)
		assert.Equal(t, "Romance Dawn", *fields.Title)
	})

	t.Run("matching title needs no update", func(t *testing.T) {
		episode := catalog.Episode{Number: 3, Title: "Romance Dawn"}
		fields, found := episodeFields(episode, 1, set, Options{Title: true})
		require.True(t, found)
		assert.True(t, fields.Empty())
	})

	t.Run("description includes release source lines", func(t *testing.T) {
		episode := catalog.Episode{Number: 3, Summary: "old"}
		fields, found := episodeFields(episode, 1, set, Options{Description: true})
		require.True(t, found)
		require.NotNil(t, fields.Summary)
		assert.Equal(t, "Dawn of the adventure.\n\nChapters: 1-7\nEpisodes: 1-3", *fields.Summary)
	})

	t.Run("empty lookup description is never applied", func(t *testing.T) {
		episode := catalog.Episode{Number: 4, Summary: "old"}
		fields, found := episodeFields(episode, 1, set, Options{Description: true})
		require.True(t, found)
		assert.Nil(t, fields.Summary)
	})

	t.Run("date set from release", func(t *testing.T) {
		episode := catalog.Episode{Number: 3}
		fields, found := episodeFields(episode, 1, set, Options{Date: true})
		require.True(t, found)
		require.NotNil(t, fields.AirDate)
		assert.Equal(t, "2021-03-06", *fields.AirDate)
	})

	t.Run("equivalent date in another layout needs no update", func(t *testing.T) {
		episode := catalog.Episode{Number: 3, AirDate: "March 6, 2021"}
		fields, found := episodeFields(episode, 1, set, Options{Date: true})
		require.True(t, found)
		assert.Nil(t, fields.AirDate)
	})

	t.Run("unreleased episodes get no date", func(t *testing.T) {
		episode := catalog.Episode{Number: 4}
		fields, found := episodeFields(episode, 1, set, Options{Date: true})
		require.True(t, found)
		assert.Nil(t, fields.AirDate)
	})
}

func TestComposeDescription(t *testing.T) {
	t.Run("no release", func(t *testing.T) {
		got := composeDescription("desc", lookup.Release{}, false)
		assert.Equal(t, "desc", got)
	})

	t.Run("chapters and episodes", func(t *testing.T) {
		release := lookup.Release{Chapters: "1-7", Episodes: "1-3"}
		got := composeDescription("desc", release, true)
		assert.Equal(t, "desc\n\nChapters: 1-7\nEpisodes: 1-3", got)
	})

	t.Run("chapters only", func(t *testing.T) {
		release := lookup.Release{Chapters: "1-7"}
		got := composeDescription("desc", release, true)
		assert.Equal(t, "desc\n\nChapters: 1-7", got)
	})

	t.Run("episodes only", func(t *testing.T) {
		release := lookup.Release{Episodes: "1-3"}
		got := composeDescription("desc", release, true)
		assert.Equal(t, "desc\n\nEpisodes: 1-3", got)
	})

	t.Run("release with no sources", func(t *testing.T) {
		got := composeDescription("desc", lookup.Release{Date: "2021-03-06"}, true)
		assert.Equal(t, "desc", got)
	})
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2021-03-06", "2021-03-06"},
		{"March 6, 2021", "2021-03-06"},
		{"Mar 6, 2021", "2021-03-06"},
		{"03/06/2021", "2021-03-06"},
		{" 2021-03-06 ", "2021-03-06"},
		{"To Be Released", "To Be Released"},
		{"", ""},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, normalizeDate(tc.input))
		})
	}
}
