package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterByDateRange(t *testing.T) {
	records := []Bookmark{
		{TweetedAt: day(1), ScreenName: "alice"},
		{TweetedAt: day(2), ScreenName: "bob"},
		{TweetedAt: day(3), ScreenName: "carol"},
	}

	out := Filter(records, FilterOptions{
		From: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC),
	})
	require.Len(t, out, 2)
	assert.Equal(t, "bob", out[0].ScreenName)
	assert.Equal(t, "carol", out[1].ScreenName)
}

func TestFilterRangeIsInclusive(t *testing.T) {
	// Bounds compare on calendar days, so a record late on the last day
	// still matches a midnight To bound.
	records := []Bookmark{{TweetedAt: time.Date(2024, 3, 2, 23, 59, 0, 0, time.UTC)}}
	out := Filter(records, FilterOptions{
		To: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
	})
	assert.Len(t, out, 1)
}

func TestFilterByCategory(t *testing.T) {
	records := []Bookmark{
		{TweetedAt: day(1), Category: CategoryTechnology},
		{TweetedAt: day(2), Category: CategoryOther},
	}

	out := Filter(records, FilterOptions{Categories: []Category{CategoryTechnology}})
	require.Len(t, out, 1)
	assert.Equal(t, CategoryTechnology, out[0].Category)
}

func TestFilterNoRestrictions(t *testing.T) {
	records := []Bookmark{
		{TweetedAt: day(1)},
		{TweetedAt: day(2)},
	}
	assert.Len(t, Filter(records, FilterOptions{}), 2)
}

func TestSummarize(t *testing.T) {
	records := []Bookmark{
		{TweetedAt: day(3), ScreenName: "alice", Category: CategoryTechnology},
		{TweetedAt: day(1), ScreenName: "bob", Category: CategoryOther},
		{TweetedAt: day(2), ScreenName: "alice", Category: CategoryTechnology},
		{TweetedAt: day(4), ScreenName: "carol", Category: CategoryOther},
	}

	s := Summarize(records)
	assert.Equal(t, 4, s.Total)
	assert.InDelta(t, 0.5, s.TechRatio, 1e-9)
	assert.Equal(t, 3, s.UniqueAuthors)
	assert.Equal(t, day(1), s.From)
	assert.Equal(t, day(4), s.To)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}
