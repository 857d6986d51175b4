package analytics

import (
	"sort"
	"time"

	"github.com/morikuni/failure"
)

// TimeSeries buckets records into daily counts, one point per calendar
// day from the earliest to the latest record with zero-filled gaps.
// Days are taken in whatever zone the timestamps already carry.
func TimeSeries(records []Bookmark) (*TimeSeriesChart, error) {
	if len(records) == 0 {
		return nil, failure.New(EmptyInput, failure.Message("no records to chart"))
	}
	byDay := make(map[time.Time]int, len(records))
	var first, last time.Time
	for i, rec := range records {
		if rec.TweetedAt.IsZero() {
			return nil, failure.New(InvalidSchema,
				failure.Messagef("record %d has no timestamp", i))
		}
		day := truncateToDay(rec.TweetedAt)
		byDay[day]++
		if first.IsZero() || day.Before(first) {
			first = day
		}
		if last.IsZero() || day.After(last) {
			last = day
		}
	}

	var points []TimePoint
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		points = append(points, TimePoint{Date: day, Count: byDay[day]})
	}
	return &TimeSeriesChart{
		Title:  "Daily bookmark counts",
		XLabel: "date",
		YLabel: "bookmarks",
		Points: points,
	}, nil
}

// CategoryDistribution counts records per category and renders the
// counts as proportions summing to 1, largest first.
func CategoryDistribution(records []Bookmark) (*CategoryChart, error) {
	if len(records) == 0 {
		return nil, failure.New(EmptyInput, failure.Message("no records to chart"))
	}
	counts := make(map[Category]int)
	var order []Category
	for i, rec := range records {
		if rec.Category == "" {
			return nil, failure.New(InvalidSchema,
				failure.Messagef("record %d has no category, classify after loading", i))
		}
		if _, seen := counts[rec.Category]; !seen {
			order = append(order, rec.Category)
		}
		counts[rec.Category]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	total := float64(len(records))
	slices := make([]CategorySlice, len(order))
	for i, cat := range order {
		slices[i] = CategorySlice{
			Name:  cat,
			Count: counts[cat],
			Ratio: float64(counts[cat]) / total,
		}
	}
	return &CategoryChart{Title: "Category distribution", Slices: slices}, nil
}

// TopWordsChart wraps a frequency ranking as bar-chart data.
func TopWordsChart(words []WordCount, techOnly bool) *BarChart {
	title := "Frequent words"
	if techOnly {
		title = "Frequent words (technology vocabulary)"
	}
	return &BarChart{
		Title:  title,
		XLabel: "word",
		YLabel: "occurrences",
		Bars:   words,
	}
}

// truncateToDay takes the calendar date in the timestamp's own zone.
// The bucket itself is pinned to UTC midnight so that equal dates are
// equal map keys regardless of the zone they were parsed with.
func truncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
