package analytics

import "time"

// Category is derived from a bookmark's text, never loaded from the CSV.
type Category string

const (
	CategoryTechnology Category = "technology"
	CategoryOther      Category = "other"
)

// Bookmark is one bookmarked post. Category is zero until a Classifier
// pass has run over the loaded records.
type Bookmark struct {
	TweetedAt  time.Time `json:"tweeted_at"`
	ScreenName string    `json:"screen_name"`
	FullText   string    `json:"full_text"`
	Category   Category  `json:"category,omitempty"`
}

// WordCount is one entry of a frequency ranking. Results are ordered by
// descending count; ties keep first-encountered order.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type TimePoint struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

// TimeSeriesChart holds daily bookmark counts, one point per calendar day
// from the earliest to the latest record, gaps filled with zero.
type TimeSeriesChart struct {
	Title  string      `json:"title"`
	XLabel string      `json:"x_label"`
	YLabel string      `json:"y_label"`
	Points []TimePoint `json:"points"`
}

type CategorySlice struct {
	Name  Category `json:"name"`
	Count int      `json:"count"`
	Ratio float64  `json:"ratio"`
}

// CategoryChart holds per-category counts and their share of the total.
// Ratios sum to 1 over all slices.
type CategoryChart struct {
	Title  string          `json:"title"`
	Slices []CategorySlice `json:"slices"`
}

// BarChart holds ranked word frequencies for display.
type BarChart struct {
	Title  string      `json:"title"`
	XLabel string      `json:"x_label"`
	YLabel string      `json:"y_label"`
	Bars   []WordCount `json:"bars"`
}

// Summary are the headline statistics for a record set.
type Summary struct {
	Total         int       `json:"total"`
	TechRatio     float64   `json:"tech_ratio"`
	UniqueAuthors int       `json:"unique_authors"`
	From          time.Time `json:"from,omitempty"`
	To            time.Time `json:"to,omitempty"`
}
