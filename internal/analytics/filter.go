package analytics

import "time"

// FilterOptions restricts a record set the way the presentation layer
// does: an inclusive calendar-day range and a category allow-list.
// Zero values leave the corresponding dimension unrestricted.
type FilterOptions struct {
	From       time.Time
	To         time.Time
	Categories []Category
}

// Filter returns the records matching the options, preserving order.
func Filter(records []Bookmark, opts FilterOptions) []Bookmark {
	var from, to time.Time
	if !opts.From.IsZero() {
		from = truncateToDay(opts.From)
	}
	if !opts.To.IsZero() {
		to = truncateToDay(opts.To)
	}
	allowed := make(map[Category]struct{}, len(opts.Categories))
	for _, cat := range opts.Categories {
		allowed[cat] = struct{}{}
	}

	var out []Bookmark
	for _, rec := range records {
		day := truncateToDay(rec.TweetedAt)
		if !from.IsZero() && day.Before(from) {
			continue
		}
		if !to.IsZero() && day.After(to) {
			continue
		}
		if len(allowed) > 0 {
			if _, ok := allowed[rec.Category]; !ok {
				continue
			}
		}
		out = append(out, rec)
	}
	return out
}

// Summarize computes the headline statistics of a record set. An empty
// set yields a zero Summary.
func Summarize(records []Bookmark) Summary {
	if len(records) == 0 {
		return Summary{}
	}
	authors := make(map[string]struct{})
	tech := 0
	var from, to time.Time
	for _, rec := range records {
		authors[rec.ScreenName] = struct{}{}
		if rec.Category == CategoryTechnology {
			tech++
		}
		if from.IsZero() || rec.TweetedAt.Before(from) {
			from = rec.TweetedAt
		}
		if to.IsZero() || rec.TweetedAt.After(to) {
			to = rec.TweetedAt
		}
	}
	return Summary{
		Total:         len(records),
		TechRatio:     float64(tech) / float64(len(records)),
		UniqueAuthors: len(authors),
		From:          from,
		To:            to,
	}
}
