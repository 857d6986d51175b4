package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"bookmarkanalytics/internal/analytics"
	"github.com/rs/zerolog/log"
)

type report struct {
	Summary    analytics.Summary          `json:"summary"`
	TimeSeries *analytics.TimeSeriesChart `json:"time_series"`
	Categories *analytics.CategoryChart   `json:"categories"`
	TopWords   *analytics.BarChart        `json:"top_words"`
}

func runAnalyze(config analytics.Config, fromStr, toStr string, categories []string, format string) error {
	keywords := analytics.DefaultKeywords()
	if config.KeywordsPath != "" {
		var err error
		keywords, err = analytics.LoadKeywords(config.KeywordsPath)
		if err != nil {
			return err
		}
	}

	records, err := analytics.Load(config.InputPath)
	if err != nil {
		return err
	}
	analytics.NewClassifier(keywords).Apply(records)

	opts, err := filterOptions(fromStr, toStr, categories)
	if err != nil {
		return err
	}
	filtered := analytics.Filter(records, opts)
	log.Info().Int("total", len(records)).Int("filtered", len(filtered)).
		Msg("records categorized and filtered")

	series, err := analytics.TimeSeries(filtered)
	if err != nil {
		return err
	}
	distribution, err := analytics.CategoryDistribution(filtered)
	if err != nil {
		return err
	}

	texts := make([]string, len(filtered))
	for i, rec := range filtered {
		texts[i] = rec.FullText
	}
	analyzer := analytics.NewAnalyzer(config, keywords)
	words, err := analyzer.TopWords(texts, config.TopWordsLimit, config.TechOnly)
	if err != nil {
		return err
	}

	rep := report{
		Summary:    analytics.Summarize(filtered),
		TimeSeries: series,
		Categories: distribution,
		TopWords:   analytics.TopWordsChart(words, config.TechOnly),
	}
	switch format {
	case "json":
		return writeJSON(rep)
	case "text":
		writeText(rep)
		return nil
	default:
		return fmt.Errorf("invalid report format: %s, expected: [text, json]", format)
	}
}

func filterOptions(fromStr, toStr string, categories []string) (analytics.FilterOptions, error) {
	var opts analytics.FilterOptions
	if fromStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return opts, fmt.Errorf("invalid --from date %q: %w", fromStr, err)
		}
		opts.From = from
	}
	if toStr != "" {
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return opts, fmt.Errorf("invalid --to date %q: %w", toStr, err)
		}
		opts.To = to
	}
	for _, cat := range categories {
		switch analytics.Category(strings.ToLower(cat)) {
		case analytics.CategoryTechnology:
			opts.Categories = append(opts.Categories, analytics.CategoryTechnology)
		case analytics.CategoryOther:
			opts.Categories = append(opts.Categories, analytics.CategoryOther)
		default:
			return opts, fmt.Errorf("invalid category %q, expected: [technology, other]", cat)
		}
	}
	return opts, nil
}

func writeJSON(rep report) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rep)
}

func writeText(rep report) {
	fmt.Printf("Bookmarks: %d (%d authors), %s to %s\n",
		rep.Summary.Total, rep.Summary.UniqueAuthors,
		rep.Summary.From.Format("2006-01-02"), rep.Summary.To.Format("2006-01-02"))
	fmt.Printf("Technology share: %.1f%%\n\n", rep.Summary.TechRatio*100)

	fmt.Println(rep.TimeSeries.Title)
	for _, p := range rep.TimeSeries.Points {
		fmt.Printf("  %s  %d\n", p.Date.Format("2006-01-02"), p.Count)
	}
	fmt.Println()

	fmt.Println(rep.Categories.Title)
	for _, s := range rep.Categories.Slices {
		fmt.Printf("  %-12s %5d  %5.1f%%\n", s.Name, s.Count, s.Ratio*100)
	}
	fmt.Println()

	fmt.Println(rep.TopWords.Title)
	for _, b := range rep.TopWords.Bars {
		fmt.Printf("  %-24s %d\n", b.Word, b.Count)
	}
}
