package analytics

import "strings"

// Classifier labels bookmark text as technology-related or not by
// case-insensitive substring matching against a fixed keyword list.
type Classifier struct {
	keywords []string
}

func NewClassifier(ks *KeywordSet) *Classifier {
	keywords := make([]string, 0, len(ks.TechKeywords))
	for _, kw := range ks.TechKeywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return &Classifier{keywords: keywords}
}

// Categorize is total: empty or non-matching text yields CategoryOther,
// a single keyword hit suffices for CategoryTechnology.
func (c *Classifier) Categorize(text string) Category {
	if text == "" {
		return CategoryOther
	}
	lowered := strings.ToLower(text)
	for _, kw := range c.keywords {
		if strings.Contains(lowered, kw) {
			return CategoryTechnology
		}
	}
	return CategoryOther
}

// Apply derives Category for every record in place. Run after every
// load; the column is never read from the CSV.
func (c *Classifier) Apply(records []Bookmark) {
	for i := range records {
		records[i].Category = c.Categorize(records[i].FullText)
	}
}
