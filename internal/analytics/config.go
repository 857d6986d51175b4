package analytics

const DefaultTopWordsLimit = 50

type Config struct {
	// InputPath is the bookmark CSV to analyze.
	InputPath string
	// KeywordsPath overrides the embedded keyword/stop-word resource.
	KeywordsPath string
	// DictionaryPath overrides the segmenter's built-in dictionary.
	// Comma separated when more than one file is given.
	DictionaryPath string
	// TopWordsLimit caps the frequency ranking size.
	TopWordsLimit int
	// TechOnly restricts the ranking to the technology vocabulary.
	TechOnly bool
}

func DefaultConfig() Config {
	return Config{
		TopWordsLimit: DefaultTopWordsLimit,
		TechOnly:      false,
	}
}
