package analytics

import (
	_ "embed"
	"os"

	"github.com/morikuni/failure"
	"gopkg.in/yaml.v3"
)

//go:embed keywords.yaml
var defaultKeywordsYAML []byte

// KeywordSet is the externalized vocabulary resource: the classifier's
// technology keywords, the curated technology vocabulary used by
// tech-only rankings, and base stop-word lists keyed by ISO 639-1
// language code.
type KeywordSet struct {
	TechKeywords   []string            `yaml:"tech_keywords"`
	TechVocabulary []string            `yaml:"tech_vocabulary"`
	Stopwords      map[string][]string `yaml:"stopwords"`
}

// DefaultKeywords parses the embedded resource shipped with the binary.
func DefaultKeywords() *KeywordSet {
	ks, err := parseKeywords(defaultKeywordsYAML)
	if err != nil {
		// The embedded resource is part of the build.
		panic(err)
	}
	return ks
}

// LoadKeywords reads a keyword resource from disk.
func LoadKeywords(path string) (*KeywordSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, failure.Translate(err, NotFound, failure.Context{"path": path})
		}
		return nil, failure.MarkUnexpected(err)
	}
	ks, err := parseKeywords(data)
	if err != nil {
		return nil, failure.Translate(err, InvalidSchema, failure.Context{"path": path})
	}
	return ks, nil
}

func parseKeywords(data []byte) (*KeywordSet, error) {
	var ks KeywordSet
	if err := yaml.Unmarshal(data, &ks); err != nil {
		return nil, err
	}
	return &ks, nil
}
