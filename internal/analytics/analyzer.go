package analytics

import (
	"os"
	"regexp"
	"sort"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"code.sajari.com/sego"
	"github.com/morikuni/failure"
	"github.com/retarus/whatlanggo"
	"github.com/rs/zerolog/log"
)

// Platform-noise tokens excluded from every ranking regardless of the
// detected language: retweet markers, URL fragments, laughter and
// emphasis tokens, common particles and copulas.
var noiseTokens = []string{
	"rt", "http", "https", "co", "jp", "com", "www", "amp",
	"...", "…", "！", "？", "笑", "w", "ｗ", "♪", "：", "；",
	"する", "いる", "なる", "ある", "れる",
	"の", "が", "に", "を", "は", "た", "です", "ます", "ない",
	"だ", "って", "て", "と", "も", "な",
}

var (
	urlPattern = regexp.MustCompile(`https?://\S+|www\.\S+`)
	// Everything that is not a word character or whitespace.
	symbolPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
)

// Analyzer ranks words across a text collection. The segmenter
// dictionary is loaded lazily on first use and reused afterwards.
type Analyzer struct {
	dictPath  string
	techVocab map[string]struct{}
	stopBase  map[string][]string

	initOnce  sync.Once
	initErr   error
	segmenter sego.Segmenter
}

func NewAnalyzer(cfg Config, ks *KeywordSet) *Analyzer {
	// The segmenter lowercases Latin tokens, so the vocabulary lookup
	// has to be case-folded or capitalized entries could never match.
	vocab := make(map[string]struct{}, len(ks.TechVocabulary))
	for _, w := range ks.TechVocabulary {
		vocab[strings.ToLower(w)] = struct{}{}
	}
	return &Analyzer{
		dictPath:  cfg.DictionaryPath,
		techVocab: vocab,
		stopBase:  ks.Stopwords,
	}
}

// TopWords cleans, segments, filters and counts the given texts and
// returns at most limit entries by descending count. Ties keep
// first-encountered order.
//
// In default mode tokens made up entirely of ASCII characters are
// dropped on purpose: the ranking is biased toward multi-byte
// vocabulary, incidental English words included. Tech-only mode instead
// keeps only members of the curated technology vocabulary.
func (a *Analyzer) TopWords(texts []string, limit int, techOnly bool) ([]WordCount, error) {
	if limit <= 0 {
		return nil, failure.New(InvalidArgument,
			failure.Messagef("limit must be positive, got %d", limit))
	}
	if len(texts) == 0 {
		return nil, failure.New(EmptyInput, failure.Message("no texts to analyze"))
	}
	usable := false
	for _, text := range texts {
		if strings.TrimSpace(text) != "" {
			usable = true
			break
		}
	}
	if !usable {
		return nil, failure.New(EmptyInput, failure.Message("no usable text"))
	}

	cleaned := make([]string, 0, len(texts))
	var joined strings.Builder
	for _, text := range texts {
		c := cleanText(text)
		if strings.TrimSpace(c) == "" {
			continue
		}
		if joined.Len() > 0 {
			joined.WriteByte(' ')
		}
		joined.WriteString(c)
		cleaned = append(cleaned, c)
	}
	if len(cleaned) == 0 {
		// Usable input that cleanup reduced to nothing ranks as empty,
		// it is not a failure.
		return []WordCount{}, nil
	}

	if err := a.initSegmenter(); err != nil {
		return nil, err
	}
	stop := a.stopwordSet(joined.String())

	counts := make(map[string]int)
	order := make([]string, 0, 64)
	for _, text := range cleaned {
		segments := a.segmenter.Segment([]byte(text))
		for _, word := range sego.SegmentsToSlice(segments, false) {
			word = strings.TrimSpace(word)
			if !a.keep(word, stop, techOnly) {
				continue
			}
			if _, seen := counts[word]; !seen {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > limit {
		order = order[:limit]
	}
	result := make([]WordCount, len(order))
	for i, word := range order {
		result[i] = WordCount{Word: word, Count: counts[word]}
	}
	log.Debug().Int("words", len(result)).Bool("tech_only", techOnly).
		Msg("word frequency computed")
	return result, nil
}

func (a *Analyzer) initSegmenter() error {
	a.initOnce.Do(func() {
		if a.dictPath == "" {
			a.segmenter.LoadDefaultDictionary()
			return
		}
		// sego aborts the process on unreadable dictionaries, so check
		// the files before handing them over.
		for _, file := range strings.Split(a.dictPath, ",") {
			if _, err := os.Stat(file); err != nil {
				if os.IsNotExist(err) {
					a.initErr = failure.Translate(err, NotFound,
						failure.Context{"dictionary": file})
				} else {
					a.initErr = failure.MarkUnexpected(err)
				}
				return
			}
		}
		a.segmenter.LoadDictionary(a.dictPath)
	})
	return a.initErr
}

// stopwordSet builds the stop-word set for the given text sample: the
// base list of the dominant language plus the fixed noise supplement.
// A language without a shipped base list degrades to the supplement
// alone instead of failing.
func (a *Analyzer) stopwordSet(sample string) map[string]struct{} {
	set := make(map[string]struct{}, len(noiseTokens))
	for _, tok := range noiseTokens {
		set[strings.ToLower(tok)] = struct{}{}
	}
	lang := whatlanggo.DetectLang(sample)
	base, ok := a.stopBase[lang.Iso6391()]
	if !ok {
		log.Warn().Str("language", lang.Iso6391()).
			Msg("no stop-word list for detected language, noise tokens only")
		return set
	}
	for _, w := range base {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}

func (a *Analyzer) keep(word string, stop map[string]struct{}, techOnly bool) bool {
	if utf8.RuneCountInString(word) <= 1 {
		return false
	}
	if isNumeric(word) {
		return false
	}
	if techOnly {
		_, ok := a.techVocab[strings.ToLower(word)]
		return ok
	}
	if _, ok := stop[strings.ToLower(word)]; ok {
		return false
	}
	return !isASCII(word)
}

func cleanText(text string) string {
	text = urlPattern.ReplaceAllString(text, "")
	return symbolPattern.ReplaceAllString(text, "")
}

func isNumeric(word string) bool {
	for _, r := range word {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func isASCII(word string) bool {
	for _, r := range word {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}
