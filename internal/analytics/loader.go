package analytics

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/morikuni/failure"
	"github.com/rs/zerolog/log"
)

var requiredColumns = []string{"tweeted_at", "screen_name", "full_text"}

// Layouts accepted for the tweeted_at column, tried in order.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Load reads a bookmark CSV and returns its records in file order with
// typed timestamps. It never returns a partial table: any malformed row
// aborts the whole load.
//
// The header is validated before any data row is read, so a schema
// problem on a large file is reported without materializing the table.
// Extra columns are ignored. Category is left zero; run a Classifier
// pass after every load.
func Load(path string) ([]Bookmark, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, failure.Translate(err, NotFound, failure.Context{"path": path})
		}
		return nil, failure.MarkUnexpected(err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err == io.EOF {
		return nil, failure.New(EmptyInput,
			failure.Message("file contains no data"), failure.Context{"path": path})
	}
	if err != nil {
		return nil, failure.Translate(err, InvalidSchema, failure.Context{"path": path})
	}

	// Exports commonly carry a UTF-8 BOM.
	header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	columns, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var records []Bookmark
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Includes column-count mismatches (csv.ErrFieldCount).
			return nil, failure.Translate(err, InvalidSchema,
				failure.Messagef("malformed row at line %d", line))
		}
		tweetedAt, err := parseTimestamp(row[columns.tweetedAt])
		if err != nil {
			return nil, failure.Translate(err, InvalidSchema,
				failure.Messagef("unparseable timestamp at line %d", line),
				failure.Context{"value": row[columns.tweetedAt]})
		}
		records = append(records, Bookmark{
			TweetedAt:  tweetedAt,
			ScreenName: row[columns.screenName],
			FullText:   row[columns.fullText],
		})
	}

	log.Info().Int("records", len(records)).Str("path", path).Msg("bookmark csv loaded")
	return records, nil
}

type columnIndex struct {
	tweetedAt  int
	screenName int
	fullText   int
}

func resolveColumns(header []string) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := pos[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return columnIndex{}, failure.New(InvalidSchema,
			failure.Messagef("missing required columns: %s", strings.Join(missing, ", ")))
	}
	return columnIndex{
		tweetedAt:  pos["tweeted_at"],
		screenName: pos["screen_name"],
		fullText:   pos["full_text"],
	}, nil
}

func parseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
