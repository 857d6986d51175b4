package analytics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/morikuni/failure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bookmarks.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeCSV(t, `tweeted_at,screen_name,full_text
2024-03-01T09:15:00Z,alice,Pythonの勉強を始めた
2024-03-02 21:04:05,bob,"今日の夕飯, 最高だった"
2024-03-03,carol,Dockerでデプロイした
`)

	records, err := Load(path)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "alice", records[0].ScreenName)
	assert.Equal(t, "今日の夕飯, 最高だった", records[1].FullText)
	for _, rec := range records {
		assert.False(t, rec.TweetedAt.IsZero())
		assert.Empty(t, rec.Category, "category must stay underived on load")
	}
	assert.Equal(t, 2024, records[2].TweetedAt.Year())
}

func TestLoadIgnoresExtraColumns(t *testing.T) {
	path := writeCSV(t, `id,tweeted_at,lang,screen_name,full_text
1,2024-03-01T09:15:00Z,ja,alice,テスト投稿
`)

	records, err := Load(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "テスト投稿", records[0].FullText)
}

func TestLoadStripsByteOrderMark(t *testing.T) {
	path := writeCSV(t, "\uFEFF"+`tweeted_at,screen_name,full_text
2024-03-01T09:15:00Z,alice,テスト投稿
`)

	records, err := Load(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "alice", records[0].ScreenName)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, failure.Is(err, NotFound))
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeCSV(t, "")
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, failure.Is(err, EmptyInput))
}

func TestLoadHeaderOnly(t *testing.T) {
	path := writeCSV(t, "tweeted_at,screen_name,full_text\n")
	records, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoadMissingRequiredColumn(t *testing.T) {
	path := writeCSV(t, `tweeted_at,screen_name
2024-03-01T09:15:00Z,alice
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, failure.Is(err, InvalidSchema))
	msg, ok := failure.MessageOf(err)
	require.True(t, ok)
	assert.Contains(t, msg, "full_text")
}

func TestLoadMalformedRow(t *testing.T) {
	path := writeCSV(t, `tweeted_at,screen_name,full_text
2024-03-01T09:15:00Z,alice,ok
2024-03-02T09:15:00Z,bob
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, failure.Is(err, InvalidSchema))
}

func TestLoadUnparseableTimestamp(t *testing.T) {
	path := writeCSV(t, `tweeted_at,screen_name,full_text
yesterday,alice,ok
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, failure.Is(err, InvalidSchema))
}

func TestLoadIsAtomic(t *testing.T) {
	// A bad row anywhere aborts the whole load, even if earlier rows parsed.
	path := writeCSV(t, `tweeted_at,screen_name,full_text
2024-03-01T09:15:00Z,alice,ok
2024-03-02T09:15:00Z,bob,ok
not-a-date,carol,ok
`)
	records, err := Load(path)
	require.Error(t, err)
	assert.Nil(t, records)
}
