package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	c := NewClassifier(DefaultKeywords())

	tests := []struct {
		name string
		text string
		want Category
	}{
		{"japanese tech term", "Pythonプログラミングについて", CategoryTechnology},
		{"plain everyday text", "今日の天気について", CategoryOther},
		{"empty text", "", CategoryOther},
		{"case insensitive", "LEARNING DOCKER THE HARD WAY", CategoryTechnology},
		{"japanese keyword", "セキュリティ対策のまとめ", CategoryTechnology},
		{"single hit suffices", "旅行の写真とgithubのリンク", CategoryTechnology},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Categorize(tt.text))
		})
	}
}

func TestClassifierApply(t *testing.T) {
	c := NewClassifier(DefaultKeywords())
	records := []Bookmark{
		{FullText: "機械学習の入門記事"},
		{FullText: "美味しいラーメン屋を見つけた"},
	}
	c.Apply(records)
	assert.Equal(t, CategoryTechnology, records[0].Category)
	assert.Equal(t, CategoryOther, records[1].Category)
}
