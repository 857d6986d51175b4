// Command bookmark_gen writes a synthetic bookmark CSV for manual testing
// of the analyze pipeline.
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

var sampleTexts = []string{
	"Pythonでデータ分析を始める話 https://example.com/post/1",
	"今日の天気は最高でした",
	"機械学習とクラウドの勉強メモ",
	"RT おすすめのラーメン屋さん",
	"Dockerコンテナのデバッグ手順をまとめた",
	"週末の旅行の写真です ♪",
	"セキュリティ対策の基本について書いた",
	"新しいエディタの設定を晒す",
}

func setupLogger() {
	writer := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		if !isatty.IsTerminal(os.Stdout.Fd()) {
			w.NoColor = true
		}
	})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = zerolog.New(writer)
}

func generate(path string, count, days int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write([]string{"tweeted_at", "screen_name", "full_text"}); err != nil {
		return err
	}
	start := time.Now().AddDate(0, 0, -days)
	for i := 0; i < count; i++ {
		ts := start.Add(time.Duration(i) * time.Duration(days) * 24 * time.Hour / time.Duration(count))
		row := []string{
			ts.Format(time.RFC3339),
			fmt.Sprintf("user_%02d", i%7),
			sampleTexts[i%len(sampleTexts)],
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func main() {
	setupLogger()
	var outputPath string
	var count, days int

	app := cli.NewApp()
	app.Usage = "generate a synthetic bookmark csv fixture"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Usage:       "output csv path",
			Value:       "bookmarks.csv",
			Destination: &outputPath,
		},
		&cli.IntFlag{
			Name:        "count",
			Usage:       "number of records",
			Value:       200,
			Destination: &count,
		},
		&cli.IntFlag{
			Name:        "days",
			Usage:       "number of days to spread records over",
			Value:       30,
			Destination: &days,
		},
	}
	app.Action = func(c *cli.Context) error {
		if err := generate(outputPath, count, days); err != nil {
			return err
		}
		log.Info().Str("path", outputPath).Int("records", count).Msg("fixture written")
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("error while generating fixture")
	}
}
