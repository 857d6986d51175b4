package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"bookmarkanalytics/internal/analytics"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "auto"
)

func envName(name string) string {
	return "BMA_" + name
}

func analyzeCmd() *cli.Command {
	config := analytics.DefaultConfig()
	var fromStr, toStr, format string
	cmd := cli.Command{
		Name:  "analyze",
		Usage: "analyze a bookmark csv and emit summary and chart data",
	}
	cmd.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "bookmark csv to analyze",
			EnvVars:     []string{envName("INPUT")},
			Destination: &config.InputPath,
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "keywords-file",
			Usage:       "yaml keyword/stop-word resource overriding the embedded one",
			EnvVars:     []string{envName("KEYWORDS_FILE")},
			Destination: &config.KeywordsPath,
		},
		&cli.StringFlag{
			Name:        "dictionary",
			Usage:       "segmenter dictionary file(s), comma separated, overriding the built-in one",
			EnvVars:     []string{envName("DICTIONARY")},
			Destination: &config.DictionaryPath,
		},
		&cli.IntFlag{
			Name:        "limit",
			Usage:       "maximum number of ranked words",
			Value:       analytics.DefaultTopWordsLimit,
			Destination: &config.TopWordsLimit,
		},
		&cli.BoolFlag{
			Name:        "tech-only",
			Usage:       "restrict the word ranking to the technology vocabulary",
			Destination: &config.TechOnly,
		},
		&cli.StringFlag{
			Name:        "from",
			Usage:       "only include records from this date (YYYY-MM-DD), inclusive",
			Destination: &fromStr,
		},
		&cli.StringFlag{
			Name:        "to",
			Usage:       "only include records up to this date (YYYY-MM-DD), inclusive",
			Destination: &toStr,
		},
		&cli.StringSliceFlag{
			Name:  "category",
			Usage: "only include records of this category (technology, other), repeatable",
		},
		&cli.StringFlag{
			Name:        "format",
			Usage:       "report format ([text, json])",
			Value:       "text",
			Destination: &format,
		},
	}
	cmd.Action = func(c *cli.Context) error {
		return runAnalyze(config, fromStr, toStr, c.StringSlice("category"), format)
	}
	return &cmd
}

func validateCmd() *cli.Command {
	var inputPath string
	cmd := cli.Command{
		Name:  "validate",
		Usage: "validate a bookmark csv without analyzing it",
	}
	cmd.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "bookmark csv to validate",
			EnvVars:     []string{envName("INPUT")},
			Destination: &inputPath,
			Required:    true,
		},
	}
	cmd.Action = func(c *cli.Context) error {
		records, err := analytics.Load(inputPath)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "ok: %d records\n", len(records))
		return nil
	}
	return &cmd
}

func main() {
	logLevel := defaultLogLevel
	logFormat := defaultLogFormat

	ctx, cancel := context.WithCancel(context.Background())
	app := cli.NewApp()
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Fprintf(c.App.Writer, "%v\n%s", c.App.Name, analytics.GetBuildInfo())
	}
	app.Usage = "bookmark-analytics"
	app.Version = analytics.GetVersion()

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level ([trace, debug, info, warn, error])",
			EnvVars:     []string{"LOG_LEVEL"},
			Value:       defaultLogLevel,
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format ([auto, human, json])",
			EnvVars:     []string{"LOG_FORMAT"},
			Value:       defaultLogFormat,
			Destination: &logFormat,
		},
	}

	app.Before = func(c *cli.Context) error {
		return analytics.SetUpLogger(logLevel, logFormat)
	}
	app.Commands = []*cli.Command{
		analyzeCmd(),
		validateCmd(),
	}
	app.HideVersion = false

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt)
		<-sigCh
		cancel()
	}()
	err := app.RunContext(ctx, os.Args)
	if err != nil && err != context.Canceled {
		log.Error().Stack().Err(err).Msg("error while running bookmark-analytics")
		os.Exit(1)
	}
	os.Exit(0)
}
