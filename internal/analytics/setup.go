package analytics

import (
	"fmt"
	"github.com/mattn/go-isatty"
	"github.com/morikuni/failure"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	LogFormatAuto  = "auto"
	LogFormatHuman = "human"
	LogFormatJSON  = "json"
)

func frameString(frame failure.Frame) string {
	return frame.Pkg() + "." + frame.Func() + ":" + strconv.Itoa(frame.Line())
}

func errorStackMarshaller(err error) interface{} {
	cs, ok := failure.CallStackOf(err)
	if !ok {
		return err
	}
	frames := cs.Frames()
	res := make([]string, 0, len(frames))
	for _, frame := range frames {
		res = append(res, frameString(frame))
	}
	return res
}

// SetUpLogger configures the global zerolog logger. Format "auto" picks
// human output in dev builds and JSON otherwise.
func SetUpLogger(logLevel string, logFormat string) error {
	var useConsoleWriter bool
	switch logFormat {
	case LogFormatAuto:
		useConsoleWriter = IsDev()
	case LogFormatHuman:
		useConsoleWriter = true
	case LogFormatJSON:
		useConsoleWriter = false
	default:
		return fmt.Errorf("invalid log format: %s, expected: [auto, json, human]", logFormat)
	}

	var writer io.Writer = os.Stdout
	if useConsoleWriter {
		writer = zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			if !isatty.IsTerminal(os.Stdout.Fd()) {
				w.NoColor = true
			}
		})
	}
	level, err := zerolog.ParseLevel(strings.ToLower(logLevel))
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(writer)
	zerolog.ErrorStackMarshaler = errorStackMarshaller
	return nil
}
