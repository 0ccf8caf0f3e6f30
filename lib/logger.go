package lib

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

var (
	Logger zerolog.Logger
)

// default configured logger for the application
//
// logger, err := InitLogger() or lib.InitLogger()
//
// Diagnostics never go to stdout; stdout is the JSON contract.
func InitLogger() (zerolog.Logger, error) {
	var output io.Writer
	var err error

	logLocation := GlobalConfig.LogLocation
	if logLocation == "" {
		logLocation = "stderr"
	}

	switch logLocation {
	case "stderr":
		output = os.Stderr
		if isatty.IsTerminal(os.Stderr.Fd()) {
			output = zerolog.ConsoleWriter{Out: os.Stderr}
		}
	default:
		output, err = os.OpenFile(logLocation, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return zerolog.Logger{}, fmt.Errorf("failed to open log file: %w", err)
		}
	}

	level, err := zerolog.ParseLevel(GlobalConfig.LogLevel)
	if err != nil || GlobalConfig.LogLevel == "" {
		level = zerolog.InfoLevel
	}

	Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
	return Logger, nil
}
