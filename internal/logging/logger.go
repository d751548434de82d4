package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls how the global zerolog logger is configured.
type Options struct {
	Level       string
	Development bool
	// File, when set, receives a copy of every log line with size based rotation.
	File string
}

// Setup configures the global logger and returns a closer for the log file
// (a no-op when no file is configured).
func Setup(opts Options) func() error {
	zerolog.TimeFieldFormat = time.RFC3339

	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil || opts.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var console io.Writer = os.Stderr
	if opts.Development {
		console = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	}

	closer := func() error { return nil }
	writer := console
	if opts.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    100, // megabytes
			MaxBackups: 7,
			MaxAge:     14, // days
			Compress:   true,
		}
		writer = zerolog.MultiLevelWriter(console, rotator)
		closer = rotator.Close
	}

	log.Logger = zerolog.New(writer).With().Timestamp().Logger()
	return closer
}
