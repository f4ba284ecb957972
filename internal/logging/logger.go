// Package logging builds the logrus logger shared by the game packages.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options selects where and how log entries are written.
type Options struct {
	// File is the log destination. The terminal belongs to the renderer, so an
	// empty path discards output.
	File string
	// Level is a logrus level name ("debug", "info", ...). Defaults to "info".
	Level string
	// Format is "json" or "text". Defaults to "text".
	Format string
}

// OptionsFromEnv reads LOG_FILE, LOG_LEVEL and LOG_FORMAT.
func OptionsFromEnv() Options {
	return Options{
		File:   os.Getenv("LOG_FILE"),
		Level:  os.Getenv("LOG_LEVEL"),
		Format: os.Getenv("LOG_FORMAT"),
	}
}

// New creates a logger. The returned close function releases the log file.
func New(opts Options) (*logrus.Logger, func() error, error) {
	log := logrus.New()

	levelName := opts.Level
	if levelName == "" {
		levelName = "info"
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}
	log.SetLevel(level)

	if strings.ToLower(opts.Format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}

	closeFn := func() error { return nil }
	if opts.File == "" {
		log.SetOutput(io.Discard)
		return log, closeFn, nil
	}

	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", opts.File, err)
	}
	log.SetOutput(f)
	return log, f.Close, nil
}

// Discard returns a logger that drops everything. Used as the default when a
// component is constructed without a logger.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
