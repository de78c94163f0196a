// Package logging sets up the structured logger. The terminal belongs to the
// game while it runs, so logs only ever go to a file.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation settings for the log file
const (
	MaxSizeMB  = 10
	MaxBackups = 3
	MaxAgeDays = 28
)

type Options struct {
	File  string // empty disables logging
	Level logrus.Level
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup returns a logger and the closer for its output.
func Setup(opts Options) (*logrus.Logger, io.Closer) {
	log := logrus.New()
	log.SetLevel(opts.Level)

	if opts.File == "" {
		log.SetOutput(io.Discard)
		return log, nopCloser{}
	}

	out := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    MaxSizeMB,
		MaxBackups: MaxBackups,
		MaxAge:     MaxAgeDays,
	}
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(out)

	return log, out
}
