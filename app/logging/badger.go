package logging

import (
	"strings"

	"github.com/rs/zerolog"
)

// BadgerLogger forwards badger's log lines to zerolog.
type BadgerLogger struct {
	logger zerolog.Logger
}

// NewBadgerLogger tags every line with component=store.
func NewBadgerLogger(logger zerolog.Logger) *BadgerLogger {
	return &BadgerLogger{logger: logger.With().Str("component", "store").Logger()}
}

func (l *BadgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error().Msgf(trim(format), args...)
}

func (l *BadgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn().Msgf(trim(format), args...)
}

func (l *BadgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info().Msgf(trim(format), args...)
}

func (l *BadgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug().Msgf(trim(format), args...)
}

// badger terminates most formats with a newline
func trim(format string) string {
	return strings.TrimRight(format, "\n")
}
