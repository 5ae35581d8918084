// Package gorm routes gorm's SQL logging through the global zerolog logger.
package gorm

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	gormlogger "gorm.io/gorm/logger"
)

// Logger implements gorm's logger.Interface on top of zerolog.
type Logger struct {
	// SlowThreshold marks queries slower than this as warnings. Zero disables it.
	SlowThreshold time.Duration
	// Debug logs every statement at debug level.
	Debug bool

	level gormlogger.LogLevel
}

// New creates a gorm logger. Record-not-found errors are never logged.
func New(debug bool, slowThreshold time.Duration) *Logger {
	return &Logger{
		SlowThreshold: slowThreshold,
		Debug:         debug,
		level:         gormlogger.Warn,
	}
}

// LogMode implements gormlogger.Interface.
func (l *Logger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	nl := *l
	nl.level = level

	return &nl
}

// Info implements gormlogger.Interface.
func (l *Logger) Info(_ context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Info {
		log.Info().Str("component", "gorm").Msgf(msg, args...)
	}
}

// Warn implements gormlogger.Interface.
func (l *Logger) Warn(_ context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Warn {
		log.Warn().Str("component", "gorm").Msgf(msg, args...)
	}
}

// Error implements gormlogger.Interface.
func (l *Logger) Error(_ context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Error {
		log.Error().Str("component", "gorm").Msgf(msg, args...)
	}
}

// Trace implements gormlogger.Interface.
func (l *Logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)

	var event *zerolog.Event

	switch {
	case err != nil && !errors.Is(err, gormlogger.ErrRecordNotFound) && l.level >= gormlogger.Error:
		event = log.Error().Err(err)
	case l.SlowThreshold > 0 && elapsed > l.SlowThreshold && l.level >= gormlogger.Warn:
		event = log.Warn().Dur("threshold", l.SlowThreshold)
	case l.Debug:
		event = log.Debug()
	default:
		return
	}

	sql, rows := fc()
	event.Str("component", "gorm").
		Dur("elapsed", elapsed).
		Int64("rows", rows).
		Str("sql", sql).
		Msg("query")
}
