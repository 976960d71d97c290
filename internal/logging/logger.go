// Package logging attaches a zerolog logger to a context.
//
// Production logs go to a rotated file under the XDG state directory so the
// terminal output stays clean; --verbose mirrors them to stderr.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// AppName is the directory name used under the XDG state home
	AppName = "autocommit"
	// LogFilename is the name of the log file
	LogFilename = "autocommit.log"

	maxLogSizeMB  = 5
	maxLogBackups = 3
	maxLogAgeDays = 30
)

// Config defines how the logger is created
type Config struct {
	// Writer replaces the log file (typically for tests)
	Writer io.Writer
	// Console, if set, receives a human readable copy of every entry
	Console io.Writer
	Level   zerolog.Level
	// RepoPath is attached to every entry
	RepoPath string
}

// LogPath returns the log file location, creating its directory if needed
func LogPath() (string, error) {
	path, err := xdg.StateFile(AppName + "/" + LogFilename)
	if err != nil {
		return "", fmt.Errorf("failed to resolve log path: %w", err)
	}
	return path, nil
}

// New returns ctx with a configured logger attached
func New(ctx context.Context, config Config) (context.Context, error) {
	writer := config.Writer
	if writer == nil {
		logFile, err := LogPath()
		if err != nil {
			return nil, err
		}
		writer = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    maxLogSizeMB,
			MaxBackups: maxLogBackups,
			MaxAge:     maxLogAgeDays,
		}
	}

	if config.Console != nil {
		console := zerolog.ConsoleWriter{Out: config.Console, TimeFormat: time.Kitchen}
		writer = zerolog.MultiLevelWriter(writer, console)
	}

	logCtx := zerolog.New(writer).With().Timestamp()
	if config.RepoPath != "" {
		logCtx = logCtx.Str("repo", config.RepoPath)
	}
	logger := logCtx.Logger().Level(config.Level)

	return logger.WithContext(ctx), nil
}

// Get retrieves the logger from ctx, or a disabled logger if none is attached
func Get(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// ParseLevel converts a config string like "debug" into a level
func ParseLevel(s string) (zerolog.Level, error) {
	// zerolog maps "" to NoLevel, which silences the file log
	if s == "" {
		return zerolog.InfoLevel, errors.New("log level must not be empty")
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
