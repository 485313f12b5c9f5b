// Package log holds the process-wide zerolog logger.
package log

import (
	"io"
	stdlog "log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	logger     = zerolog.New(os.Stderr).With().Timestamp().Logger()
	loggerLock sync.RWMutex
)

// Setup replaces the global logger. format "json" writes JSON lines, anything
// else writes human-readable console output.
func Setup(levelStr, format string) {
	var output io.Writer
	if strings.EqualFold(format, "json") {
		output = os.Stderr
	} else {
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
		}
	}
	SetOutput(output, levelStr)
}

// SetOutput points the logger at w. Tests use it to capture log lines.
func SetOutput(w io.Writer, levelStr string) {
	loggerLock.Lock()
	logger = zerolog.New(w).
		Level(parseLogLevel(levelStr)).
		With().
		Timestamp().
		Logger()
	loggerLock.Unlock()
}

func parseLogLevel(levelStr string) zerolog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func current() *zerolog.Logger {
	loggerLock.RLock()
	defer loggerLock.RUnlock()
	l := logger
	return &l
}

func Debug() *zerolog.Event {
	return current().Debug()
}

func Info() *zerolog.Event {
	return current().Info()
}

func Warn() *zerolog.Event {
	return current().Warn()
}

func Error() *zerolog.Event {
	return current().Error()
}

// Logger returns a copy of the underlying zerolog.Logger
func Logger() zerolog.Logger {
	return *current()
}

type zerologWriter struct {
	logger zerolog.Logger
}

func (w zerologWriter) Write(p []byte) (n int, err error) {
	msg := strings.TrimSuffix(string(p), "\n")
	w.logger.Warn().Msg(msg)
	return len(p), nil
}

// StdErrorLogger returns a standard library *log.Logger that writes to zerolog.
// Useful for passing to http.Server.ErrorLog.
func StdErrorLogger() *stdlog.Logger {
	return stdlog.New(zerologWriter{logger: Logger()}, "", 0)
}
