// Package logging provides subsystem-tagged logging for the launcher.
//
// Two modes are supported. CLI mode writes slog text records to a caller
// supplied writer. TUI mode routes entries through a buffered channel so the
// dashboard can render them in its activity log instead of corrupting the
// terminal alternate screen.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// LogLevel defines the severity of a log entry.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String makes LogLevel satisfy fmt.Stringer.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// SlogLevel maps a LogLevel onto the corresponding slog.Level.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogEntry is the structured record delivered to the TUI activity log.
type LogEntry struct {
	Timestamp time.Time
	Level     LogLevel
	Subsystem string
	Message   string
	Err       error
}

const tuiChannelBufferSize = 2048

var (
	defaultLogger *slog.Logger
	filterLevel   LogLevel
	tuiChannel    chan LogEntry
	tuiMode       bool
)

// InitForCLI initializes logging for plain console output. Entries below
// level are dropped by the slog handler.
func InitForCLI(level LogLevel, output io.Writer) {
	tuiMode = false
	filterLevel = level
	defaultLogger = slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{
		Level: level.SlogLevel(),
	}))
	slog.SetDefault(defaultLogger)
}

// InitForTUI switches logging to channel delivery and returns the channel the
// dashboard reads from. Entries below level are filtered before they reach
// the channel. Call CloseTUIChannel on shutdown.
func InitForTUI(level LogLevel) <-chan LogEntry {
	tuiMode = true
	filterLevel = level
	tuiChannel = make(chan LogEntry, tuiChannelBufferSize)
	// Keep a stderr handler around so records emitted before the dashboard
	// starts reading are not lost entirely.
	defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level.SlogLevel(),
	}))
	return tuiChannel
}

// CloseTUIChannel closes the TUI log channel. Call once on shutdown, after
// the dashboard has stopped reading.
func CloseTUIChannel() {
	if tuiChannel != nil {
		close(tuiChannel)
		tuiChannel = nil
	}
}

func emit(level LogLevel, subsystem string, err error, format string, args ...interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	if tuiMode {
		if level < filterLevel {
			return
		}
		if tuiChannel == nil {
			// TUI mode without a channel means init order went wrong.
			fmt.Fprintf(os.Stderr, "%s [%s] %s: %s\n", time.Now().Format(time.RFC3339), level, subsystem, msg)
			return
		}
		// Buffered send keeps ordering. The dashboard drains continuously, so
		// this only blocks when the buffer is full.
		tuiChannel <- LogEntry{
			Timestamp: time.Now(),
			Level:     level,
			Subsystem: subsystem,
			Message:   msg,
			Err:       err,
		}
		return
	}

	if defaultLogger == nil {
		fmt.Fprintf(os.Stderr, "%s [%s] %s: %s\n", time.Now().Format(time.RFC3339), level, subsystem, msg)
		return
	}

	attrs := []slog.Attr{slog.String("subsystem", subsystem)}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	defaultLogger.LogAttrs(context.Background(), level.SlogLevel(), msg, attrs...)
}

// Debug logs a debug message for the given subsystem.
func Debug(subsystem string, format string, args ...interface{}) {
	emit(LevelDebug, subsystem, nil, format, args...)
}

// Info logs an informational message for the given subsystem.
func Info(subsystem string, format string, args ...interface{}) {
	emit(LevelInfo, subsystem, nil, format, args...)
}

// Warn logs a warning for the given subsystem.
func Warn(subsystem string, format string, args ...interface{}) {
	emit(LevelWarn, subsystem, nil, format, args...)
}

// Error logs an error with its cause for the given subsystem.
func Error(subsystem string, err error, format string, args ...interface{}) {
	emit(LevelError, subsystem, err, format, args...)
}
