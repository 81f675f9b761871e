package tui

import (
	"fmt"
	"time"

	"github.com/brebuilds/brebot/pkg/logging"
)

// The functions in this file give the update handlers a unified way to
// append lines to the activity log while enforcing length limits and a
// consistent format. Lines arriving over the logging channel and lines
// produced directly by key handlers end up in the same slice with the
// same shape, so the renderer can colour them uniformly.

// formatLogEntry renders a structured entry from the logging channel as a
// single activity log line.
func formatLogEntry(entry logging.LogEntry) string {
	line := fmt.Sprintf("%s [%s] [%s] %s",
		entry.Timestamp.Format("15:04:05"), entry.Level, entry.Subsystem, entry.Message)
	if entry.Err != nil {
		line += ": " + entry.Err.Error()
	}
	return line
}

// logInfo appends an informational message to the activity log.
func (m *model) logInfo(format string, a ...interface{}) {
	m.logLocal("INFO", format, a...)
}

// logWarn appends a warning message to the activity log.
func (m *model) logWarn(format string, a ...interface{}) {
	m.logLocal("WARN", format, a...)
}

// logError appends an error message to the activity log.
func (m *model) logError(format string, a ...interface{}) {
	m.logLocal("ERROR", format, a...)
}

func (m *model) logLocal(level, format string, a ...interface{}) {
	m.appendLogLine(fmt.Sprintf("%s [%s] [Dashboard] %s",
		time.Now().Format("15:04:05"), level, fmt.Sprintf(format, a...)))
}

// appendLogLine performs the actual slice append and enforces the
// maxLogLines invariant.
func (m *model) appendLogLine(line string) {
	m.logLines = append(m.logLines, line)
	if len(m.logLines) > maxLogLines {
		m.logLines = m.logLines[len(m.logLines)-maxLogLines:]
	}
}
