package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"time"
)

// EventType discriminates log entries.
type EventType string

const (
	// EventRunCommand records an external program launch.
	EventRunCommand EventType = "run_command"
	// EventUnknownCommand records a launch that failed because the
	// program couldn't be found or started.
	EventUnknownCommand EventType = "unknown_command"
	// EventBuiltin records a builtin invocation.
	EventBuiltin EventType = "builtin"
	// EventInvalidInvocation records bad arguments to a builtin.
	EventInvalidInvocation EventType = "invalid_invocation"
	// EventHistoryError records a failed write to the history sink.
	EventHistoryError EventType = "history_error"
)

// LogEntry is a single event in the newline delimited JSON log.
type LogEntry struct {
	TimestampMicros int64     `json:"timestamp_micros"`
	SessionID       string    `json:"session_id,omitempty"`
	Event           EventType `json:"event"`
	Command         []string  `json:"command,omitempty"`
	Error           string    `json:"error,omitempty"`
}

// Time converts the entry's timestamp back to wall-clock time.
func (le *LogEntry) Time() time.Time {
	return time.UnixMicro(le.TimestampMicros)
}

// LogRecorder is a callback that stores events in an external datastore.
type LogRecorder func(le *LogEntry) error

// Logger captures interpreter events to determine how it's being used.
type Logger struct {
	Record LogRecorder
}

// NewJSONLinesLogRecorder creates a Logger that exports logs in newline
// delimited JSON object format.
func NewJSONLinesLogRecorder(w io.Writer) *Logger {
	return &Logger{
		Record: func(le *LogEntry) error {
			entry, err := json.Marshal(le)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, string(entry))
			return err
		},
	}
}

// NewNopLogger creates a Logger that discards every event.
func NewNopLogger() *Logger {
	return &Logger{
		Record: func(le *LogEntry) error { return nil },
	}
}

func (l *Logger) record(sessionID string, event EventType, command []string, cause error) error {
	le := &LogEntry{
		TimestampMicros: time.Now().UnixNano() / int64(time.Microsecond/time.Nanosecond),
		SessionID:       sessionID,
		Event:           event,
		Command:         command,
	}
	if cause != nil {
		le.Error = cause.Error()
	}

	return l.Record(le)
}

// NewSession creates a logger with an attached session ID.
func (l *Logger) NewSession() *SessionLogger {
	return &SessionLogger{logger: l, sessionID: fmt.Sprintf("%d", rand.Uint64())}
}

// Sessionless creates a logger with no session ID.
func (l *Logger) Sessionless() *SessionLogger {
	return &SessionLogger{logger: l}
}

// SessionLogger logs events with a shared session ID.
type SessionLogger struct {
	logger    *Logger
	sessionID string
}

// Record stores one event.
func (l *SessionLogger) Record(event EventType, command []string, cause error) error {
	return l.logger.record(l.sessionID, event, command, cause)
}
