// Package audit records the outcome of every character code decode.
package audit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/gachaplus/charcode/pkg/charcode"
)

// Logger records decode events for diagnostics and reporting.
type Logger interface {
	LogDecode(ctx context.Context, event *Event) error
}

// Outcome of a decode.
type Outcome string

const (
	Accepted Outcome = "accepted"
	Rejected Outcome = "rejected"
)

// Event describes one decode attempt.
type Event struct {
	Timestamp time.Time
	Source    string // File name, or "-" for stdin
	Line      int
	Outcome   Outcome
	Schema    string // Set when accepted
	Tokens    int    // Token count of the raw input
	Reason    string // Error class when rejected
	Err       error
}

// NewEvent builds an Event from the result of charcode.Decode.
func NewEvent(source string, line, tokens int, rec *charcode.Record, err error) *Event {
	e := &Event{
		Timestamp: time.Now(),
		Source:    source,
		Line:      line,
		Tokens:    tokens,
	}
	if err != nil {
		e.Outcome = Rejected
		e.Reason = Reason(err)
		e.Err = err
		return e
	}
	e.Outcome = Accepted
	if rec != nil {
		e.Schema = rec.Schema().String()
	}
	return e
}

// Reason classifies a decode error.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, charcode.ErrWrongSize):
		return "wrong_size"
	case errors.Is(err, charcode.ErrFieldParse):
		return "field_parse"
	case errors.Is(err, charcode.ErrLengthViolation):
		return "length_violation"
	default:
		return "other"
	}
}

// SlogLogger logs events using structured logging. Accepted codes are
// logged at debug level, rejected ones at warn.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger creates a logger that emits slog records.
func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	return &SlogLogger{logger: logger}
}

// LogDecode emits a structured log record for the event.
func (l *SlogLogger) LogDecode(ctx context.Context, event *Event) error {
	attrs := []slog.Attr{
		slog.String("source", event.Source),
		slog.Int("line", event.Line),
		slog.Int("tokens", event.Tokens),
	}
	if event.Outcome == Rejected {
		attrs = append(attrs,
			slog.String("reason", event.Reason),
			slog.String("error", errString(event.Err)),
		)
		l.logger.LogAttrs(ctx, slog.LevelWarn, "character code rejected", attrs...)
		return nil
	}
	attrs = append(attrs, slog.String("schema", event.Schema))
	l.logger.LogAttrs(ctx, slog.LevelDebug, "character code accepted", attrs...)
	return nil
}

// JSONLogger writes one JSON object per event, for machine-readable reports.
type JSONLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewJSONLogger creates a logger that writes JSON lines to w.
func NewJSONLogger(w io.Writer) *JSONLogger {
	return &JSONLogger{w: w}
}

// LogDecode writes the event as a single JSON line.
func (l *JSONLogger) LogDecode(ctx context.Context, event *Event) error {
	data, err := event.toJSON()
	if err != nil {
		return fmt.Errorf("failed to encode audit event: %w", err)
	}
	data = append(data, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	_, err = l.w.Write(data)
	return err
}

// MultiLogger calls several Loggers in sequence.
// Best-effort: every logger is called, errors are joined.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger creates a logger that fans out to loggers.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	return &MultiLogger{loggers: loggers}
}

// LogDecode calls all loggers and returns their combined error.
func (m *MultiLogger) LogDecode(ctx context.Context, event *Event) error {
	var errs []error
	for _, logger := range m.loggers {
		if err := logger.LogDecode(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NoopLogger discards events.
type NoopLogger struct{}

func (NoopLogger) LogDecode(ctx context.Context, event *Event) error {
	return nil
}

type eventForJSON struct {
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Line      int       `json:"line"`
	Outcome   Outcome   `json:"outcome"`
	Schema    string    `json:"schema,omitempty"`
	Tokens    int       `json:"tokens"`
	Reason    string    `json:"reason,omitempty"`
	Error     string    `json:"error,omitempty"`
}

func (e *Event) toJSON() ([]byte, error) {
	return json.Marshal(eventForJSON{
		Timestamp: e.Timestamp,
		Source:    e.Source,
		Line:      e.Line,
		Outcome:   e.Outcome,
		Schema:    e.Schema,
		Tokens:    e.Tokens,
		Reason:    e.Reason,
		Error:     errString(e.Err),
	})
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
