// Package batch decodes newline separated character codes from a stream.
//
// Each non-blank line is one character code. Lines starting with '#' are
// comments. Every line is decoded independently; a bad line does not stop
// the batch unless FailFast is set.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gachaplus/charcode/pkg/audit"
	"github.com/gachaplus/charcode/pkg/charcode"
)

// Default maximum line length (64KB). A full character code with maximal
// header fields is well under 8KB.
const defaultMaxLineBytes = 64 * 1024

// Result is the outcome of decoding one line.
type Result struct {
	Source string
	Line   int
	Raw    string
	Tokens int
	Record *charcode.Record // nil when Err is set
	Err    error
}

// Summary counts the results of one or more batches.
type Summary struct {
	Total    int
	Accepted int
	Rejected int
	ByReason map[string]int
}

func (s *Summary) record(r *Result) {
	s.Total++
	if r.Err == nil {
		s.Accepted++
		return
	}
	s.Rejected++
	if s.ByReason == nil {
		s.ByReason = make(map[string]int)
	}
	s.ByReason[audit.Reason(r.Err)]++
}

// Merge adds the counts of other to s.
func (s *Summary) Merge(other Summary) {
	s.Total += other.Total
	s.Accepted += other.Accepted
	s.Rejected += other.Rejected
	for k, v := range other.ByReason {
		if s.ByReason == nil {
			s.ByReason = make(map[string]int)
		}
		s.ByReason[k] += v
	}
}

// LineError wraps the decode error of a line when processing stops early.
type LineError struct {
	Source string
	Line   int
	Err    error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Source, e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// config holds processor configuration.
type config struct {
	maxLineBytes int
	failFast     bool
	logger       audit.Logger
}

// Option configures a Processor.
type Option func(*config)

// MaxLineBytes sets the longest accepted input line. Longer lines abort the
// batch with bufio.ErrTooLong.
//
// Default: 64KB
func MaxLineBytes(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxLineBytes = n
		}
	}
}

// FailFast stops processing at the first rejected line.
func FailFast(enabled bool) Option {
	return func(c *config) {
		c.failFast = enabled
	}
}

// WithAuditLogger records an audit event for every decoded line.
func WithAuditLogger(l audit.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// Processor decodes batches of character codes.
type Processor struct {
	maxLineBytes int
	failFast     bool
	logger       audit.Logger
}

// NewProcessor creates a Processor.
func NewProcessor(opts ...Option) *Processor {
	cfg := &config{
		maxLineBytes: defaultMaxLineBytes,
		logger:       audit.NoopLogger{},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Processor{
		maxLineBytes: cfg.maxLineBytes,
		failFast:     cfg.failFast,
		logger:       cfg.logger,
	}
}

// Process decodes every line of r and passes each Result to fn, in order.
//
// Processing stops when ctx is cancelled, when fn returns an error, when
// reading fails, or (with FailFast) at the first rejected line, which is
// reported as a *LineError. The summary covers every line handed to fn.
func (p *Processor) Process(ctx context.Context, source string, r io.Reader, fn func(*Result) error) (Summary, error) {
	var summary Summary

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(p.maxLineBytes, 4096)), p.maxLineBytes)

	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}

		res := &Result{
			Source: source,
			Line:   line,
			Raw:    raw,
			Tokens: charcode.CountTokens(raw),
		}
		res.Record, res.Err = charcode.Decode(raw)
		summary.record(res)

		if err := p.logger.LogDecode(ctx, audit.NewEvent(source, line, res.Tokens, res.Record, res.Err)); err != nil {
			return summary, fmt.Errorf("failed to record audit event: %w", err)
		}
		if err := fn(res); err != nil {
			return summary, err
		}
		if p.failFast && res.Err != nil {
			return summary, &LineError{Source: source, Line: line, Err: res.Err}
		}
	}
	if err := scanner.Err(); err != nil {
		return summary, fmt.Errorf("%s: line %d: %w", source, line+1, err)
	}
	return summary, nil
}
