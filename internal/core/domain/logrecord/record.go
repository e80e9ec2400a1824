/*
Package logrecord defines the core domain entities read from an identifier log:
a single record, the calendar date it falls on and the errors raised while parsing it.
*/
package logrecord

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// FieldSeparator separates the identifier from the timestamp on a record line.
const FieldSeparator = ","

// DateLayout is the layout of a calendar date (YYYY-MM-DD).
const DateLayout = time.DateOnly

/*
Accepted ISO-8601 timestamp layouts, extended and basic, with a "T" or a space
between date and time. Seconds may be omitted or carry a fraction. Every layout
requires an explicit UTC offset ("Z", "+hh:mm" or "+hhmm").
The first entry is the canonical form and is the one reported on failure.
*/
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"20060102T150405Z07:00",
	"20060102T150405Z0700",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05Z0700",
	"2006-01-02 15:04Z07:00",
	"2006-01-02 15:04Z0700",
	"20060102 150405Z07:00",
	"20060102 150405Z0700",
}

var (
	// ErrMalformedRecord indicates a line that does not split into exactly two fields.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrInvalidTimestamp indicates a timestamp that is not an instant with an explicit offset.
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	// ErrInvalidDate indicates a target date that is not a YYYY-MM-DD calendar date.
	ErrInvalidDate = errors.New("invalid date")
)

/*
Record is one (identifier, timestamp) pair read from a log line.
The identifier is an opaque, case-sensitive token.
*/
type Record struct {
	Identifier string
	Timestamp  time.Time
}

// ParseError reports a log line that could not be turned into a Record.
type ParseError struct {
	Line    int    // 1-based line number in the source, header included
	Content string // the offending line, trimmed
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d (%q): %v", e.Line, e.Content, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseLine splits a raw log line into a Record.
// The line must hold exactly two comma-separated fields; no quoting is supported.
func ParseLine(line string, lineNumber int) (Record, error) {
	trimmed := strings.TrimSpace(line)
	fields := strings.Split(trimmed, FieldSeparator)
	if len(fields) != 2 {
		return Record{}, &ParseError{
			Line:    lineNumber,
			Content: trimmed,
			Err:     fmt.Errorf("%w: expected 2 fields, got %d", ErrMalformedRecord, len(fields)),
		}
	}

	ts, err := ParseTimestamp(fields[1])
	if err != nil {
		return Record{}, &ParseError{Line: lineNumber, Content: trimmed, Err: err}
	}
	return Record{Identifier: fields[0], Timestamp: ts}, nil
}

// ParseTimestamp parses an ISO-8601 instant carrying its own UTC offset.
// Timestamps without an offset are rejected.
func ParseTimestamp(raw string) (time.Time, error) {
	ts, canonicalErr := time.Parse(timestampLayouts[0], raw)
	if canonicalErr == nil {
		return ts, nil
	}
	for _, layout := range timestampLayouts[1:] {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w %q: %v", ErrInvalidTimestamp, raw, canonicalErr)
}
