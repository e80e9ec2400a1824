/*
Package validation checks user input before it reaches the core services.
*/
package validation

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/AntonioJCosta/mostactive/internal/core/domain/logrecord"
	"github.com/AntonioJCosta/mostactive/internal/core/domain/settings"
)

// ValidationError reports invalid user input. It is mapped to a non-zero exit status by the CLI.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateDate checks that date is a calendar date in YYYY-MM-DD form.
func ValidateDate(date string) error {
	if _, err := logrecord.ParseDate(date); err != nil {
		return &ValidationError{Field: "date", Value: date, Message: "Invalid date format. Please use YYYY-MM-DD format."}
	}
	return nil
}

// ValidateFile checks that path names a regular file that can be opened for reading.
func ValidateFile(path string) error {
	notFound := &ValidationError{Field: "file", Value: path, Message: "File not found. Please provide a valid file path."}
	if strings.TrimSpace(path) == "" {
		return notFound
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return notFound
		}
		return &ValidationError{Field: "file", Value: path, Message: fmt.Sprintf("File cannot be accessed: %v", err)}
	}
	if info.IsDir() {
		return &ValidationError{Field: "file", Value: path, Message: "Path is a directory. Please provide a valid file path."}
	}

	f, err := os.Open(path)
	if err != nil {
		return &ValidationError{Field: "file", Value: path, Message: fmt.Sprintf("File cannot be read: %v", err)}
	}
	return f.Close()
}

// ValidateTimezone resolves an IANA zone name. An empty name means UTC.
func ValidateTimezone(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, &ValidationError{
			Field:   "timezone",
			Value:   name,
			Message: fmt.Sprintf("Unknown timezone %q. Please use an IANA zone name such as UTC or Europe/Berlin.", name),
		}
	}
	return loc, nil
}

// ValidateOutput checks that format is a supported output format.
func ValidateOutput(format string) error {
	if !settings.IsValidOutput(format) {
		return &ValidationError{
			Field:   "output",
			Value:   format,
			Message: fmt.Sprintf("Unknown output format %q. Please use %q or %q.", format, settings.OutputPlain, settings.OutputTable),
		}
	}
	return nil
}
