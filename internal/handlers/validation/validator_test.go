package validation

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"
)

func assertValidationError(t *testing.T, err error, field, message string) {
	t.Helper()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error = %v (%T), want *ValidationError", err, err)
	}
	if ve.Field != field {
		t.Errorf("ValidationError.Field = %q, want %q", ve.Field, field)
	}
	if message != "" && ve.Error() != message {
		t.Errorf("ValidationError message = %q, want %q", ve.Error(), message)
	}
}

func TestValidateDate(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{name: "valid", date: "2018-12-09"},
		{name: "day-month-year", date: "12-09-2018", wantErr: true},
		{name: "impossible day", date: "2018-02-30", wantErr: true},
		{name: "empty", date: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDate(tt.date)
			if !tt.wantErr {
				if err != nil {
					t.Errorf("ValidateDate(%q) unexpected error: %v", tt.date, err)
				}
				return
			}
			assertValidationError(t, err, "date", "Invalid date format. Please use YYYY-MM-DD format.")
		})
	}
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "cookie_log.csv")
	if err := os.WriteFile(existing, []byte("cookie,timestamp\n"), 0600); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	t.Run("existing file", func(t *testing.T) {
		if err := ValidateFile(existing); err != nil {
			t.Errorf("ValidateFile() unexpected error: %v", err)
		}
	})
	t.Run("missing file", func(t *testing.T) {
		assertValidationError(t, ValidateFile(filepath.Join(dir, "invalid_file.csv")), "file", "File not found. Please provide a valid file path.")
	})
	t.Run("empty path", func(t *testing.T) {
		assertValidationError(t, ValidateFile(" "), "file", "File not found. Please provide a valid file path.")
	})
	t.Run("directory", func(t *testing.T) {
		assertValidationError(t, ValidateFile(dir), "file", "Path is a directory. Please provide a valid file path.")
	})
}

func TestValidateTimezone(t *testing.T) {
	tests := []struct {
		name     string
		zone     string
		wantName string
		wantErr  bool
	}{
		{name: "empty means UTC", zone: "", wantName: "UTC"},
		{name: "UTC", zone: "UTC", wantName: "UTC"},
		{name: "IANA zone", zone: "Australia/Sydney", wantName: "Australia/Sydney"},
		{name: "unknown zone", zone: "Mars/Olympus_Mons", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := ValidateTimezone(tt.zone)
			if tt.wantErr {
				assertValidationError(t, err, "timezone", "")
				return
			}
			if err != nil {
				t.Fatalf("ValidateTimezone(%q) unexpected error: %v", tt.zone, err)
			}
			if loc.String() != tt.wantName {
				t.Errorf("ValidateTimezone(%q) = %s, want %s", tt.zone, loc, tt.wantName)
			}
		})
	}

	// Sydney observes daylight saving in December: +11:00.
	loc, _ := ValidateTimezone("Australia/Sydney")
	if _, offset := time.Date(2018, 12, 9, 0, 0, 0, 0, loc).Zone(); offset != 11*60*60 {
		t.Errorf("Australia/Sydney offset in December = %d, want %d", offset, 11*60*60)
	}
}

func TestValidateOutput(t *testing.T) {
	if err := ValidateOutput("plain"); err != nil {
		t.Errorf("ValidateOutput(plain) unexpected error: %v", err)
	}
	if err := ValidateOutput("table"); err != nil {
		t.Errorf("ValidateOutput(table) unexpected error: %v", err)
	}
	assertValidationError(t, ValidateOutput("json"), "output", "")
}
