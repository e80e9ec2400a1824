package logrecord

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Date
		wantErr bool
	}{
		{name: "valid", raw: "2018-12-09", want: Date{Year: 2018, Month: time.December, Day: 9}},
		{name: "leap day", raw: "2020-02-29", want: Date{Year: 2020, Month: time.February, Day: 29}},
		{name: "day first", raw: "12-09-2018", wantErr: true},
		{name: "month out of range", raw: "2018-13-01", wantErr: true},
		{name: "not a leap year", raw: "2019-02-29", wantErr: true},
		{name: "single digit day", raw: "2018-12-9", wantErr: true},
		{name: "with time", raw: "2018-12-09T00:00:00Z", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDate) {
					t.Errorf("ParseDate(%q) error = %v, want errors.Is ErrInvalidDate", tt.raw, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseDate(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDateOf(t *testing.T) {
	sydney := time.FixedZone("AEDT", 11*60*60)
	newYork := time.FixedZone("EST", -5*60*60)
	instant := time.Date(2018, 12, 9, 10, 13, 0, 0, sydney) // 2018-12-08T23:13Z

	tests := []struct {
		name string
		loc  *time.Location
		want string
	}{
		{name: "nil location means UTC", loc: nil, want: "2018-12-08"},
		{name: "UTC", loc: time.UTC, want: "2018-12-08"},
		{name: "recorded zone", loc: sydney, want: "2018-12-09"},
		{name: "west of UTC", loc: newYork, want: "2018-12-08"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DateOf(instant, tt.loc).String(); got != tt.want {
				t.Errorf("DateOf() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDate_String(t *testing.T) {
	d := Date{Year: 987, Month: time.March, Day: 4}
	if got := d.String(); got != "0987-03-04" {
		t.Errorf("String() = %q, want %q", got, "0987-03-04")
	}
}
