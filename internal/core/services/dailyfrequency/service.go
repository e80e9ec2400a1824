package dailyfrequency

import (
	"fmt"
	"time"

	"github.com/AntonioJCosta/mostactive/internal/core/domain/frequency"
	"github.com/AntonioJCosta/mostactive/internal/core/domain/logrecord"
	"github.com/AntonioJCosta/mostactive/internal/core/ports"
)

type service struct {
	recordSource ports.RecordSource
	location     *time.Location
}

// NewService creates a new daily frequency service.
// It panics if recordSource is nil. A nil location means UTC.
func NewService(rs ports.RecordSource, location *time.Location) ports.DailyFrequencyService {
	if rs == nil {
		panic("recordSource cannot be nil")
	}
	if location == nil {
		location = time.UTC
	}
	return &service{
		recordSource: rs,
		location:     location,
	}
}

// Execute returns the identifiers with the highest count on targetDate, in first-seen order.
// A malformed line aborts the run with a *logrecord.ParseError and no identifiers.
func (s *service) Execute(targetDate string) ([]string, error) {
	result, err := s.MostFrequent(targetDate)
	if err != nil {
		return nil, err
	}
	return result.Identifiers, nil
}

func (s *service) MostFrequent(targetDate string) (ports.FrequencyResult, error) {
	var result ports.FrequencyResult

	date, err := logrecord.ParseDate(targetDate)
	if err != nil {
		return result, err
	}

	tally, stats, err := s.countRecordsOnDate(date)
	if err != nil {
		return result, err
	}

	result.Identifiers, result.Count = tally.Modes()
	result.Date = date.String()
	result.Timezone = s.location.String()
	result.Scanned = stats.scanned
	result.Matched = stats.matched
	result.Distinct = tally.Len()
	result.SourceDetails = s.recordSource.GetSourceIdentifier()
	return result, nil
}

func (s *service) Tally(targetDate string) ([]frequency.IdentifierCount, error) {
	date, err := logrecord.ParseDate(targetDate)
	if err != nil {
		return nil, err
	}

	tally, _, err := s.countRecordsOnDate(date)
	if err != nil {
		return nil, fmt.Errorf("could not tally identifiers for %s: %w", date, err)
	}
	return tally.Entries(), nil
}
