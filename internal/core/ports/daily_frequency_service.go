package ports

import "github.com/AntonioJCosta/mostactive/internal/core/domain/frequency"

// FrequencyResult holds the most frequent identifiers for one date and run statistics.
type FrequencyResult struct {
	Identifiers   []string // winners in first-seen order; empty if nothing matched
	Count         int      // occurrences of each winner on the target date
	Date          string   // target date, YYYY-MM-DD
	Timezone      string   // zone the timestamps were bucketed in
	Scanned       int      // records read, header excluded
	Matched       int      // records falling on the target date
	Distinct      int      // distinct identifiers on the target date
	SourceDetails string
}

// DailyFrequencyService defines the contract for finding the most frequent identifiers of a day.
type DailyFrequencyService interface {
	// Execute returns the identifiers with the highest count on targetDate (YYYY-MM-DD).
	// Each call re-reads the record source from the beginning.
	Execute(targetDate string) ([]string, error)

	// MostFrequent is Execute with the winning count and run statistics attached.
	MostFrequent(targetDate string) (FrequencyResult, error)

	// Tally returns every identifier seen on targetDate with its count, in first-seen order.
	Tally(targetDate string) ([]frequency.IdentifierCount, error)
}
