package dailyfrequency

import (
	"bufio"
	"fmt"
	"io"

	"github.com/AntonioJCosta/mostactive/internal/core/domain/frequency"
	"github.com/AntonioJCosta/mostactive/internal/core/domain/logrecord"
)

// maxLineSize bounds a single log line; bufio.Scanner defaults to 64KiB.
const maxLineSize = 1024 * 1024

type scanStats struct {
	scanned int
	matched int
}

// countRecordsOnDate opens the record source, skips the header and tallies every
// record whose timestamp falls on date in the service location.
// The reader is always closed before returning.
func (s *service) countRecordsOnDate(date logrecord.Date) (tally *frequency.Tally, stats scanStats, err error) {
	reader, err := s.recordSource.Open()
	if err != nil {
		return nil, stats, fmt.Errorf("opening record source: %w", err)
	}
	defer func() {
		if closeErr := reader.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing record source: %w", closeErr)
		}
	}()

	tally = frequency.NewTally()
	matched := 0
	stats, err = s.scanRecords(reader, func(rec logrecord.Record) {
		if logrecord.DateOf(rec.Timestamp, s.location) == date {
			tally.Increment(rec.Identifier)
			matched++
		}
	})
	stats.matched = matched
	if err != nil {
		return nil, stats, err
	}
	return tally, stats, nil
}

// scanRecords discards the first line and hands each parsed record to visit.
// It stops at the first line that fails to parse.
func (s *service) scanRecords(r io.Reader, visit func(logrecord.Record)) (scanStats, error) {
	var stats scanStats

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		if lineNumber == 1 {
			continue // header
		}
		rec, err := logrecord.ParseLine(scanner.Text(), lineNumber)
		if err != nil {
			return stats, err
		}
		stats.scanned++
		visit(rec)
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("reading record source: %w", err)
	}
	return stats, nil
}
