/*
Package frequency defines the run-scoped occurrence count of identifiers
and the selection of the most frequent ones.
*/
package frequency

/*
IdentifierCount represents an identifier and the number of times it occurred.
This is a core domain entity.
*/
type IdentifierCount struct {
	Identifier string
	Count      int
}

/*
Tally counts identifiers while remembering the order in which each one was
first seen. Go maps do not preserve insertion order, so the order is kept
in a separate slice; it decides the order of tied winners.
*/
type Tally struct {
	counts map[string]int
	order  []string
}

// NewTally creates an empty Tally.
func NewTally() *Tally {
	return &Tally{counts: make(map[string]int)}
}

// Increment adds one occurrence of identifier.
func (t *Tally) Increment(identifier string) {
	if _, seen := t.counts[identifier]; !seen {
		t.order = append(t.order, identifier)
	}
	t.counts[identifier]++
}

// Count returns the occurrences of identifier, 0 if never seen.
func (t *Tally) Count(identifier string) int {
	return t.counts[identifier]
}

// Len returns the number of distinct identifiers.
func (t *Tally) Len() int {
	return len(t.order)
}

// Entries returns every identifier with its count in first-seen order.
func (t *Tally) Entries() []IdentifierCount {
	entries := make([]IdentifierCount, 0, len(t.order))
	for _, id := range t.order {
		entries = append(entries, IdentifierCount{Identifier: id, Count: t.Count(id)})
	}
	return entries
}

/*
Modes returns the identifiers sharing the highest count, in first-seen order,
together with that count. An empty tally yields an empty slice and 0.
*/
func (t *Tally) Modes() ([]string, int) {
	winners := []string{}
	maxCount := 0
	for _, id := range t.order {
		count := t.Count(id)
		switch {
		case count > maxCount:
			maxCount = count
			winners = []string{id}
		case count == maxCount:
			winners = append(winners, id)
		}
	}
	return winners, maxCount
}
