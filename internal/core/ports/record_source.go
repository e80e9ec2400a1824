package ports

import "io"

/*
RecordSource defines the contract for a re-openable source of log lines.
This is a driven port, typically implemented by a repository adapter.
*/
type RecordSource interface {
	/*
	   Open returns a fresh reader positioned at the first line (the header).
	   Every call must start from the beginning; the caller closes the reader.
	*/
	Open() (io.ReadCloser, error)

	// GetSourceIdentifier returns a user-friendly description of the source.
	GetSourceIdentifier() string
}
