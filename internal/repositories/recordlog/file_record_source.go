package recordlog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/mostactive/internal/core/ports"
)

/*
FileRecordSource provides access to an identifier log stored in a file.
It implements the ports.RecordSource interface; every Open re-opens the file
so repeated runs always start from the header line.
*/
type FileRecordSource struct {
	LogFile          string // Stores the absolute path
	sourceIdentifier string // Stores the user-friendly source identifier
}

// NewFileRecordSource creates a new FileRecordSource for path.
// The file is not opened until Open is called.
func NewFileRecordSource(path string) (ports.RecordSource, error) {
	if path == "" {
		return nil, fmt.Errorf("record log path cannot be empty")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving record log path %s: %w", path, err)
	}

	return &FileRecordSource{
		LogFile:          absPath,
		sourceIdentifier: fmt.Sprintf("File: %s", toUserFriendlyPath(absPath)),
	}, nil
}

// Open implements the ports.RecordSource interface.
func (s *FileRecordSource) Open() (io.ReadCloser, error) {
	info, err := os.Stat(s.LogFile)
	if err != nil {
		return nil, fmt.Errorf("record log not accessible: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("record log %s is a directory", toUserFriendlyPath(s.LogFile))
	}

	f, err := os.Open(s.LogFile)
	if err != nil {
		return nil, fmt.Errorf("opening record log %s: %w", toUserFriendlyPath(s.LogFile), err)
	}
	return f, nil
}

func (s *FileRecordSource) GetSourceIdentifier() string {
	if s.sourceIdentifier != "" {
		return s.sourceIdentifier
	}
	return fmt.Sprintf("File: %s", s.LogFile)
}
