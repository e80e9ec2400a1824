package testutil

import (
	"io"
	"strings"

	"github.com/AntonioJCosta/mostactive/internal/core/ports"
)

// MockRecordSource is a mock implementation of the ports.RecordSource interface.
type MockRecordSource struct {
	OpenFunc                func() (io.ReadCloser, error)
	GetSourceIdentifierFunc func() string
}

// Open mocks the Open method.
func (m *MockRecordSource) Open() (io.ReadCloser, error) {
	if m.OpenFunc != nil {
		return m.OpenFunc()
	}
	// Default behavior: an empty source.
	return io.NopCloser(strings.NewReader("")), nil
}

// GetSourceIdentifier mocks the GetSourceIdentifier method.
func (m *MockRecordSource) GetSourceIdentifier() string {
	if m.GetSourceIdentifierFunc != nil {
		return m.GetSourceIdentifierFunc()
	}
	return ""
}

var _ ports.RecordSource = (*MockRecordSource)(nil)

// TrackingReadCloser wraps a reader and records whether Close was called.
type TrackingReadCloser struct {
	io.Reader
	Closed   bool
	CloseErr error
}

// Close marks the reader as closed and returns CloseErr.
func (t *TrackingReadCloser) Close() error {
	t.Closed = true
	return t.CloseErr
}

// NewStringRecordSource returns a MockRecordSource that serves content afresh on every Open.
// Every reader handed out is appended to opened, if opened is non-nil.
func NewStringRecordSource(content string, opened *[]*TrackingReadCloser) *MockRecordSource {
	return &MockRecordSource{
		OpenFunc: func() (io.ReadCloser, error) {
			rc := &TrackingReadCloser{Reader: strings.NewReader(content)}
			if opened != nil {
				*opened = append(*opened, rc)
			}
			return rc, nil
		},
		GetSourceIdentifierFunc: func() string { return "String: test log" },
	}
}
