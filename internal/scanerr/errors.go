// Package scanerr defines the error taxonomy for a scan run.
//
// Per-file errors (access, read, unsupported format, integrity) are recorded
// and skipped; only configuration errors are fatal.
package scanerr

import (
	"fmt"
	"sync"
)

// AccessError reports a directory or file that could not be opened during
// the walk. The walk continues with siblings.
type AccessError struct {
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("access denied: %s: %v", e.Path, e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }

// ReadError reports a file that vanished or became unreadable between the
// walk and the fingerprint read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read failed: %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// UnsupportedFormatError reports a file the perceptual strategy cannot
// decode.
type UnsupportedFormatError struct {
	Path string
	Err  error
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format: %s: %v", e.Path, e.Err)
}

func (e *UnsupportedFormatError) Unwrap() error { return e.Err }

// IntegrityMismatch reports a file that changed between discovery and a
// destructive action. The action on that file is aborted.
type IntegrityMismatch struct {
	Path   string
	Reason string
}

func (e *IntegrityMismatch) Error() string {
	return fmt.Sprintf("integrity mismatch: %s: %s", e.Path, e.Reason)
}

// ConfigError reports an invalid flag combination. Fatal before any I/O,
// mapped to exit code 2.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return e.Msg }

// NewConfigError formats a fatal configuration error.
func NewConfigError(format string, args ...interface{}) *ConfigError {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// Stats counts files processed and skipped per error kind over one run.
// Safe for concurrent use by the extractor workers.
type Stats struct {
	mu sync.Mutex

	Scanned           int
	Fingerprints      int
	AccessErrors      int
	ReadErrors        int
	UnsupportedFiles  int
	IntegrityFailures int
}

// Record classifies err into the matching counter. Unknown error types are
// counted as read errors.
func (s *Stats) Record(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch err.(type) {
	case *AccessError:
		s.AccessErrors++
	case *UnsupportedFormatError:
		s.UnsupportedFiles++
	case *IntegrityMismatch:
		s.IntegrityFailures++
	default:
		s.ReadErrors++
	}
}

// AddScanned increments the walked-file counter.
func (s *Stats) AddScanned() {
	s.mu.Lock()
	s.Scanned++
	s.mu.Unlock()
}

// AddFingerprint increments the fingerprinted-file counter.
func (s *Stats) AddFingerprint() {
	s.mu.Lock()
	s.Fingerprints++
	s.mu.Unlock()
}

// Skipped returns the total number of files skipped for any reason.
func (s *Stats) Skipped() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.AccessErrors + s.ReadErrors + s.UnsupportedFiles
}

// HadErrors reports whether any per-file error occurred, which maps the
// process exit code to 1.
func (s *Stats) HadErrors() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.AccessErrors+s.ReadErrors+s.UnsupportedFiles+s.IntegrityFailures > 0
}
