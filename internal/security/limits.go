// Package security guards shadefinder against oversized user-supplied files.
package security

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrSizeLimit is returned once a LimitedReader has handed out its budget.
var ErrSizeLimit = errors.New("size limit exceeded")

// Limits for user-supplied input files.
const (
	MaxPaletteFileSize = 4 << 20  // 4 MiB
	MaxImageFileSize   = 64 << 20 // 64 MiB
)

const maxConsecutiveEmptyReads = 100

// LimitedReader wraps an io.Reader and limits the total bytes that can be read.
// Unlike io.LimitedReader it fails instead of reporting EOF, so a truncated
// file is never mistaken for a complete one.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// Read implements io.Reader with size limits.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		return 0, l.probe()
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}

// probe reads one byte past the limit. Exactly at the limit is fine if the
// source is also exhausted. Empty reads are retried like bufio does.
func (l *LimitedReader) probe() error {
	var b [1]byte
	for range maxConsecutiveEmptyReads {
		n, err := l.R.Read(b[:])
		if n > 0 {
			return ErrSizeLimit
		}
		if err != nil {
			return err
		}
	}
	return io.ErrNoProgress
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}

// ReadFile reads path, failing with ErrSizeLimit when it is larger than maxBytes.
func ReadFile(path string, maxBytes int64) ([]byte, error) {
	f, err := os.Open(path) // #nosec G304 - User-specified input file, intended to be read
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(NewLimitedReader(f, maxBytes))
	if err != nil {
		if errors.Is(err, ErrSizeLimit) {
			return nil, fmt.Errorf("%s is larger than %d bytes: %w", path, maxBytes, err)
		}
		return nil, err
	}
	return data, nil
}
