package caller

import (
	"bytes"
	"context"
	"fmt"

	"deedles.dev/calldispatch"
	"github.com/viant/afs"
)

// Source loads caller records from any location afs can read, such as
// a local path, a file:// URL or a mem:// URL.
type Source struct {
	fs afs.Service
}

// NewSource returns a Source reading through fs. A nil fs uses
// afs.New().
func NewSource(fs afs.Service) *Source {
	if fs == nil {
		fs = afs.New()
	}
	return &Source{fs: fs}
}

// Load reads and parses the records at URL. If URL cannot be read, the
// returned error wraps [calldispatch.ErrInputUnavailable]. A malformed
// record ends parsing; the records before it are returned along with
// the parse error.
func (s *Source) Load(ctx context.Context, URL string) ([]calldispatch.Record, error) {
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v: %w", calldispatch.ErrInputUnavailable, URL, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %v not found", calldispatch.ErrInputUnavailable, URL)
	}

	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v: %w", calldispatch.ErrInputUnavailable, URL, err)
	}

	records, err := Parse(bytes.NewReader(data))
	if err != nil {
		return records, fmt.Errorf("parse %v: %w", URL, err)
	}
	return records, nil
}
