// Package caller reads caller records for a dispatch run.
//
// A record source is plain text made of whitespace separated triples:
//
//	name category duration
//
// where category is usually "waiting" or "missed" and duration is an
// integer service time.
package caller

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"deedles.dev/calldispatch"
)

// Parse reads records from r until the input ends or a record is
// malformed. A duration that is not an integer, or a trailing record
// with fewer than three fields, stops parsing with an error, but the
// records read before it are still returned and usable.
func Parse(r io.Reader) ([]calldispatch.Record, error) {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)

	var records []calldispatch.Record
	var fields [3]string
	var n int
	for s.Scan() {
		fields[n] = s.Text()
		n++
		if n < len(fields) {
			continue
		}
		n = 0

		d, err := strconv.Atoi(fields[2])
		if err != nil {
			return records, fmt.Errorf("record %v (%v): invalid duration %q: %w", len(records), fields[0], fields[2], err)
		}
		records = append(records, calldispatch.Record{
			Name:     fields[0],
			Category: calldispatch.ParseCategory(fields[1]),
			Duration: d,
		})
	}
	if err := s.Err(); err != nil {
		return records, fmt.Errorf("read records: %w", err)
	}
	if n != 0 {
		return records, fmt.Errorf("record %v: expected 3 fields but got %v", len(records), n)
	}

	return records, nil
}
