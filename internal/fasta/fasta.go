// Package fasta contains minimal helpers to split FASTA formatted data into
// records and run a header parser over every record. It intentionally keeps
// the splitting simple and conservative; all interpretation of header
// contents happens in the uniprot package.
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Record is a single raw FASTA record. Header holds the full description
// line including the leading '>', Sequence the concatenated sequence lines,
// which are carried through untouched.
type Record struct {
	Header   string
	Sequence string
	Line     int
}

// Parse reads FASTA records from r. Lines beginning with '>' start a new
// record; all other lines are concatenated into the current sequence.
func Parse(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var records []Record
	var current Record
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.HasPrefix(text, ">") {
			if current.Header != "" {
				records = append(records, current)
			}
			current = Record{Header: text, Line: line}
		} else if current.Header != "" {
			current.Sequence += text
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if current.Header != "" {
		records = append(records, current)
	}
	return records, nil
}

// Parsed pairs one successfully parsed header with the sequence it
// introduced.
type Parsed[R any] struct {
	Record   R
	Sequence string
	Line     int
}

// HeaderError reports a single header the parser rejected. Failures never
// abort the iteration; the caller decides whether to skip, log, or bail.
type HeaderError struct {
	Line   int
	Header string
	Err    error
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *HeaderError) Unwrap() error {
	return e.Err
}

// ParseHeaders reads FASTA records from r and runs parse over every header
// line, aggregating the successes and the per-record failures separately.
func ParseHeaders[R any](r io.Reader, parse func(header string) (R, string, error)) ([]Parsed[R], []HeaderError, error) {
	records, err := Parse(r)
	if err != nil {
		return nil, nil, err
	}

	var parsed []Parsed[R]
	var failed []HeaderError
	for _, record := range records {
		rec, _, err := parse(record.Header)
		if err != nil {
			failed = append(failed, HeaderError{Line: record.Line, Header: record.Header, Err: err})
			continue
		}
		parsed = append(parsed, Parsed[R]{Record: rec, Sequence: record.Sequence, Line: record.Line})
	}
	return parsed, failed, nil
}
