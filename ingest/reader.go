// Package ingest reads twitterverse data files into a core.Database and
// query files into a query.Spec.
package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Sentinel errors for ingestion.
var (
	// ErrUnexpectedEOF is returned when input ends inside a record or query.
	ErrUnexpectedEOF = errors.New("ingest: unexpected end of input")

	// ErrSyntax is returned for a line that does not fit the format.
	ErrSyntax = errors.New("ingest: syntax error")
)

// Section markers.
const (
	markEndBio  = "ENDBIO"
	markEnd     = "END"
	markSearch  = "SEARCH"
	markFilter  = "FILTER"
	markPresent = "PRESENT"
)

// lineReader yields trimmed lines and tracks the current line number.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	return &lineReader{sc: sc}
}

// next returns the next trimmed line; ok is false at end of input.
func (lr *lineReader) next() (string, bool, error) {
	if !lr.sc.Scan() {
		return "", false, lr.sc.Err()
	}
	lr.line++

	return strings.TrimSpace(lr.sc.Text()), true, nil
}

// must returns the next line or ErrUnexpectedEOF, naming what was expected.
func (lr *lineReader) must(what string) (string, error) {
	s, ok, err := lr.next()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: expected %s after line %d", ErrUnexpectedEOF, what, lr.line)
	}

	return s, nil
}

// until collects lines up to (not including) the marker line.
func (lr *lineReader) until(marker, what string) ([]string, error) {
	var out []string
	for {
		s, err := lr.must(what + " or " + marker)
		if err != nil {
			return nil, err
		}
		if s == marker {
			return out, nil
		}
		out = append(out, s)
	}
}

// syntaxf builds an ErrSyntax error pinned to the current line.
func (lr *lineReader) syntaxf(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrSyntax, lr.line, fmt.Sprintf(format, args...))
}

// openFile opens path for one of the *File helpers.
func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}

	return f, nil
}
