// Package filter implements the streaming line filter: scan lines from an
// input, test each against a matcher, and emit the ones that match.
package filter

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/Veraticus/minigrep/pkg/matcher"
)

// Filter streams lines from a reader and writes matching lines to a writer.
type Filter struct {
	matcher      matcher.Matcher
	maxLineBytes int

	linesScanned int
	linesMatched int
}

// New creates a filter using the given matcher. maxLineBytes caps the length
// of a single input line; a longer line is reported as a read error.
func New(m matcher.Matcher, maxLineBytes int) *Filter {
	return &Filter{
		matcher:      m,
		maxLineBytes: maxLineBytes,
	}
}

// Run reads r line by line until end of input, writing each matching line to
// w followed by a newline. Matched lines are written as they are found, in
// input order. A closed-pipe write error means the consumer went away and is
// treated as a normal end of the run; any other error is terminal.
func (f *Filter) Run(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Split(scanLines)

	initial := 64 * 1024
	if initial > f.maxLineBytes {
		initial = f.maxLineBytes
	}
	scanner.Buffer(make([]byte, 0, initial), f.maxLineBytes)

	for scanner.Scan() {
		line := scanner.Text()
		f.linesScanned++

		matched, err := f.matcher.MatchString(line)
		if err != nil {
			return fmt.Errorf("failed to match line %d: %w", f.linesScanned, err)
		}
		if !matched {
			continue
		}

		f.linesMatched++
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			if isClosedPipe(err) {
				// The downstream consumer closed early; routine in a
				// pipeline, so stop quietly.
				return nil
			}
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return nil
}

// LinesScanned returns the number of input lines read so far.
func (f *Filter) LinesScanned() int {
	return f.linesScanned
}

// LinesMatched returns the number of lines written so far.
func (f *Filter) LinesMatched() int {
	return f.linesMatched
}

// scanLines splits on '\n' only. Unlike bufio.ScanLines it does not strip a
// trailing '\r', which is payload rather than delimiter here. A final line
// without a trailing newline is still a line.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// isClosedPipe reports whether a write error means the consumer closed the
// pipe rather than a genuine output failure. The process must have SIGPIPE
// ignored (see cmd/minigrep); otherwise a closed stdout kills it before the
// write ever returns.
func isClosedPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, os.ErrClosed)
}
