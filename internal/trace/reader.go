package trace

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/replayctl/pagesim/internal/xerrors"
)

// ErrPartial is returned (wrapped, via errors.Is) by Load when the trace
// file ends with a line that does not parse as two whitespace-separated
// non-negative integers. This is a recoverable condition: Load still
// returns every reference read up to that point.
const ErrPartial = xerrors.ConstError("trace ended with a malformed line")

// ErrUnreadable is returned (wrapped) when the trace file cannot be
// opened at all.
const ErrUnreadable = xerrors.ConstError("trace file is unreadable")

// Load reads a trace file: one "<pid> <page>" pair per whitespace-
// separated line. An empty file is a valid, zero-length trace. A line that
// fails to parse two non-negative integers stops ingestion and Load
// returns everything parsed so far alongside an error wrapping ErrPartial
// -- callers that only care about a hard failure should check
// errors.Is(err, ErrUnreadable).
func Load(path string) (*Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses a trace from an arbitrary reader, applying the same
// malformed-tail-line recovery rule as Load. It is split out from Load so
// tests can exercise it against a reader that splits lines across
// multiple Read calls (see fragmentingReader in reader_test.go).
func Read(r io.Reader) (*Trace, error) {
	scanner := bufio.NewScanner(r)
	var refs []PageRef

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return New(refs), fmt.Errorf("%w: %q", ErrPartial, line)
		}
		pid, err1 := strconv.Atoi(fields[0])
		page, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil || pid < 0 || page < 0 {
			return New(refs), fmt.Errorf("%w: %q", ErrPartial, line)
		}
		refs = append(refs, PageRef{PID: pid, Page: page})
	}
	if err := scanner.Err(); err != nil {
		return New(refs), fmt.Errorf("%w: %v", ErrPartial, err)
	}
	return New(refs), nil
}
