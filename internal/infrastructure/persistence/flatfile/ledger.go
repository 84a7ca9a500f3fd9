package flatfile

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"github.com/schoolhub/school-records-hub/internal/domain/ledger"
	"github.com/schoolhub/school-records-hub/internal/domain/shared"
)

// Ledger is an append-only event log in one flat file. It implements
// ledger.Log. Files are opened in append mode on every write, so headers
// and detail lines from different sessions interleave freely; Scan
// tolerates that.
type Ledger struct {
	path string
}

// NewLedger creates a ledger over the given file path.
func NewLedger(path string) *Ledger {
	return &Ledger{path: path}
}

// AppendSection appends a blank line and the section header, demarcating a
// new logical batch. Prior content is never rewritten.
func (l *Ledger) AppendSection(h ledger.Header) error {
	return l.append("\n" + h.String() + "\n")
}

// AppendLine appends one detail line under the most recently written
// header.
func (l *Ledger) AppendLine(line string) error {
	return l.append(line + "\n")
}

func (l *Ledger) append(text string) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return shared.WrapError("flatfile", "Append",
			shared.ErrFileUnavailable, "opening "+l.path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(text); err != nil {
		return shared.WrapError("flatfile", "Append",
			shared.ErrFileUnavailable, "writing "+l.path, err)
	}
	return nil
}

// Scan visits every header and detail line in file order, pairing each
// detail line with the most recently seen header. A missing file scans as
// empty; returning ledger.ErrStopScan from the visitor ends the scan
// without error.
func (l *Ledger) Scan(visit func(ev ledger.Event) error) error {
	f, err := os.Open(l.path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var current ledger.Header
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		ev := ledger.Event{Header: current, Line: line}
		if h, ok := ledger.ParseHeader(line); ok {
			current = h
			ev = ledger.Event{Header: h, IsHeader: true}
		}

		if err := visit(ev); err != nil {
			if errors.Is(err, ledger.ErrStopScan) {
				return nil
			}
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return shared.WrapError("flatfile", "Scan",
			shared.ErrFileUnavailable, "reading "+l.path, err)
	}
	return nil
}
