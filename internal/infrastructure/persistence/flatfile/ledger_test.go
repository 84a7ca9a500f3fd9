package flatfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schoolhub/school-records-hub/internal/domain/attendance"
	"github.com/schoolhub/school-records-hub/internal/domain/ledger"
)

func TestLedgerMissingFileScansEmpty(t *testing.T) {
	l := NewLedger(filepath.Join(t.TempDir(), "attendance.txt"))

	visited := 0
	assert.NoError(t, l.Scan(func(ev ledger.Event) error {
		visited++
		return nil
	}))
	assert.Zero(t, visited)
}

func TestLedgerAppendFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attendance.txt")
	l := NewLedger(path)

	assert.NoError(t, l.AppendSection(attendance.NewSectionHeader("2026-08-31", "10-A")))
	assert.NoError(t, l.AppendLine("S001: Present"))
	assert.NoError(t, l.AppendLine("S002: Absent"))

	raw, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t,
		"\n[ATTENDANCE 2026-08-31 CLASS 10-A]\n"+
			"S001: Present\n"+
			"S002: Absent\n",
		string(raw))
}

func TestLedgerScanPairsLinesWithHeaders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attendance.txt")
	l := NewLedger(path)

	first := attendance.NewSectionHeader("2026-08-30", "10-A")
	second := attendance.NewSectionHeader("2026-08-31", "10-A")
	assert.NoError(t, l.AppendSection(first))
	assert.NoError(t, l.AppendLine("S001: Present"))
	assert.NoError(t, l.AppendSection(second))
	assert.NoError(t, l.AppendLine("S001: Absent"))

	var headers []ledger.Header
	var lines []ledger.Event
	assert.NoError(t, l.Scan(func(ev ledger.Event) error {
		if ev.IsHeader {
			headers = append(headers, ev.Header)
			return nil
		}
		lines = append(lines, ev)
		return nil
	}))

	assert.Equal(t, []ledger.Header{first, second}, headers)
	assert.Len(t, lines, 2)
	assert.Equal(t, first, lines[0].Header)
	assert.Equal(t, "S001: Present", lines[0].Line)
	assert.Equal(t, second, lines[1].Header)
	assert.Equal(t, "S001: Absent", lines[1].Line)
}

func TestLedgerScanStopsOnErrStopScan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attendance.txt")
	l := NewLedger(path)
	assert.NoError(t, l.AppendLine("one"))
	assert.NoError(t, l.AppendLine("two"))

	visited := 0
	assert.NoError(t, l.Scan(func(ev ledger.Event) error {
		visited++
		return ledger.ErrStopScan
	}))
	assert.Equal(t, 1, visited)
}
