package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatLine(t *testing.T) {
	assert.Equal(t, "S001: Present", FormatLine("S001", true))
	assert.Equal(t, "S001: Absent", FormatLine("S001", false))
}

func TestParseLine(t *testing.T) {
	id, status, ok := ParseLine("S001: Present")
	assert.True(t, ok)
	assert.Equal(t, "S001", id)
	assert.Equal(t, Present, status)

	_, _, ok = ParseLine("no separator here")
	assert.False(t, ok)
}

func TestLineMatching(t *testing.T) {
	assert.True(t, LineMentions("S001: Present", "S001"))
	assert.False(t, LineMentions("S002: Present", "S001"))
	assert.True(t, LineMarksPresent("S001: Present"))
	assert.False(t, LineMarksPresent("S001: Absent"))
}

func TestSectionHeaderRoundTrip(t *testing.T) {
	h := NewSectionHeader("2026-08-31", "10-A")
	assert.Equal(t, "[ATTENDANCE 2026-08-31 CLASS 10-A]", h.String())

	sec, ok := ParseSection(h)
	assert.True(t, ok)
	assert.Equal(t, Section{Date: "2026-08-31", ClassName: "10-A"}, sec)
}

func TestSummaryPercent(t *testing.T) {
	assert.InDelta(t, 75.0, Summary{PresentCount: 3, TotalBatches: 4}.Percent(), 1e-9)
	// No batches scanned: the denominator floors at one instead of dividing
	// by zero.
	assert.InDelta(t, 0.0, Summary{}.Percent(), 1e-9)
}
