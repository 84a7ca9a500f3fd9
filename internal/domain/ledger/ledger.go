// Package ledger defines the append-only, section-headered event logs that
// back attendance, grades, payments, requests and reports. Ledgers are never
// rewritten wholesale: corrections and resolutions are new lines, and readers
// derive current state themselves (latest line wins).
package ledger

import (
	"errors"
	"strings"
)

// Section tags of the persisted files. A header line has the form
// "[<TAG> <optional params>]".
const (
	TagStudentRecord   = "STUDENT RECORD"
	TagTeacherRecord   = "TEACHER RECORD"
	TagStaffRecord     = "STAFF RECORD"
	TagTimetable       = "TIMETABLE"
	TagAttendance      = "ATTENDANCE"
	TagTermReports     = "TERM REPORTS"
	TagAssignments     = "ASSIGNMENTS"
	TagFeesLedger      = "FEES LEDGER"
	TagLeaveRequests   = "LEAVE REQUESTS"
	TagParentRequests  = "PARENT REQUESTS"
	TagFeeChallans     = "FEE CHALLANS"
	TagStaffSalaries   = "STAFF SALARIES"
	TagTeacherSalaries = "TEACHER SALARIES"
	TagGrades          = "GRADES"
)

// Header is a parsed section header.
type Header struct {
	Tag    string
	Params string
}

// HasTag reports whether the header carries the given tag. Params may start
// with anything, so the tag must match a whole prefix of the bracket body.
func (h Header) HasTag(tag string) bool {
	return h.Tag == tag
}

// String renders the header as a "[TAG params]" line.
func (h Header) String() string {
	if h.Params == "" {
		return "[" + h.Tag + "]"
	}
	return "[" + h.Tag + " " + h.Params + "]"
}

// NewHeader builds a header for the given tag and space-joined params.
func NewHeader(tag string, params ...string) Header {
	return Header{Tag: tag, Params: strings.Join(params, " ")}
}

// IsHeaderLine reports whether a raw line is a section header rather than a
// detail record. Entity decoders skip these.
func IsHeaderLine(line string) bool {
	return strings.HasPrefix(line, "[")
}

// knownTags lists every tag a header parser recognizes, longest first so
// that "TEACHER SALARIES" is not cut short by a shorter prefix.
var knownTags = []string{
	TagTeacherSalaries,
	TagParentRequests,
	TagStudentRecord,
	TagTeacherRecord,
	TagLeaveRequests,
	TagStaffSalaries,
	TagStaffRecord,
	TagTermReports,
	TagFeeChallans,
	TagFeesLedger,
	TagAssignments,
	TagAttendance,
	TagTimetable,
	TagGrades,
}

// ParseHeader parses a "[TAG params]" line. Unknown tags still parse: the
// whole bracket body becomes the tag and params stay empty, so scans remain
// tolerant of sections written by other tools.
func ParseHeader(line string) (Header, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "[") || !strings.HasSuffix(line, "]") {
		return Header{}, false
	}

	body := strings.TrimSpace(line[1 : len(line)-1])
	for _, tag := range knownTags {
		if body == tag {
			return Header{Tag: tag}, true
		}
		if strings.HasPrefix(body, tag+" ") {
			return Header{Tag: tag, Params: strings.TrimSpace(body[len(tag):])}, true
		}
	}
	return Header{Tag: body}, true
}

// Event is one scanned ledger element: either a section header, or a detail
// line paired with the most recently seen header. Headers and detail lines
// interleave arbitrarily across write sessions, so consumers must not assume
// any grouping beyond physical line order.
type Event struct {
	Header   Header
	Line     string
	IsHeader bool
}

// ErrStopScan stops a scan early without reporting an error to the caller.
var ErrStopScan = errors.New("stop ledger scan")

// Log is a write-only, append-only event log with a read-side scan.
type Log interface {
	// AppendSection writes a section header demarcating a new logical batch.
	AppendSection(h Header) error

	// AppendLine writes one detail line under the most recent header.
	// Callers are responsible for ordering; the log has no transactional
	// grouping beyond line order.
	AppendLine(line string) error

	// Scan visits every header and detail line in file order. A missing
	// backing file scans as empty. Returning ErrStopScan from the visitor
	// ends the scan without error.
	Scan(visit func(ev Event) error) error
}
