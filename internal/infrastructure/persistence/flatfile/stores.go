package flatfile

import (
	"github.com/schoolhub/school-records-hub/internal/domain/ledger"
	"github.com/schoolhub/school-records-hub/internal/domain/records"
	"github.com/schoolhub/school-records-hub/pkg/logger"
)

// Entity store constructors. Each wires the entity codec defined by the
// domain onto a Store at the given path.

// NewStudentStore persists the student collection.
func NewStudentStore(path string, log *logger.Logger) *Store[records.StudentRecord] {
	return NewStore(path, Codec[records.StudentRecord]{
		HeaderTag: ledger.TagStudentRecord,
		MinArity:  records.StudentArity,
		Decode:    records.DecodeStudent,
		Encode:    records.StudentRecord.Fields,
	}, log)
}

// NewTeacherStore persists the teacher collection.
func NewTeacherStore(path string, log *logger.Logger) *Store[records.TeacherRecord] {
	return NewStore(path, Codec[records.TeacherRecord]{
		HeaderTag: ledger.TagTeacherRecord,
		MinArity:  records.TeacherMinArity,
		Decode:    records.DecodeTeacher,
		Encode:    records.TeacherRecord.Fields,
	}, log)
}

// NewStaffStore persists the staff collection.
func NewStaffStore(path string, log *logger.Logger) *Store[records.StaffRecord] {
	return NewStore(path, Codec[records.StaffRecord]{
		HeaderTag: ledger.TagStaffRecord,
		MinArity:  records.StaffArity,
		Decode:    records.DecodeStaff,
		Encode:    records.StaffRecord.Fields,
	}, log)
}
