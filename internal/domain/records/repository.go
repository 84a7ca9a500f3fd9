package records

// Repositories load and persist whole entity collections. Saving is a full
// overwrite of the backing store: appends made by another writer between
// LoadAll and SaveAll are lost. That hazard is inherited from the file
// format and deliberately not hidden behind locking.

// StudentRepository persists the student collection.
type StudentRepository interface {
	LoadAll() ([]StudentRecord, error)
	SaveAll([]StudentRecord) error
}

// TeacherRepository persists the teacher collection.
type TeacherRepository interface {
	LoadAll() ([]TeacherRecord, error)
	SaveAll([]TeacherRecord) error
}

// StaffRepository persists the staff collection.
type StaffRepository interface {
	LoadAll() ([]StaffRecord, error)
	SaveAll([]StaffRecord) error
}
