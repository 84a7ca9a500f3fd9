package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schoolhub/school-records-hub/internal/domain/records"
	"github.com/schoolhub/school-records-hub/internal/domain/shared"
)

type fakeRepo struct {
	items []records.StudentRecord
	saved [][]records.StudentRecord
}

func (r *fakeRepo) LoadAll() ([]records.StudentRecord, error) {
	return append([]records.StudentRecord(nil), r.items...), nil
}

func (r *fakeRepo) SaveAll(items []records.StudentRecord) error {
	r.saved = append(r.saved, append([]records.StudentRecord(nil), items...))
	return nil
}

func studentID(s records.StudentRecord) string { return s.ID }

func TestSessionAddRejectsDuplicate(t *testing.T) {
	repo := &fakeRepo{items: []records.StudentRecord{{ID: "S001", Name: "Aliya"}}}
	s, err := Begin[records.StudentRecord](repo, studentID)
	assert.NoError(t, err)

	assert.NoError(t, s.Add(records.StudentRecord{ID: "S002", Name: "Omar"}))
	assert.ErrorIs(t, s.Add(records.StudentRecord{ID: "S001"}), shared.ErrAlreadyExists)
	assert.Equal(t, 2, s.Len())
}

func TestSessionUpdateAndGet(t *testing.T) {
	repo := &fakeRepo{items: []records.StudentRecord{{ID: "S001", Name: "Aliya", FeeStatus: "Unpaid"}}}
	s, err := Begin[records.StudentRecord](repo, studentID)
	assert.NoError(t, err)

	assert.NoError(t, s.Update(records.StudentRecord{ID: "S001", Name: "Aliya", FeeStatus: "Paid till 2026-08"}))
	got, ok := s.Get("S001")
	assert.True(t, ok)
	assert.Equal(t, "Paid till 2026-08", got.FeeStatus)

	assert.ErrorIs(t, s.Update(records.StudentRecord{ID: "S999"}), shared.ErrNotFound)
}

func TestSessionMutateInPlaceThenCommit(t *testing.T) {
	repo := &fakeRepo{items: []records.StudentRecord{
		{ID: "S001", FeeStatus: "Unpaid"},
		{ID: "S002", FeeStatus: "Unpaid"},
	}}
	s, err := Begin[records.StudentRecord](repo, studentID)
	assert.NoError(t, err)

	for i := range s.All() {
		s.All()[i].MarkFeePaid("2026-08")
	}
	assert.NoError(t, s.Commit())

	assert.Len(t, repo.saved, 1)
	assert.Equal(t, "Paid till 2026-08", repo.saved[0][0].FeeStatus)
	assert.Equal(t, "Paid till 2026-08", repo.saved[0][1].FeeStatus)
}

func TestSessionRemovePreservesOrder(t *testing.T) {
	repo := &fakeRepo{items: []records.StudentRecord{{ID: "S001"}, {ID: "S002"}, {ID: "S003"}}}
	s, err := Begin[records.StudentRecord](repo, studentID)
	assert.NoError(t, err)

	assert.NoError(t, s.Remove("S002"))
	assert.Equal(t, []records.StudentRecord{{ID: "S001"}, {ID: "S003"}}, s.All())
	assert.ErrorIs(t, s.Remove("S002"), shared.ErrNotFound)
}
