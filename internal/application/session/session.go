// Package session implements the unit of work every write to an entity
// collection goes through: load the whole collection, mutate it in memory,
// save it back in one overwrite. Reads between Begin and Commit see the
// session's view, not the file.
package session

import (
	"github.com/schoolhub/school-records-hub/internal/domain/shared"
)

// Repository is the load/save contract a session works over. Both the
// flat-file stores and the domain repository interfaces satisfy it.
type Repository[T any] interface {
	LoadAll() ([]T, error)
	SaveAll([]T) error
}

// Session is one load, mutate, save cycle over a collection. Identity comes
// from the id function; ids are externally supplied and unique within the
// collection.
type Session[T any] struct {
	repo  Repository[T]
	items []T
	id    func(T) string
}

// Begin loads the collection and opens a session over it.
func Begin[T any](repo Repository[T], id func(T) string) (*Session[T], error) {
	items, err := repo.LoadAll()
	if err != nil {
		return nil, err
	}
	return &Session[T]{repo: repo, items: items, id: id}, nil
}

// All returns the session's working copy. Mutating elements through the
// returned slice is the intended way to edit in place.
func (s *Session[T]) All() []T {
	return s.items
}

// Len returns the collection size.
func (s *Session[T]) Len() int {
	return len(s.items)
}

// Find returns the index of the entity with the given id.
func (s *Session[T]) Find(id string) (int, bool) {
	for i := range s.items {
		if s.id(s.items[i]) == id {
			return i, true
		}
	}
	return -1, false
}

// Get returns the entity with the given id.
func (s *Session[T]) Get(id string) (T, bool) {
	if i, ok := s.Find(id); ok {
		return s.items[i], true
	}
	var zero T
	return zero, false
}

// Add appends a new entity, rejecting a duplicate id.
func (s *Session[T]) Add(item T) error {
	if _, exists := s.Find(s.id(item)); exists {
		return shared.NewDomainError("session", "Add",
			shared.ErrAlreadyExists, "id already in collection: "+s.id(item))
	}
	s.items = append(s.items, item)
	return nil
}

// Update replaces the entity with the item's id.
func (s *Session[T]) Update(item T) error {
	i, ok := s.Find(s.id(item))
	if !ok {
		return shared.NewDomainError("session", "Update",
			shared.ErrNotFound, "no entity with id "+s.id(item))
	}
	s.items[i] = item
	return nil
}

// Remove deletes the entity with the given id, preserving order.
func (s *Session[T]) Remove(id string) error {
	i, ok := s.Find(id)
	if !ok {
		return shared.NewDomainError("session", "Remove",
			shared.ErrNotFound, "no entity with id "+id)
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return nil
}

// Commit writes the working copy back in one overwrite. Appends made by
// another writer since Begin are lost, the hazard the file format carries.
func (s *Session[T]) Commit() error {
	return s.repo.SaveAll(s.items)
}
