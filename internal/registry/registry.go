// Package registry holds every student record in memory behind one
// table-wide reader/writer lock.
package registry

import (
	"errors"
	"sort"
	"sync"

	"github.com/vytor/edugame/internal/models"
)

// ErrNotFound is returned when no record exists for a username.
var ErrNotFound = errors.New("student not found")

// Entry pairs a username with its record.
type Entry struct {
	Username string
	Student  models.Student
}

// Registry is safe for concurrent use. Records are copied in and out, so
// callers never hold a reference into the table.
type Registry struct {
	mu       sync.RWMutex
	students map[string]models.Student
	version  uint64
}

func New() *Registry {
	return &Registry{students: make(map[string]models.Student)}
}

// Upsert replaces the record for username and reports whether it was created.
func (r *Registry) Upsert(username string, s models.Student) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, existed := r.students[username]
	r.students[username] = s
	r.version++
	return !existed
}

// Get returns a copy of the record for username.
func (r *Registry) Get(username string) (models.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.students[username]
	if !ok {
		return models.Student{}, ErrNotFound
	}
	return s, nil
}

// Mutate runs fn on a copy of the record under the write lock. The copy is
// stored only when fn returns nil, so a refused operation leaves the record
// untouched. fn must not call back into the registry.
func (r *Registry) Mutate(username string, fn func(*models.Student) error) (models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.students[username]
	if !ok {
		return models.Student{}, ErrNotFound
	}
	if err := fn(&s); err != nil {
		return r.students[username], err
	}
	r.students[username] = s
	r.version++
	return s, nil
}

// Snapshot clones the table under the read lock, ordered by username.
func (r *Registry) Snapshot() []Entry {
	entries, _ := r.SnapshotVersion()
	return entries
}

// SnapshotVersion returns the snapshot and the version it was taken at.
func (r *Registry) SnapshotVersion() ([]Entry, uint64) {
	r.mu.RLock()
	entries := make([]Entry, 0, len(r.students))
	for u, s := range r.students {
		entries = append(entries, Entry{Username: u, Student: s})
	}
	v := r.version
	r.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool { return entries[i].Username < entries[j].Username })
	return entries, v
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.students)
}

// Version increases on every committed write.
func (r *Registry) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}
