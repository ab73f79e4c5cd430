// Package store holds the in-memory activity and student records.
//
// All reads return copies. Mutations go through a Tx, which holds the write
// lock from Begin until Commit or Rollback, so a validate-then-mutate sequence
// cannot interleave with another one and readers never see half of it.
package store

import (
	"errors"
	"sync"

	"mergington-activities/models"
)

var (
	ErrNotFound = errors.New("store: record not found")
	ErrTxDone   = errors.New("store: transaction already committed or rolled back")
)

type Store struct {
	mu         sync.RWMutex
	activities map[string]models.Activity
	students   map[string]models.Student
}

// New builds a store from a deep copy of seed.
func New(seed models.Seed) *Store {
	s := seed.Clone()
	return &Store{
		activities: s.Activities,
		students:   s.Students,
	}
}

// ListActivities returns every activity keyed by name.
func (s *Store) ListActivities() map[string]models.ActivityView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]models.ActivityView, len(s.activities))
	for name, a := range s.activities {
		out[name] = a.View()
	}
	return out
}

// ListStudents returns every student keyed by email.
func (s *Store) ListStudents() map[string]models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]models.Student, len(s.students))
	for email, st := range s.students {
		out[email] = st
	}
	return out
}

func (s *Store) GetActivity(name string) (models.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activity(name)
}

func (s *Store) GetStudent(email string) (models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.student(email)
}

// UpsertStudent inserts the student if the email is unknown. An existing
// record is left untouched. It reports whether a record was created.
func (s *Store) UpsertStudent(email, name string, grade int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertStudent(email, models.Student{Name: name, Grade: grade})
}

// Begin starts a transaction. The caller must finish it with Commit or
// Rollback; until then every other reader and writer blocks.
func (s *Store) Begin() *Tx {
	s.mu.Lock()
	return &Tx{s: s}
}

// activity and student expect the caller to hold s.mu.
func (s *Store) activity(name string) (models.Activity, error) {
	a, ok := s.activities[name]
	if !ok {
		return models.Activity{}, ErrNotFound
	}
	a.Participants = append([]string(nil), a.Participants...)
	return a, nil
}

func (s *Store) student(email string) (models.Student, error) {
	st, ok := s.students[email]
	if !ok {
		return models.Student{}, ErrNotFound
	}
	return st, nil
}

func (s *Store) insertStudent(email string, st models.Student) bool {
	if _, ok := s.students[email]; ok {
		return false
	}
	s.students[email] = st
	return true
}
