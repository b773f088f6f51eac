// Package store owns the in-memory dataset: users, appointment slots and
// appointments. The dataset lives for the life of the process and is guarded
// by a single lock; callers run whole operations inside View/Update closures
// so every domain operation is atomic with respect to every other one.
package store

import (
	"sync"

	"appointment-booking-api/internal/model"
)

// Data is the raw dataset. Only reachable through Store.View/Store.Update.
type Data struct {
	Users        []*model.User
	Slots        []*model.AppointmentSlot
	Appointments []*model.Appointment
}

type Store struct {
	mu   sync.RWMutex
	data Data
}

func New() *Store {
	return &Store{}
}

// View runs fn with shared read access to the dataset. fn must not mutate.
func (s *Store) View(fn func(*Data) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&s.data)
}

// Update runs fn with exclusive access to the dataset. fn should validate
// every precondition before the first mutation so a failed operation leaves
// the dataset untouched.
func (s *Store) Update(fn func(*Data) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.data)
}
