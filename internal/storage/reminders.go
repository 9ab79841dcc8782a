package storage

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
)

var ErrReminderNotFound error = errors.New("reminder not found")
var ErrReminderExists error = errors.New("reminder id already exists")

// ReminderStore holds reminders in memory in insertion order. Callers that
// need a different order sort the copy returned by All.
type ReminderStore struct {
	mu        sync.RWMutex
	reminders []Reminder
}

func NewReminderStore() *ReminderStore {
	return &ReminderStore{}
}

// All returns a copy of the collection in insertion order.
func (s *ReminderStore) All(ctx context.Context) ([]Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reminders := make([]Reminder, len(s.reminders))
	copy(reminders, s.reminders)

	return reminders, nil
}

func (s *ReminderStore) Get(ctx context.Context, id string) (Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, reminder := range s.reminders {
		if reminder.ID == id {
			return reminder, nil
		}
	}

	return Reminder{}, ErrReminderNotFound
}

func (s *ReminderStore) Insert(ctx context.Context, reminder Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.reminders {
		if existing.ID == reminder.ID {
			return fmt.Errorf("%w: %s", ErrReminderExists, reminder.ID)
		}
	}

	s.reminders = append(s.reminders, reminder)
	return nil
}

// Update replaces the record with the same ID, keeping its position in
// the underlying collection.
func (s *ReminderStore) Update(ctx context.Context, reminder Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reminders {
		if s.reminders[i].ID == reminder.ID {
			s.reminders[i] = reminder
			return nil
		}
	}

	return ErrReminderNotFound
}

func (s *ReminderStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reminders {
		if s.reminders[i].ID == id {
			s.reminders = slices.Delete(s.reminders, i, i+1)
			return nil
		}
	}

	return ErrReminderNotFound
}
