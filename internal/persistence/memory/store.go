// Package memory provides the process-wide in-memory activity store.
package memory

import (
	"context"
	"fmt"
	"sync"

	"example.com/signup/internal/domain"
)

// Option configures a Store.
type Option func(*Store)

// WithCapacityEnforcement rejects signups once an activity reaches MaxParticipants.
func WithCapacityEnforcement(enabled bool) Option {
	return func(s *Store) {
		s.enforceCapacity = enabled
	}
}

// Store keeps activities keyed by name. The zero value is not usable; call NewStore.
type Store struct {
	mu              sync.RWMutex
	activities      map[string]domain.Activity
	enforceCapacity bool
}

// NewStore builds a Store holding the given activities. Names must be unique.
func NewStore(seed []domain.Activity, opts ...Option) (*Store, error) {
	s := &Store{activities: make(map[string]domain.Activity, len(seed))}
	for _, opt := range opts {
		opt(s)
	}
	for _, activity := range seed {
		if _, exists := s.activities[activity.Name]; exists {
			return nil, fmt.Errorf("duplicate activity name %q", activity.Name)
		}
		s.activities[activity.Name] = activity.Clone()
	}
	return s, nil
}

// All returns a copy of every activity keyed by name.
func (s *Store) All(ctx context.Context) map[string]domain.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]domain.Activity, len(s.activities))
	for name, activity := range s.activities {
		out[name] = activity.Clone()
	}
	return out
}

// Get looks up an activity by exact, case-sensitive name.
func (s *Store) Get(ctx context.Context, name string) (domain.Activity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	activity, ok := s.activities[name]
	if !ok {
		return domain.Activity{}, false
	}
	return activity.Clone(), true
}

// AddParticipant appends email to the activity's participants.
func (s *Store) AddParticipant(ctx context.Context, name, email string) (domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[name]
	if !ok {
		return domain.Activity{}, domain.ErrActivityNotFound
	}
	if activity.HasParticipant(email) {
		return domain.Activity{}, domain.ErrAlreadyRegistered
	}
	if s.enforceCapacity && activity.Full() {
		return domain.Activity{}, domain.ErrActivityFull
	}

	updated := activity.WithParticipant(email)
	s.activities[name] = updated
	return updated.Clone(), nil
}

// RemoveParticipant drops email from the activity's participants.
func (s *Store) RemoveParticipant(ctx context.Context, name, email string) (domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[name]
	if !ok {
		return domain.Activity{}, domain.ErrActivityNotFound
	}
	if !activity.HasParticipant(email) {
		return domain.Activity{}, domain.ErrNotRegistered
	}

	updated := activity.WithoutParticipant(email)
	s.activities[name] = updated
	return updated.Clone(), nil
}
