package domain

import (
	"fmt"
	"strings"
)

// Activity is an extracurricular offering and the emails registered for it.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// NewActivity validates the fields and returns an Activity that owns a copy of participants.
func NewActivity(name, description, schedule string, maxParticipants int, participants []string) (Activity, error) {
	if strings.TrimSpace(name) == "" {
		return Activity{}, ErrActivityNameRequired
	}
	if maxParticipants < 0 {
		return Activity{}, fmt.Errorf("activity %q: %w", name, ErrInvalidCapacity)
	}

	seen := make(map[string]struct{}, len(participants))
	owned := make([]string, 0, len(participants))
	for _, email := range participants {
		if _, dup := seen[email]; dup {
			return Activity{}, fmt.Errorf("activity %q, participant %q: %w", name, email, ErrAlreadyRegistered)
		}
		seen[email] = struct{}{}
		owned = append(owned, email)
	}

	return Activity{
		Name:            name,
		Description:     description,
		Schedule:        schedule,
		MaxParticipants: maxParticipants,
		Participants:    owned,
	}, nil
}

// HasParticipant reports whether email is registered.
func (a Activity) HasParticipant(email string) bool {
	return a.indexOf(email) >= 0
}

// SpotsLeft is the remaining capacity, never negative.
func (a Activity) SpotsLeft() int {
	left := a.MaxParticipants - len(a.Participants)
	if left < 0 {
		return 0
	}
	return left
}

// Full reports whether the participant list has reached MaxParticipants.
func (a Activity) Full() bool {
	return len(a.Participants) >= a.MaxParticipants
}

// Clone returns a copy whose participant slice is not shared with a.
func (a Activity) Clone() Activity {
	out := a
	out.Participants = append(make([]string, 0, len(a.Participants)), a.Participants...)
	return out
}

// WithParticipant returns a copy with email appended.
func (a Activity) WithParticipant(email string) Activity {
	out := a.Clone()
	out.Participants = append(out.Participants, email)
	return out
}

// WithoutParticipant returns a copy with email removed, keeping the order of the rest.
func (a Activity) WithoutParticipant(email string) Activity {
	out := a.Clone()
	if idx := out.indexOf(email); idx >= 0 {
		out.Participants = append(out.Participants[:idx], out.Participants[idx+1:]...)
	}
	return out
}

func (a Activity) indexOf(email string) int {
	for i, p := range a.Participants {
		if p == email {
			return i
		}
	}
	return -1
}
