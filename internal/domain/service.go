// Package domain defines the activity records and the sign-up workflow.
package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"example.com/signup/internal/observability"
)

// ActivityStore holds every activity for the lifetime of the process.
type ActivityStore interface {
	All(ctx context.Context) map[string]Activity
	Get(ctx context.Context, name string) (Activity, bool)
	AddParticipant(ctx context.Context, name, email string) (Activity, error)
	RemoveParticipant(ctx context.Context, name, email string) (Activity, error)
}

// EventType names a registration change.
type EventType string

const (
	EventSignedUp     EventType = "participant.signed_up"
	EventUnregistered EventType = "participant.unregistered"
)

// RegistrationEvent describes a successful signup or unregister.
type RegistrationEvent struct {
	ID               string
	Type             EventType
	Activity         string
	Email            string
	ParticipantCount int
	OccurredAt       time.Time
}

// Publisher forwards registration events downstream.
type Publisher interface {
	Publish(ctx context.Context, event RegistrationEvent) error
}

// Option configures optional behaviour for the Service.
type Option func(*Service)

// WithPublisher sets the destination for registration events.
func WithPublisher(p Publisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

// WithLogger overrides the service logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithClock overrides the time source used for event timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// Service orchestrates signup and unregister against an ActivityStore.
type Service struct {
	store     ActivityStore
	publisher Publisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewService constructs a Service.
func NewService(store ActivityStore, opts ...Option) *Service {
	s := &Service{
		store:  store,
		logger: zap.NewNop(),
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListActivities returns a snapshot of every activity keyed by name.
func (s *Service) ListActivities(ctx context.Context) map[string]Activity {
	return s.store.All(ctx)
}

// GetActivity fetches a single activity by exact name.
func (s *Service) GetActivity(ctx context.Context, name string) (Activity, error) {
	activity, ok := s.store.Get(ctx, name)
	if !ok {
		return Activity{}, ErrActivityNotFound
	}
	return activity, nil
}

// Signup registers email for the named activity.
func (s *Service) Signup(ctx context.Context, name, email string) (Activity, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return Activity{}, ErrEmailRequired
	}

	activity, err := s.store.AddParticipant(ctx, name, email)
	observability.RecordSignup(metricLabels(name, err))
	if err != nil {
		return Activity{}, err
	}

	s.logger.Info("participant signed up",
		zap.String("activity", name),
		zap.String("email", email),
		zap.Int("participants", len(activity.Participants)),
	)
	observability.RecordParticipants(name, len(activity.Participants))
	s.publish(ctx, EventSignedUp, activity, email)
	return activity, nil
}

// Unregister removes email from the named activity.
func (s *Service) Unregister(ctx context.Context, name, email string) (Activity, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return Activity{}, ErrEmailRequired
	}

	activity, err := s.store.RemoveParticipant(ctx, name, email)
	observability.RecordUnregister(metricLabels(name, err))
	if err != nil {
		return Activity{}, err
	}

	s.logger.Info("participant unregistered",
		zap.String("activity", name),
		zap.String("email", email),
		zap.Int("participants", len(activity.Participants)),
	)
	observability.RecordParticipants(name, len(activity.Participants))
	s.publish(ctx, EventUnregistered, activity, email)
	return activity, nil
}

func (s *Service) publish(ctx context.Context, eventType EventType, activity Activity, email string) {
	if s.publisher == nil {
		return
	}
	event := RegistrationEvent{
		ID:               uuid.NewString(),
		Type:             eventType,
		Activity:         activity.Name,
		Email:            email,
		ParticipantCount: len(activity.Participants),
		OccurredAt:       s.now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish registration event",
			zap.String("event_type", string(eventType)),
			zap.String("activity", activity.Name),
			zap.Error(err),
		)
	}
}

// metricLabels maps a store result to bounded activity and outcome labels.
func metricLabels(name string, err error) (string, string) {
	switch {
	case err == nil:
		return name, "success"
	case errors.Is(err, ErrActivityNotFound):
		return "unknown", "not_found"
	case errors.Is(err, ErrAlreadyRegistered):
		return name, "already_registered"
	case errors.Is(err, ErrNotRegistered):
		return name, "not_registered"
	case errors.Is(err, ErrActivityFull):
		return name, "activity_full"
	default:
		return name, "error"
	}
}
