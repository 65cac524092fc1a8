// Package events publishes registration changes to Kafka.
package events

import (
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"example.com/signup/internal/domain"
)

// RegistrationPayload is the JSON body written for each registration event.
type RegistrationPayload struct {
	EventID          string    `json:"event_id"`
	EventType        string    `json:"event_type"`
	Activity         string    `json:"activity"`
	Email            string    `json:"email"`
	ParticipantCount int       `json:"participant_count"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// NewMessage encodes event as a Kafka message keyed by activity name so that
// events for one activity stay ordered within a partition.
func NewMessage(event domain.RegistrationEvent) (kafka.Message, error) {
	body, err := json.Marshal(RegistrationPayload{
		EventID:          event.ID,
		EventType:        string(event.Type),
		Activity:         event.Activity,
		Email:            event.Email,
		ParticipantCount: event.ParticipantCount,
		OccurredAt:       event.OccurredAt.UTC(),
	})
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(event.Activity),
		Value: body,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
			{Key: "event_id", Value: []byte(event.ID)},
		},
	}, nil
}
