package natsadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/samirrijal/placesbridge/internal/core/domain"
)

const (
	// EventsStream holds autocomplete audit events.
	EventsStream = "PLACES_EVENTS"
	// SubjectCompleted carries one event per finished autocomplete call.
	SubjectCompleted = "places.autocomplete.completed"
)

// Publisher implements ports.EventPublisher using NATS JetStream.
type Publisher struct {
	js nats.JetStreamContext
}

// NewPublisher enables JetStream on conn and ensures the events stream exists.
func NewPublisher(conn *nats.Conn) (*Publisher, error) {
	js, err := conn.JetStream()
	if err != nil {
		return nil, fmt.Errorf("jetstream: %w", err)
	}

	cfg := nats.StreamConfig{
		Name:      EventsStream,
		Subjects:  []string{SubjectCompleted},
		Retention: nats.LimitsPolicy,
		MaxAge:    7 * 24 * time.Hour,
		Storage:   nats.FileStorage,
	}
	if _, err := js.AddStream(&cfg); err != nil {
		// Stream may already exist with a different config.
		if _, err := js.UpdateStream(&cfg); err != nil {
			return nil, fmt.Errorf("ensure stream %s: %w", cfg.Name, err)
		}
	}

	return &Publisher{js: js}, nil
}

// PublishAutocompleteCompleted publishes one audit entry.
func (p *Publisher) PublishAutocompleteCompleted(ctx context.Context, entry *domain.RequestLogEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	_, err = p.js.Publish(SubjectCompleted, data, nats.Context(ctx))
	return err
}
