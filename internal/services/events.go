package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/linkvault/internal/logger"
	"github.com/sbilibin2017/linkvault/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=events.go -destination=mock_events.go -package=services

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// Publisher announces successful mutations.
type Publisher interface {
	Publish(ctx context.Context, event models.ResourceEvent)
}

// EventPublisher publishes resource events to Kafka. Failures are logged and
// never reach the caller.
type EventPublisher struct {
	writer KafkaWriter
}

// NewEventPublisher creates a publisher. A nil writer disables publishing.
func NewEventPublisher(writer KafkaWriter) *EventPublisher {
	return &EventPublisher{writer: writer}
}

// Publish writes the event keyed by user id so a user's events stay ordered.
func (p *EventPublisher) Publish(ctx context.Context, event models.ResourceEvent) {
	if p.writer == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "error", err)
		return
	}
	logger.Log.Infow("Event published to Kafka",
		"event_id", event.EventID,
		"resource", event.Resource,
		"action", event.Action,
	)
}

func newEvent(userID uuid.UUID, resource, action string, resourceID uuid.UUID) models.ResourceEvent {
	return models.ResourceEvent{
		EventID:    uuid.NewString(),
		UserID:     userID.String(),
		Resource:   resource,
		Action:     action,
		ResourceID: resourceID.String(),
		Timestamp:  time.Now().Unix(),
	}
}
