package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gartstein/obotseed/internal/seed/models"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var jsonMarshal = json.Marshal

type EventType string

const (
	CompanySeeded EventType = "company_seeded"
	SeedCompleted EventType = "seed_completed"
)

// completionKey partitions completion events, which carry no company.
const completionKey = "seed"

type Event struct {
	Type        EventType `json:"type"`
	CompanyRef  uuid.UUID `json:"company_ref"`
	CompanyID   uint      `json:"company_id,omitempty"`
	CompanyName string    `json:"company_name,omitempty"`
	Personal    bool      `json:"personal"`
	OwnerID     uint      `json:"owner_id,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// NewCompanySeeded describes a freshly seeded company.
func NewCompanySeeded(company *models.Company, at time.Time) Event {
	return Event{
		Type:        CompanySeeded,
		CompanyRef:  company.Reference,
		CompanyID:   company.ID,
		CompanyName: company.Name,
		Personal:    company.PersonalCompany,
		OwnerID:     company.UserID,
		OccurredAt:  at,
	}
}

// NewSeedCompleted marks the end of a seed run for ownerID.
func NewSeedCompleted(ownerID uint, at time.Time) Event {
	return Event{Type: SeedCompleted, OwnerID: ownerID, OccurredAt: at}
}

func (ev Event) key() string {
	if ev.CompanyRef == uuid.Nil {
		return completionKey
	}
	return ev.CompanyRef.String()
}

type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes seed events to Kafka synchronously.
type Publisher struct {
	writer KafkaWriter
	logger *zap.Logger
}

func NewPublisher(brokers []string, topic string, logger *zap.Logger) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.LeastBytes{},
			Topic:                  topic,
			AllowAutoTopicCreation: true,
		},
		logger: logger.Named("seed_publisher"),
	}
}

func (p *Publisher) Notify(ctx context.Context, event Event) error {
	value, err := jsonMarshal(event)
	if err != nil {
		return fmt.Errorf("failed to serialize event: %w", err)
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.key()),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to produce %s event: %w", event.Type, err)
	}
	p.logger.Debug("event published",
		zap.String("event_type", string(event.Type)),
		zap.String("key", event.key()),
	)
	return nil
}

func (p *Publisher) Close() {
	if err := p.writer.Close(); err != nil {
		p.logger.Error("Failed to close Kafka writer", zap.Error(err))
	}
}

// Nop discards every event. It is used when no brokers are configured.
type Nop struct{}

func (Nop) Notify(context.Context, Event) error { return nil }
