package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	// LeadSubmitted is emitted once lead submission is stored
	LeadSubmitted = "lead.submitted"
	// BookingSubmitted is emitted once booking confirmation is stored
	BookingSubmitted = "booking.submitted"
)

// Event is message published to the events topic
type Event struct {
	Name       string    `json:"name"`
	EntityID   int64     `json:"entityId"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}

// Publisher publishes domain events
type Publisher interface {
	Publish(context.Context, Event) error
	Close() error
}

type kafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher builds Publisher writing to kafka topic
func NewKafkaPublisher(brokers []string, topic string) Publisher {
	return &kafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *kafkaPublisher) Publish(ctx context.Context, e Event) error {
	msg, err := message(e)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, msg)
}

// message keys event by entity id
func message(e Event) (kafka.Message, error) {
	value, err := json.Marshal(&e)
	if err != nil {
		return kafka.Message{}, err
	}

	return kafka.Message{
		Key:   []byte(strconv.FormatInt(e.EntityID, 10)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(e.Name)},
		},
	}, nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

type nopPublisher struct{}

// NewNopPublisher builds Publisher which drops every event
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(context.Context, Event) error {
	return nil
}

func (nopPublisher) Close() error {
	return nil
}
