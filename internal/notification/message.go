// Package notification carries booking outcome emails from the services to
// the mail provider through the message broker.
package notification

import (
	"context"
	"fmt"
	"time"
)

type Kind string

const (
	KindBookingCreated  Kind = "booking_created"
	KindRequestResolved Kind = "request_resolved"
)

// RoutingKeyPrefix is shared by every notification routing key.
const RoutingKeyPrefix = "notification."

// Message is the broker payload. It holds everything the templates need so
// the consumer never reads the stores.
type Message struct {
	Kind        Kind      `json:"kind"`
	To          string    `json:"to"`
	Name        string    `json:"name,omitempty"`
	BookingID   string    `json:"bookingId"`
	BookingType string    `json:"bookingType"`
	Summary     string    `json:"summary,omitempty"`
	RequestID   string    `json:"requestId,omitempty"`
	RequestType string    `json:"requestType,omitempty"`
	Decision    string    `json:"decision,omitempty"`
	AdminNotes  string    `json:"adminNotes,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
}

func (m Message) RoutingKey() string {
	return RoutingKeyPrefix + string(m.Kind)
}

func (m Message) Validate() error {
	if m.To == "" {
		return fmt.Errorf("notification %s has no recipient", m.Kind)
	}
	switch m.Kind {
	case KindBookingCreated, KindRequestResolved:
		return nil
	default:
		return fmt.Errorf("unknown notification kind %q", m.Kind)
	}
}

// Publisher is the broker side of the relay.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// Relay hands notifications to the broker; delivery happens in the consumer.
type Relay struct {
	publisher Publisher
}

func NewRelay(publisher Publisher) *Relay {
	return &Relay{publisher: publisher}
}

func (r *Relay) Notify(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	if msg.OccurredAt.IsZero() {
		msg.OccurredAt = time.Now().UTC()
	}
	return r.publisher.Publish(ctx, msg.RoutingKey(), msg)
}
