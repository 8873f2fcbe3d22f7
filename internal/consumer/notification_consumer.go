package consumer

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/Eursukkul/travel-booking/internal/metrics"
	"github.com/Eursukkul/travel-booking/internal/notification"
	amqp "github.com/rabbitmq/amqp091-go"
)

const sendTimeout = 30 * time.Second

type NotificationConsumer struct {
	mailer notification.Mailer
}

func NewNotificationConsumer(mailer notification.Mailer) *NotificationConsumer {
	return &NotificationConsumer{mailer: mailer}
}

// Start renders and mails every delivered notification until msgs is closed.
func (nc *NotificationConsumer) Start(msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			nc.handleMessage(msg)
		}
		log.Println("[NotificationConsumer] channel closed, stopping consumer")
	}()
}

func (nc *NotificationConsumer) handleMessage(msg amqp.Delivery) {
	var n notification.Message
	if err := json.Unmarshal(msg.Body, &n); err != nil {
		log.Printf("[NotificationConsumer] failed to unmarshal: %v", err)
		metrics.TrackNotificationFailure("decode")
		msg.Nack(false, false)
		return
	}

	subject, body, err := notification.Render(n)
	if err != nil {
		log.Printf("[NotificationConsumer] failed to render %s for booking %s: %v", n.Kind, n.BookingID, err)
		metrics.TrackNotificationFailure("render")
		msg.Nack(false, false)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	if err := nc.mailer.Send(ctx, n.To, subject, body); err != nil {
		log.Printf("[NotificationConsumer] failed to send %s to %s: %v", n.Kind, n.To, err)
		metrics.TrackNotificationFailure("deliver")
		msg.Nack(false, false)
		return
	}

	log.Printf("[NotificationConsumer] sent %s for booking %s to %s", n.Kind, n.BookingID, n.To)
	msg.Ack(false)
}
