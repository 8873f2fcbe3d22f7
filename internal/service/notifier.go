package service

import (
	"context"
	"log"
	"time"

	"github.com/Eursukkul/travel-booking/internal/metrics"
	"github.com/Eursukkul/travel-booking/internal/notification"
)

// Notifier relays outcome emails. A nil Notifier disables notifications.
type Notifier interface {
	Notify(ctx context.Context, msg notification.Message) error
}

// notify never fails the caller: the triggering write is already durable.
func notify(ctx context.Context, n Notifier, msg notification.Message) {
	if n == nil {
		return
	}
	if err := n.Notify(ctx, msg); err != nil {
		log.Printf("[Notifier] failed to relay %s for booking %s: %v", msg.Kind, msg.BookingID, err)
		metrics.TrackNotificationFailure("publish")
	}
}

func utcNow() time.Time { return time.Now().UTC() }
