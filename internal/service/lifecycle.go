package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Eursukkul/travel-booking/internal/models"
)

type bookingStore[T any] interface {
	FindByID(ctx context.Context, id string) (*T, error)
	Save(ctx context.Context, booking *T) error
}

// bookingPtr lets the helpers below call the Booking capability on *T.
type bookingPtr[T any] interface {
	*T
	models.Booking
}

func cancelBooking[T any, P bookingPtr[T]](ctx context.Context, store bookingStore[T], id, reason string, at time.Time) (*T, error) {
	b, err := store.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("booking "+id, err)
	}

	if err := P(b).Cancel(reason, at); err != nil {
		if errors.Is(err, models.ErrBookingCancelled) {
			return nil, ErrAlreadyCancelled
		}
		return nil, err
	}

	if err := store.Save(ctx, b); err != nil {
		return nil, storeErr("booking "+id, err)
	}
	return b, nil
}

func markPendingModification[T any, P bookingPtr[T]](ctx context.Context, store bookingStore[T], id string, at time.Time) (*T, error) {
	b, err := store.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("booking "+id, err)
	}

	if err := P(b).MarkPendingModification(at); err != nil {
		if errors.Is(err, models.ErrBookingCancelled) {
			return nil, fmt.Errorf("%w: booking %s is cancelled", ErrInvalidState, id)
		}
		return nil, err
	}

	if err := store.Save(ctx, b); err != nil {
		return nil, storeErr("booking "+id, err)
	}
	return b, nil
}

// loadMutable returns the booking for an in-place edit; cancelled bookings refuse.
func loadMutable[T any, P bookingPtr[T]](ctx context.Context, store bookingStore[T], id string) (*T, error) {
	b, err := store.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("booking "+id, err)
	}
	if P(b).CurrentStatus() == models.StatusCancelled {
		return nil, fmt.Errorf("%w: booking %s is cancelled", ErrInvalidState, id)
	}
	return b, nil
}
