package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCancel_DefaultReason(t *testing.T) {
	b := &FlightBooking{Lifecycle: Lifecycle{Status: StatusConfirmed}}
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	err := b.Cancel("", at)

	assert.NoError(t, err)
	assert.Equal(t, StatusCancelled, b.CurrentStatus())
	assert.Equal(t, DefaultCancellationReason, b.CancellationReason)
	assert.Equal(t, at, *b.CancelledAt)
}

func TestCancel_AlreadyCancelledKeepsTimestamps(t *testing.T) {
	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	b := &AirTaxiBooking{}
	assert.NoError(t, b.Cancel("weather", first))

	err := b.Cancel("again", first.Add(time.Hour))

	assert.ErrorIs(t, err, ErrBookingCancelled)
	assert.Equal(t, "weather", b.CancellationReason)
	assert.Equal(t, first, *b.CancelledAt)
}

func TestMarkPendingModification(t *testing.T) {
	at := time.Now()
	b := &FlightBooking{Lifecycle: Lifecycle{Status: StatusModified}}

	assert.NoError(t, b.MarkPendingModification(at))
	assert.Equal(t, StatusPendingModification, b.Status)
	assert.NotNil(t, b.ModificationRequestedAt)

	b.Status = StatusCancelled
	assert.ErrorIs(t, b.MarkPendingModification(at), ErrBookingCancelled)
}

func TestBookingVariantsSatisfyBooking(t *testing.T) {
	var variants = []Booking{&FlightBooking{ID: "f"}, &AirTaxiBooking{ID: "a"}}

	assert.Equal(t, BookingTypeFlight, variants[0].Type())
	assert.Equal(t, BookingTypeAirTaxi, variants[1].Type())
	assert.Equal(t, "a", variants[1].BookingID())
}

func TestTypeValidation(t *testing.T) {
	assert.True(t, BookingTypeAirTaxi.Valid())
	assert.False(t, BookingType("bus").Valid())
	assert.True(t, RequestCancellation.Valid())
	assert.False(t, RequestType("refund").Valid())
}

func TestParseCalendarDate(t *testing.T) {
	for _, in := range []string{"2026-01-15", "2026-01-15T09:30:00Z", "2026-01-15T09:30", " 2026-01-15 "} {
		got, err := ParseCalendarDate(in)
		if assert.NoError(t, err, in) {
			assert.Equal(t, time.January, got.Month(), in)
			assert.Equal(t, 15, got.Day(), in)
		}
	}

	for _, in := range []string{"", "2026-02-30", "15/01/2026", "tomorrow"} {
		_, err := ParseCalendarDate(in)
		assert.Error(t, err, in)
	}
}
