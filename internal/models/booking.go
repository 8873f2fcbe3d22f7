package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	StatusConfirmed           BookingStatus = "confirmed"
	StatusModified            BookingStatus = "modified"
	StatusPendingModification BookingStatus = "pending_modification"
	StatusCancelled           BookingStatus = "cancelled"
	StatusCompleted           BookingStatus = "completed"
)

type BookingType string

const (
	BookingTypeFlight  BookingType = "flight"
	BookingTypeAirTaxi BookingType = "airtaxi"
)

func (t BookingType) Valid() bool {
	return t == BookingTypeFlight || t == BookingTypeAirTaxi
}

// ErrBookingCancelled is returned when a cancelled booking is asked to change.
var ErrBookingCancelled = errors.New("booking is cancelled")

// Booking is what the request workflow needs from either booking variant.
type Booking interface {
	BookingID() string
	Type() BookingType
	CurrentStatus() BookingStatus
	Cancel(reason string, at time.Time) error
	MarkPendingModification(at time.Time) error
}

const DefaultCancellationReason = "No reason provided"

// Lifecycle holds the lifecycle fields shared by both variants.
type Lifecycle struct {
	Status                  BookingStatus `gorm:"type:varchar(32);not null;default:'confirmed';index" json:"status"`
	CreatedAt               time.Time     `json:"createdAt"`
	UpdatedAt               time.Time     `json:"updatedAt"`
	ModifiedAt              *time.Time    `json:"modifiedAt,omitempty"`
	ModificationRequestedAt *time.Time    `json:"modificationRequestedAt,omitempty"`
	CancellationReason      string        `gorm:"type:text" json:"cancellationReason,omitempty"`
	CancelledAt             *time.Time    `json:"cancelledAt,omitempty"`
}

func (s *Lifecycle) CurrentStatus() BookingStatus { return s.Status }

func (s *Lifecycle) Cancel(reason string, at time.Time) error {
	if s.Status == StatusCancelled {
		return ErrBookingCancelled
	}
	if reason == "" {
		reason = DefaultCancellationReason
	}
	s.Status = StatusCancelled
	s.CancellationReason = reason
	s.CancelledAt = &at
	return nil
}

func (s *Lifecycle) MarkPendingModification(at time.Time) error {
	if s.Status == StatusCancelled {
		return ErrBookingCancelled
	}
	s.Status = StatusPendingModification
	s.ModificationRequestedAt = &at
	return nil
}

func (s *Lifecycle) MarkModified(at time.Time) {
	s.Status = StatusModified
	s.ModifiedAt = &at
}

func newID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}
