package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MaxAirTaxiPassengers is the cabin limit of the largest air-taxi model.
const MaxAirTaxiPassengers = 6

type Vehicle struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Capacity int             `json:"capacity"`
	Price    decimal.Decimal `json:"price"`
}

type AirTaxiBooking struct {
	ID                  string                      `gorm:"type:varchar(36);primaryKey" json:"id"`
	PickupLocation      string                      `gorm:"not null" json:"pickupLocation"`
	DestinationLocation string                      `gorm:"not null" json:"destinationLocation"`
	DateTime            time.Time                   `gorm:"not null" json:"dateTime"`
	PassengerCount      int                         `gorm:"not null" json:"passengers"`
	Vehicle             datatypes.JSONType[Vehicle] `json:"vehicle"`
	ContactName         string                      `gorm:"not null" json:"contactName"`
	ContactPhone        string                      `json:"contactPhone"`
	ContactEmail        string                      `gorm:"not null;index" json:"contactEmail"`
	SpecialRequests     string                      `gorm:"type:text" json:"specialRequests,omitempty"`
	TotalAmount         decimal.Decimal             `gorm:"type:numeric(12,2);not null" json:"totalAmount"`
	PaymentMethod       string                      `gorm:"type:varchar(32)" json:"paymentMethod"`
	Lifecycle
}

func (AirTaxiBooking) TableName() string { return "air_taxi_bookings" }

func (b *AirTaxiBooking) BeforeCreate(tx *gorm.DB) error {
	newID(&b.ID)
	return nil
}

func (b *AirTaxiBooking) BookingID() string { return b.ID }
func (b *AirTaxiBooking) Type() BookingType { return BookingTypeAirTaxi }
