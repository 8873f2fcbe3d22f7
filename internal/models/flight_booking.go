package models

import (
	"regexp"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TripType string

const (
	TripOneWay    TripType = "OneWay"
	TripRoundTrip TripType = "RoundTrip"
)

type FlightDetail struct {
	Carrier       string          `json:"carrier"`
	FlightNumber  string          `json:"flightNumber"`
	DepartureTime string          `json:"departureTime"`
	ArrivalTime   string          `json:"arrivalTime"`
	Price         decimal.Decimal `json:"price"`
}

var passportPattern = regexp.MustCompile(`^[A-Za-z0-9]{6,9}$`)

// ValidPassportNumber reports whether s is 6 to 9 letters or digits.
func ValidPassportNumber(s string) bool {
	return passportPattern.MatchString(s)
}

type Passenger struct {
	Name           string `json:"name"`
	DateOfBirth    string `json:"dateOfBirth"`
	Nationality    string `json:"nationality"`
	PassportNumber string `json:"passportNumber"`
}

type FlightBooking struct {
	ID             string                            `gorm:"type:varchar(36);primaryKey" json:"id"`
	TripType       TripType                          `gorm:"type:varchar(16);not null" json:"tripType"`
	Origin         string                            `gorm:"not null" json:"origin"`
	Destination    string                            `gorm:"not null" json:"destination"`
	DepartureDate  string                            `gorm:"type:varchar(32);not null" json:"departureDate"`
	DepartureTime  string                            `gorm:"type:varchar(16)" json:"departureTime"`
	ReturnDate     string                            `gorm:"type:varchar(32)" json:"returnDate,omitempty"`
	ReturnTime     string                            `gorm:"type:varchar(16)" json:"returnTime,omitempty"`
	PassengerCount int                               `gorm:"not null" json:"passengers"`
	CabinClass     string                            `gorm:"type:varchar(32)" json:"cabinClass"`
	OutboundFlight datatypes.JSONType[FlightDetail]  `json:"outboundFlight"`
	ReturnFlight   datatypes.JSONType[*FlightDetail] `json:"returnFlight"`
	Passengers     datatypes.JSONSlice[Passenger]    `json:"passengerDetails"`
	ContactEmail   string                            `gorm:"not null;index" json:"contactEmail"`
	ContactPhone   string                            `json:"contactPhone"`
	OutboundSeats  datatypes.JSONSlice[string]       `json:"outboundSeats"`
	ReturnSeats    datatypes.JSONSlice[string]       `json:"returnSeats"`
	TotalPrice     decimal.Decimal                   `gorm:"type:numeric(12,2);not null" json:"totalPrice"`
	Lifecycle
}

func (FlightBooking) TableName() string { return "flight_bookings" }

func (b *FlightBooking) BeforeCreate(tx *gorm.DB) error {
	newID(&b.ID)
	return nil
}

func (b *FlightBooking) BookingID() string { return b.ID }
func (b *FlightBooking) Type() BookingType { return BookingTypeFlight }
