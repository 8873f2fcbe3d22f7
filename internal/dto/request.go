package dto

import (
	"fmt"

	"github.com/Eursukkul/travel-booking/internal/models"
	"github.com/Eursukkul/travel-booking/internal/service"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type FlightDetailRequest struct {
	Carrier       string          `json:"carrier"`
	FlightNumber  string          `json:"flightNumber" validate:"required"`
	DepartureTime string          `json:"departureTime"`
	ArrivalTime   string          `json:"arrivalTime"`
	Price         decimal.Decimal `json:"price"`
}

type PassengerRequest struct {
	Name           string `json:"name" validate:"required"`
	DateOfBirth    string `json:"dateOfBirth" validate:"omitempty,calendar_date"`
	Nationality    string `json:"nationality"`
	PassportNumber string `json:"passportNumber" validate:"required,passport"`
}

type CreateFlightBookingRequest struct {
	TripType         string               `json:"tripType" validate:"required,trip_type"`
	Origin           string               `json:"origin" validate:"required"`
	Destination      string               `json:"destination" validate:"required"`
	DepartureDate    string               `json:"departureDate" validate:"required,calendar_date"`
	DepartureTime    string               `json:"departureTime"`
	ReturnDate       string               `json:"returnDate" validate:"omitempty,calendar_date"`
	ReturnTime       string               `json:"returnTime"`
	Passengers       int                  `json:"passengers" validate:"required,min=1"`
	CabinClass       string               `json:"cabinClass"`
	OutboundFlight   FlightDetailRequest  `json:"outboundFlight"`
	ReturnFlight     *FlightDetailRequest `json:"returnFlight"`
	PassengerDetails []PassengerRequest   `json:"passengerDetails" validate:"dive"`
	ContactEmail     string               `json:"contactEmail" validate:"required,email"`
	ContactPhone     string               `json:"contactPhone"`
	OutboundSeats    []string             `json:"outboundSeats"`
	ReturnSeats      []string             `json:"returnSeats"`
	TotalPrice       decimal.Decimal      `json:"totalPrice"`
}

func (r CreateFlightBookingRequest) ToModel() *models.FlightBooking {
	b := &models.FlightBooking{
		TripType:       models.TripType(r.TripType),
		Origin:         r.Origin,
		Destination:    r.Destination,
		DepartureDate:  r.DepartureDate,
		DepartureTime:  r.DepartureTime,
		ReturnDate:     r.ReturnDate,
		ReturnTime:     r.ReturnTime,
		PassengerCount: r.Passengers,
		CabinClass:     r.CabinClass,
		OutboundFlight: datatypes.NewJSONType(r.OutboundFlight.toModel()),
		ReturnFlight:   datatypes.NewJSONType[*models.FlightDetail](nil),
		Passengers:     toPassengers(r.PassengerDetails),
		ContactEmail:   r.ContactEmail,
		ContactPhone:   r.ContactPhone,
		OutboundSeats:  r.OutboundSeats,
		ReturnSeats:    r.ReturnSeats,
		TotalPrice:     r.TotalPrice,
	}
	if r.ReturnFlight != nil {
		d := r.ReturnFlight.toModel()
		b.ReturnFlight = datatypes.NewJSONType(&d)
	}
	return b
}

// UpdateFlightBookingRequest only applies the keys present in the body.
type UpdateFlightBookingRequest struct {
	TripType         *string              `json:"tripType" validate:"omitempty,trip_type"`
	Origin           *string              `json:"origin" validate:"omitempty,min=1"`
	Destination      *string              `json:"destination" validate:"omitempty,min=1"`
	DepartureDate    *string              `json:"departureDate"`
	DepartureTime    *string              `json:"departureTime"`
	ReturnDate       *string              `json:"returnDate"`
	ReturnTime       *string              `json:"returnTime"`
	Passengers       *int                 `json:"passengers" validate:"omitempty,min=1"`
	CabinClass       *string              `json:"cabinClass"`
	OutboundFlight   *FlightDetailRequest `json:"outboundFlight"`
	ReturnFlight     *FlightDetailRequest `json:"returnFlight"`
	PassengerDetails []PassengerRequest   `json:"passengerDetails" validate:"omitempty,dive"`
	ContactEmail     *string              `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone     *string              `json:"contactPhone"`
	OutboundSeats    []string             `json:"outboundSeats"`
	ReturnSeats      []string             `json:"returnSeats"`
	TotalPrice       *decimal.Decimal     `json:"totalPrice"`
}

func (r UpdateFlightBookingRequest) ToPatch() service.FlightBookingPatch {
	p := service.FlightBookingPatch{
		Origin:         r.Origin,
		Destination:    r.Destination,
		DepartureDate:  r.DepartureDate,
		DepartureTime:  r.DepartureTime,
		ReturnDate:     r.ReturnDate,
		ReturnTime:     r.ReturnTime,
		PassengerCount: r.Passengers,
		CabinClass:     r.CabinClass,
		ContactEmail:   r.ContactEmail,
		ContactPhone:   r.ContactPhone,
		OutboundSeats:  r.OutboundSeats,
		ReturnSeats:    r.ReturnSeats,
		TotalPrice:     r.TotalPrice,
	}
	if r.TripType != nil {
		t := models.TripType(*r.TripType)
		p.TripType = &t
	}
	if r.OutboundFlight != nil {
		d := r.OutboundFlight.toModel()
		p.OutboundFlight = &d
	}
	if r.ReturnFlight != nil {
		d := r.ReturnFlight.toModel()
		p.ReturnFlight = &d
	}
	if r.PassengerDetails != nil {
		p.Passengers = toPassengers(r.PassengerDetails)
	}
	return p
}

type VehicleRequest struct {
	ID       string          `json:"id" validate:"required"`
	Name     string          `json:"name"`
	Capacity int             `json:"capacity" validate:"omitempty,min=1"`
	Price    decimal.Decimal `json:"price"`
}

func (v VehicleRequest) toModel() models.Vehicle {
	return models.Vehicle{ID: v.ID, Name: v.Name, Capacity: v.Capacity, Price: v.Price}
}

type CreateAirTaxiBookingRequest struct {
	PickupLocation      string          `json:"pickupLocation" validate:"required"`
	DestinationLocation string          `json:"destinationLocation" validate:"required"`
	DateTime            string          `json:"dateTime" validate:"required,calendar_date"`
	Passengers          int             `json:"passengers" validate:"required,min=1,max=6"`
	Vehicle             VehicleRequest  `json:"vehicle"`
	ContactName         string          `json:"contactName" validate:"required"`
	ContactPhone        string          `json:"contactPhone"`
	ContactEmail        string          `json:"contactEmail" validate:"required,email"`
	SpecialRequests     string          `json:"specialRequests"`
	TotalAmount         decimal.Decimal `json:"totalAmount"`
	PaymentMethod       string          `json:"paymentMethod"`
}

func (r CreateAirTaxiBookingRequest) ToModel() (*models.AirTaxiBooking, error) {
	at, err := models.ParseCalendarDate(r.DateTime)
	if err != nil {
		return nil, fmt.Errorf("dateTime: %w", err)
	}
	return &models.AirTaxiBooking{
		PickupLocation:      r.PickupLocation,
		DestinationLocation: r.DestinationLocation,
		DateTime:            at,
		PassengerCount:      r.Passengers,
		Vehicle:             datatypes.NewJSONType(r.Vehicle.toModel()),
		ContactName:         r.ContactName,
		ContactPhone:        r.ContactPhone,
		ContactEmail:        r.ContactEmail,
		SpecialRequests:     r.SpecialRequests,
		TotalAmount:         r.TotalAmount,
		PaymentMethod:       r.PaymentMethod,
	}, nil
}

type UpdateAirTaxiBookingRequest struct {
	PickupLocation      *string          `json:"pickupLocation" validate:"omitempty,min=1"`
	DestinationLocation *string          `json:"destinationLocation" validate:"omitempty,min=1"`
	DateTime            *string          `json:"dateTime"`
	Passengers          *int             `json:"passengers" validate:"omitempty,min=1,max=6"`
	Vehicle             *VehicleRequest  `json:"vehicle"`
	ContactName         *string          `json:"contactName" validate:"omitempty,min=1"`
	ContactPhone        *string          `json:"contactPhone"`
	ContactEmail        *string          `json:"contactEmail" validate:"omitempty,email"`
	SpecialRequests     *string          `json:"specialRequests"`
	TotalAmount         *decimal.Decimal `json:"totalAmount"`
	PaymentMethod       *string          `json:"paymentMethod"`
}

func (r UpdateAirTaxiBookingRequest) ToPatch() service.AirTaxiBookingPatch {
	p := service.AirTaxiBookingPatch{
		PickupLocation:      r.PickupLocation,
		DestinationLocation: r.DestinationLocation,
		DateTime:            r.DateTime,
		PassengerCount:      r.Passengers,
		ContactName:         r.ContactName,
		ContactPhone:        r.ContactPhone,
		ContactEmail:        r.ContactEmail,
		SpecialRequests:     r.SpecialRequests,
		TotalAmount:         r.TotalAmount,
		PaymentMethod:       r.PaymentMethod,
	}
	if r.Vehicle != nil {
		v := r.Vehicle.toModel()
		p.Vehicle = &v
	}
	return p
}

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

type CreateRequestRequest struct {
	UserID      string `json:"userId" validate:"required"`
	UserEmail   string `json:"userEmail" validate:"required,email"`
	UserName    string `json:"userName"`
	BookingID   string `json:"bookingId" validate:"required"`
	BookingType string `json:"bookingType" validate:"required,booking_type"`
	RequestType string `json:"requestType" validate:"required,request_type"`
	Reason      string `json:"reason" validate:"required"`
	Details     string `json:"details" validate:"required"`
}

func (r CreateRequestRequest) ToModel() *models.Request {
	return &models.Request{
		UserID:      r.UserID,
		UserEmail:   r.UserEmail,
		UserName:    r.UserName,
		BookingID:   r.BookingID,
		BookingType: models.BookingType(r.BookingType),
		RequestType: models.RequestType(r.RequestType),
		Reason:      r.Reason,
		Details:     r.Details,
	}
}

// ResolveRequestRequest carries the admin decision; the service checks it.
type ResolveRequestRequest struct {
	Status     string `json:"status"`
	AdminNotes string `json:"adminNotes"`
	AdminID    string `json:"adminId"`
}

func (d FlightDetailRequest) toModel() models.FlightDetail {
	return models.FlightDetail{
		Carrier:       d.Carrier,
		FlightNumber:  d.FlightNumber,
		DepartureTime: d.DepartureTime,
		ArrivalTime:   d.ArrivalTime,
		Price:         d.Price,
	}
}

func toPassengers(in []PassengerRequest) []models.Passenger {
	out := make([]models.Passenger, len(in))
	for i, p := range in {
		out[i] = models.Passenger{
			Name:           p.Name,
			DateOfBirth:    p.DateOfBirth,
			Nationality:    p.Nationality,
			PassportNumber: p.PassportNumber,
		}
	}
	return out
}
