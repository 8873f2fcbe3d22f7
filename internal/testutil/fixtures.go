package testutil

import (
	"time"

	"github.com/Eursukkul/travel-booking/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// RoundTripFlight returns a valid two-passenger round-trip draft.
func RoundTripFlight() *models.FlightBooking {
	return &models.FlightBooking{
		TripType:       models.TripRoundTrip,
		Origin:         "Bangkok",
		Destination:    "Tokyo",
		DepartureDate:  "2026-01-15",
		DepartureTime:  "09:30",
		ReturnDate:     "2026-01-22",
		ReturnTime:     "18:00",
		PassengerCount: 2,
		CabinClass:     "Economy",
		OutboundFlight: datatypes.NewJSONType(models.FlightDetail{
			Carrier: "TG", FlightNumber: "TG640", DepartureTime: "09:30", ArrivalTime: "17:45",
			Price: decimal.RequireFromString("420.00"),
		}),
		ReturnFlight: datatypes.NewJSONType(&models.FlightDetail{
			Carrier: "TG", FlightNumber: "TG641", DepartureTime: "18:00", ArrivalTime: "22:30",
			Price: decimal.RequireFromString("410.00"),
		}),
		Passengers: datatypes.JSONSlice[models.Passenger]{
			{Name: "Somchai Jaidee", DateOfBirth: "1988-04-02", Nationality: "TH", PassportNumber: "AA123456"},
			{Name: "Malee Jaidee", DateOfBirth: "1990-11-20", Nationality: "TH", PassportNumber: "AA654321"},
		},
		ContactEmail:  "Somchai@Example.com",
		ContactPhone:  "+66810000000",
		OutboundSeats: datatypes.JSONSlice[string]{"12A", "12B"},
		ReturnSeats:   datatypes.JSONSlice[string]{"30C", "30D"},
		TotalPrice:    decimal.RequireFromString("1660.00"),
	}
}

// OneWayFlight returns a valid single-passenger one-way draft.
func OneWayFlight() *models.FlightBooking {
	b := RoundTripFlight()
	b.TripType = models.TripOneWay
	b.ReturnDate = ""
	b.ReturnTime = ""
	b.ReturnFlight = datatypes.NewJSONType[*models.FlightDetail](nil)
	b.ReturnSeats = nil
	b.PassengerCount = 1
	b.Passengers = b.Passengers[:1]
	b.OutboundSeats = b.OutboundSeats[:1]
	b.TotalPrice = decimal.RequireFromString("420.00")
	return b
}

// AirTaxi returns a valid three-passenger air-taxi draft.
func AirTaxi() *models.AirTaxiBooking {
	return &models.AirTaxiBooking{
		PickupLocation:      "Suvarnabhumi Airport",
		DestinationLocation: "Hua Hin",
		DateTime:            time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC),
		PassengerCount:      3,
		Vehicle: datatypes.NewJSONType(models.Vehicle{
			ID: "vtol-4", Name: "CityHopper 4", Capacity: 4, Price: decimal.RequireFromString("950.00"),
		}),
		ContactName:     "Niran Chai",
		ContactPhone:    "+66820000000",
		ContactEmail:    "niran@example.com",
		SpecialRequests: "Extra luggage",
		TotalAmount:     decimal.RequireFromString("950.00"),
		PaymentMethod:   "card",
	}
}
