package dto

import (
	"testing"
	"time"

	"github.com/Eursukkul/travel-booking/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFlightBookingRequest_ToModel(t *testing.T) {
	req := CreateFlightBookingRequest{
		TripType:       "RoundTrip",
		Origin:         "Bangkok",
		Destination:    "Tokyo",
		DepartureDate:  "2026-01-15",
		ReturnDate:     "2026-01-22",
		Passengers:     1,
		OutboundFlight: FlightDetailRequest{Carrier: "TG", FlightNumber: "TG640", Price: decimal.NewFromInt(420)},
		ReturnFlight:   &FlightDetailRequest{Carrier: "TG", FlightNumber: "TG641", Price: decimal.NewFromInt(410)},
		PassengerDetails: []PassengerRequest{
			{Name: "Somchai Jaidee", PassportNumber: "AA123456"},
		},
		ContactEmail:  "somchai@example.com",
		OutboundSeats: []string{"12A"},
		ReturnSeats:   []string{"30C"},
		TotalPrice:    decimal.NewFromInt(830),
	}

	b := req.ToModel()

	assert.Equal(t, models.TripRoundTrip, b.TripType)
	assert.Equal(t, 1, b.PassengerCount)
	assert.Equal(t, "TG640", b.OutboundFlight.Data().FlightNumber)
	require.NotNil(t, b.ReturnFlight.Data())
	assert.Equal(t, "TG641", b.ReturnFlight.Data().FlightNumber)
	require.Len(t, b.Passengers, 1)
	assert.Equal(t, "AA123456", b.Passengers[0].PassportNumber)
	assert.True(t, b.TotalPrice.Equal(decimal.NewFromInt(830)))
}

func TestCreateFlightBookingRequest_ToModel_OneWay(t *testing.T) {
	b := CreateFlightBookingRequest{TripType: "OneWay", Passengers: 1}.ToModel()

	assert.Nil(t, b.ReturnFlight.Data())
	assert.Empty(t, b.Passengers)
}

func TestUpdateFlightBookingRequest_ToPatch(t *testing.T) {
	trip := "OneWay"
	n := 2
	p := UpdateFlightBookingRequest{TripType: &trip, Passengers: &n}.ToPatch()

	require.NotNil(t, p.TripType)
	assert.Equal(t, models.TripOneWay, *p.TripType)
	assert.Equal(t, &n, p.PassengerCount)
	assert.Nil(t, p.Passengers, "absent list stays untouched")
	assert.Nil(t, p.OutboundFlight)
	assert.Nil(t, p.Origin)
}

func TestCreateAirTaxiBookingRequest_ToModel(t *testing.T) {
	req := CreateAirTaxiBookingRequest{
		PickupLocation:      "Suvarnabhumi Airport",
		DestinationLocation: "Hua Hin",
		DateTime:            "2026-03-10T08:00",
		Passengers:          2,
		Vehicle:             VehicleRequest{ID: "vtol-4", Capacity: 4},
		ContactName:         "Niran Chai",
		ContactEmail:        "niran@example.com",
	}

	b, err := req.ToModel()

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC), b.DateTime)
	assert.Equal(t, "vtol-4", b.Vehicle.Data().ID)

	req.DateTime = "soon"
	_, err = req.ToModel()
	assert.Error(t, err)
}

func TestCreateRequestRequest_ToModel(t *testing.T) {
	r := CreateRequestRequest{
		UserID:      "user-1",
		BookingID:   "fb-1",
		BookingType: "airtaxi",
		RequestType: "modification",
	}.ToModel()

	assert.Equal(t, models.BookingTypeAirTaxi, r.BookingType)
	assert.Equal(t, models.RequestModification, r.RequestType)
	assert.Empty(t, r.Status)
}

func TestEnvelope(t *testing.T) {
	ok := OK("done", 1)
	assert.True(t, ok.Success)
	assert.Equal(t, 1, ok.Data)

	fail := Fail("Bad Request", "origin is required")
	assert.False(t, fail.Success)
	assert.Equal(t, "origin is required", fail.Error)

	empty := NotFoundList("nothing")
	assert.False(t, empty.Success)
	assert.Equal(t, []any{}, empty.Data)
}
