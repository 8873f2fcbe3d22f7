package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Eursukkul/travel-booking/internal/metrics"
	"github.com/Eursukkul/travel-booking/internal/models"
	"github.com/Eursukkul/travel-booking/internal/notification"
	"github.com/Eursukkul/travel-booking/internal/repository"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// FlightBookingPatch holds the fields of a flight booking update. Nil fields
// are left untouched.
type FlightBookingPatch struct {
	TripType       *models.TripType
	Origin         *string
	Destination    *string
	DepartureDate  *string
	DepartureTime  *string
	ReturnDate     *string
	ReturnTime     *string
	PassengerCount *int
	CabinClass     *string
	OutboundFlight *models.FlightDetail
	ReturnFlight   *models.FlightDetail
	Passengers     []models.Passenger
	ContactEmail   *string
	ContactPhone   *string
	OutboundSeats  []string
	ReturnSeats    []string
	TotalPrice     *decimal.Decimal
}

type FlightBookingService interface {
	Create(ctx context.Context, draft *models.FlightBooking) (*models.FlightBooking, error)
	Get(ctx context.Context, id string) (*models.FlightBooking, error)
	ListAll(ctx context.Context) ([]models.FlightBooking, error)
	ListByContactEmail(ctx context.Context, email string) ([]models.FlightBooking, error)
	Update(ctx context.Context, id string, patch FlightBookingPatch) (*models.FlightBooking, error)
	Cancel(ctx context.Context, id, reason string) (*models.FlightBooking, error)
	MarkPendingModification(ctx context.Context, id string) (*models.FlightBooking, error)
	Delete(ctx context.Context, id string) error
}

type flightBookingService struct {
	repo     repository.FlightBookingRepository
	notifier Notifier
	now      func() time.Time
}

func NewFlightBookingService(repo repository.FlightBookingRepository, notifier Notifier) FlightBookingService {
	return &flightBookingService{repo: repo, notifier: notifier, now: utcNow}
}

func (s *flightBookingService) Create(ctx context.Context, draft *models.FlightBooking) (*models.FlightBooking, error) {
	if err := validateFlight(draft); err != nil {
		return nil, err
	}

	draft.ID = ""
	draft.Lifecycle = models.Lifecycle{Status: models.StatusConfirmed}
	if err := s.repo.Create(ctx, draft); err != nil {
		return nil, fmt.Errorf("%w: create flight booking: %v", ErrInternal, err)
	}
	metrics.TrackBookingCreated(string(models.BookingTypeFlight))

	notify(ctx, s.notifier, notification.Message{
		Kind:        notification.KindBookingCreated,
		To:          draft.ContactEmail,
		Name:        leadPassenger(draft),
		BookingID:   draft.ID,
		BookingType: string(models.BookingTypeFlight),
		Summary:     flightSummary(draft),
		OccurredAt:  draft.CreatedAt,
	})

	return draft, nil
}

func (s *flightBookingService) Get(ctx context.Context, id string) (*models.FlightBooking, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("flight booking "+id, err)
	}
	return b, nil
}

func (s *flightBookingService) ListAll(ctx context.Context) ([]models.FlightBooking, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, storeErr("flight bookings", err)
	}
	return bookings, nil
}

// ListByContactEmail returns an empty slice, not an error, when nothing matches.
func (s *flightBookingService) ListByContactEmail(ctx context.Context, email string) ([]models.FlightBooking, error) {
	if email == "" {
		return nil, validationErr("email is required")
	}
	bookings, err := s.repo.FindByContactEmail(ctx, email)
	if err != nil {
		return nil, storeErr("flight bookings", err)
	}
	return bookings, nil
}

func (s *flightBookingService) Update(ctx context.Context, id string, patch FlightBookingPatch) (*models.FlightBooking, error) {
	// 1. Load; cancelled bookings are frozen
	b, err := loadMutable[models.FlightBooking](ctx, s.repo, id)
	if err != nil {
		return nil, err
	}

	// 2. Apply fields, then re-derive what depends on them
	applyFlightPatch(b, patch)

	// 3. The result must still be a valid booking
	if err := validateFlight(b); err != nil {
		return nil, err
	}

	b.MarkModified(s.now())
	if err := s.repo.Save(ctx, b); err != nil {
		return nil, storeErr("flight booking "+id, err)
	}
	return b, nil
}

func (s *flightBookingService) Cancel(ctx context.Context, id, reason string) (*models.FlightBooking, error) {
	return cancelBooking[models.FlightBooking](ctx, s.repo, id, reason, s.now())
}

func (s *flightBookingService) MarkPendingModification(ctx context.Context, id string) (*models.FlightBooking, error) {
	return markPendingModification[models.FlightBooking](ctx, s.repo, id, s.now())
}

func (s *flightBookingService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeErr("flight booking "+id, err)
	}
	return nil
}

func applyFlightPatch(b *models.FlightBooking, p FlightBookingPatch) {
	setIf(&b.TripType, p.TripType)
	setIf(&b.Origin, p.Origin)
	setIf(&b.Destination, p.Destination)
	setIf(&b.DepartureDate, p.DepartureDate)
	setIf(&b.DepartureTime, p.DepartureTime)
	setIf(&b.ReturnDate, p.ReturnDate)
	setIf(&b.ReturnTime, p.ReturnTime)
	setIf(&b.CabinClass, p.CabinClass)
	setIf(&b.ContactEmail, p.ContactEmail)
	setIf(&b.ContactPhone, p.ContactPhone)
	setIf(&b.TotalPrice, p.TotalPrice)
	if p.OutboundFlight != nil {
		b.OutboundFlight = datatypes.NewJSONType(*p.OutboundFlight)
	}
	if p.ReturnFlight != nil {
		b.ReturnFlight = datatypes.NewJSONType(p.ReturnFlight)
	}
	if p.Passengers != nil {
		b.Passengers = p.Passengers
	}
	if p.OutboundSeats != nil {
		b.OutboundSeats = p.OutboundSeats
	}
	if p.ReturnSeats != nil {
		b.ReturnSeats = p.ReturnSeats
	}

	if p.PassengerCount != nil {
		n := *p.PassengerCount
		b.PassengerCount = n
		// Shrinking keeps the first n seats and travellers. Growing needs
		// new lists, which validation enforces.
		if n >= 0 {
			b.OutboundSeats = truncate(b.OutboundSeats, n)
			b.ReturnSeats = truncate(b.ReturnSeats, n)
			b.Passengers = truncate(b.Passengers, n)
		}
	}

	if b.TripType == models.TripOneWay {
		b.ReturnDate = ""
		b.ReturnTime = ""
		b.ReturnFlight = datatypes.NewJSONType[*models.FlightDetail](nil)
		b.ReturnSeats = datatypes.JSONSlice[string]{}
	}
}

func validateFlight(b *models.FlightBooking) error {
	switch b.TripType {
	case models.TripOneWay, models.TripRoundTrip:
	default:
		return validationErr("tripType must be OneWay or RoundTrip")
	}
	if b.Origin == "" || b.Destination == "" {
		return validationErr("origin and destination are required")
	}
	if b.ContactEmail == "" {
		return validationErr("contactEmail is required")
	}
	if b.PassengerCount < 1 {
		return validationErr("passengers must be at least 1")
	}

	departure, err := models.ParseCalendarDate(b.DepartureDate)
	if err != nil {
		return validationErr("departureDate: %v", err)
	}
	if b.OutboundFlight.Data().FlightNumber == "" {
		return validationErr("outboundFlight is required")
	}
	if len(b.OutboundSeats) != b.PassengerCount {
		return validationErr("outboundSeats has %d seats for %d passengers", len(b.OutboundSeats), b.PassengerCount)
	}

	if b.TripType == models.TripRoundTrip {
		if b.ReturnFlight.Data() == nil {
			return validationErr("returnFlight is required for a round trip")
		}
		returning, err := models.ParseCalendarDate(b.ReturnDate)
		if err != nil {
			return validationErr("returnDate: %v", err)
		}
		if returning.Before(departure) {
			return validationErr("returnDate is before departureDate")
		}
		if len(b.ReturnSeats) != b.PassengerCount {
			return validationErr("returnSeats has %d seats for %d passengers", len(b.ReturnSeats), b.PassengerCount)
		}
	} else if len(b.ReturnSeats) != 0 {
		return validationErr("returnSeats must be empty for a one-way trip")
	}

	if len(b.Passengers) != b.PassengerCount {
		return validationErr("passengerDetails has %d entries for %d passengers", len(b.Passengers), b.PassengerCount)
	}
	for i, p := range b.Passengers {
		if p.Name == "" {
			return validationErr("passenger %d: name is required", i+1)
		}
		if !models.ValidPassportNumber(p.PassportNumber) {
			return validationErr("passenger %d: passport number must be 6-9 letters or digits", i+1)
		}
	}

	if b.TotalPrice.IsNegative() {
		return validationErr("totalPrice must not be negative")
	}
	return nil
}

func leadPassenger(b *models.FlightBooking) string {
	if len(b.Passengers) == 0 {
		return ""
	}
	return b.Passengers[0].Name
}

func flightSummary(b *models.FlightBooking) string {
	s := fmt.Sprintf("%s to %s, departing %s", b.Origin, b.Destination, b.DepartureDate)
	if b.TripType == models.TripRoundTrip {
		s += ", returning " + b.ReturnDate
	}
	return fmt.Sprintf("%s (%d passenger(s), total %s)", s, b.PassengerCount, b.TotalPrice.StringFixed(2))
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func truncate[S ~[]E, E any](s S, n int) S {
	if len(s) > n {
		return s[:n]
	}
	return s
}
