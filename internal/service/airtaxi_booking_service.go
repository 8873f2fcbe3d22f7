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

// AirTaxiBookingPatch holds the fields of an air-taxi booking update. Nil
// fields are left untouched. DateTime is parsed during the update.
type AirTaxiBookingPatch struct {
	PickupLocation      *string
	DestinationLocation *string
	DateTime            *string
	PassengerCount      *int
	Vehicle             *models.Vehicle
	ContactName         *string
	ContactPhone        *string
	ContactEmail        *string
	SpecialRequests     *string
	TotalAmount         *decimal.Decimal
	PaymentMethod       *string
}

type AirTaxiBookingService interface {
	Create(ctx context.Context, draft *models.AirTaxiBooking) (*models.AirTaxiBooking, error)
	Get(ctx context.Context, id string) (*models.AirTaxiBooking, error)
	ListAll(ctx context.Context) ([]models.AirTaxiBooking, error)
	ListByContactEmail(ctx context.Context, email string) ([]models.AirTaxiBooking, error)
	Update(ctx context.Context, id string, patch AirTaxiBookingPatch) (*models.AirTaxiBooking, error)
	Cancel(ctx context.Context, id, reason string) (*models.AirTaxiBooking, error)
	MarkPendingModification(ctx context.Context, id string) (*models.AirTaxiBooking, error)
	Delete(ctx context.Context, id string) error
}

type airTaxiBookingService struct {
	repo     repository.AirTaxiBookingRepository
	notifier Notifier
	now      func() time.Time
}

func NewAirTaxiBookingService(repo repository.AirTaxiBookingRepository, notifier Notifier) AirTaxiBookingService {
	return &airTaxiBookingService{repo: repo, notifier: notifier, now: utcNow}
}

func (s *airTaxiBookingService) Create(ctx context.Context, draft *models.AirTaxiBooking) (*models.AirTaxiBooking, error) {
	if err := validateAirTaxi(draft); err != nil {
		return nil, err
	}

	draft.ID = ""
	draft.Lifecycle = models.Lifecycle{Status: models.StatusConfirmed}
	if err := s.repo.Create(ctx, draft); err != nil {
		return nil, fmt.Errorf("%w: create air-taxi booking: %v", ErrInternal, err)
	}
	metrics.TrackBookingCreated(string(models.BookingTypeAirTaxi))

	notify(ctx, s.notifier, notification.Message{
		Kind:        notification.KindBookingCreated,
		To:          draft.ContactEmail,
		Name:        draft.ContactName,
		BookingID:   draft.ID,
		BookingType: string(models.BookingTypeAirTaxi),
		Summary:     airTaxiSummary(draft),
		OccurredAt:  draft.CreatedAt,
	})

	return draft, nil
}

func (s *airTaxiBookingService) Get(ctx context.Context, id string) (*models.AirTaxiBooking, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("air-taxi booking "+id, err)
	}
	return b, nil
}

func (s *airTaxiBookingService) ListAll(ctx context.Context) ([]models.AirTaxiBooking, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, storeErr("air-taxi bookings", err)
	}
	return bookings, nil
}

func (s *airTaxiBookingService) ListByContactEmail(ctx context.Context, email string) ([]models.AirTaxiBooking, error) {
	if email == "" {
		return nil, validationErr("email is required")
	}
	bookings, err := s.repo.FindByContactEmail(ctx, email)
	if err != nil {
		return nil, storeErr("air-taxi bookings", err)
	}
	return bookings, nil
}

func (s *airTaxiBookingService) Update(ctx context.Context, id string, patch AirTaxiBookingPatch) (*models.AirTaxiBooking, error) {
	b, err := loadMutable[models.AirTaxiBooking](ctx, s.repo, id)
	if err != nil {
		return nil, err
	}

	if patch.DateTime != nil {
		at, err := models.ParseCalendarDate(*patch.DateTime)
		if err != nil {
			return nil, validationErr("dateTime: %v", err)
		}
		b.DateTime = at
	}
	setIf(&b.PickupLocation, patch.PickupLocation)
	setIf(&b.DestinationLocation, patch.DestinationLocation)
	setIf(&b.PassengerCount, patch.PassengerCount)
	setIf(&b.ContactName, patch.ContactName)
	setIf(&b.ContactPhone, patch.ContactPhone)
	setIf(&b.ContactEmail, patch.ContactEmail)
	setIf(&b.SpecialRequests, patch.SpecialRequests)
	setIf(&b.TotalAmount, patch.TotalAmount)
	setIf(&b.PaymentMethod, patch.PaymentMethod)
	if patch.Vehicle != nil {
		b.Vehicle = datatypes.NewJSONType(*patch.Vehicle)
	}

	if err := validateAirTaxi(b); err != nil {
		return nil, err
	}

	b.MarkModified(s.now())
	if err := s.repo.Save(ctx, b); err != nil {
		return nil, storeErr("air-taxi booking "+id, err)
	}
	return b, nil
}

func (s *airTaxiBookingService) Cancel(ctx context.Context, id, reason string) (*models.AirTaxiBooking, error) {
	return cancelBooking[models.AirTaxiBooking](ctx, s.repo, id, reason, s.now())
}

func (s *airTaxiBookingService) MarkPendingModification(ctx context.Context, id string) (*models.AirTaxiBooking, error) {
	return markPendingModification[models.AirTaxiBooking](ctx, s.repo, id, s.now())
}

func (s *airTaxiBookingService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeErr("air-taxi booking "+id, err)
	}
	return nil
}

func validateAirTaxi(b *models.AirTaxiBooking) error {
	if b.PickupLocation == "" || b.DestinationLocation == "" {
		return validationErr("pickupLocation and destinationLocation are required")
	}
	if b.DateTime.IsZero() {
		return validationErr("dateTime is required")
	}
	if b.ContactName == "" || b.ContactEmail == "" {
		return validationErr("contactName and contactEmail are required")
	}
	if b.PassengerCount < 1 || b.PassengerCount > models.MaxAirTaxiPassengers {
		return validationErr("passengers must be between 1 and %d", models.MaxAirTaxiPassengers)
	}

	vehicle := b.Vehicle.Data()
	if vehicle.ID == "" {
		return validationErr("vehicle is required")
	}
	if vehicle.Capacity > 0 && b.PassengerCount > vehicle.Capacity {
		return validationErr("%s seats %d passengers, got %d", vehicle.Name, vehicle.Capacity, b.PassengerCount)
	}

	if b.TotalAmount.IsNegative() {
		return validationErr("totalAmount must not be negative")
	}
	return nil
}

func airTaxiSummary(b *models.AirTaxiBooking) string {
	return fmt.Sprintf("%s to %s on %s with %s (%d passenger(s), total %s)",
		b.PickupLocation, b.DestinationLocation, b.DateTime.Format("2006-01-02 15:04"),
		b.Vehicle.Data().Name, b.PassengerCount, b.TotalAmount.StringFixed(2))
}
