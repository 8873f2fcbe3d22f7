package repository

import (
	"context"

	"github.com/Eursukkul/travel-booking/internal/models"
	"gorm.io/gorm"
)

type FlightBookingRepository interface {
	Create(ctx context.Context, booking *models.FlightBooking) error
	FindByID(ctx context.Context, id string) (*models.FlightBooking, error)
	FindAll(ctx context.Context) ([]models.FlightBooking, error)
	FindByContactEmail(ctx context.Context, email string) ([]models.FlightBooking, error)
	Save(ctx context.Context, booking *models.FlightBooking) error
	Delete(ctx context.Context, id string) error
}

type AirTaxiBookingRepository interface {
	Create(ctx context.Context, booking *models.AirTaxiBooking) error
	FindByID(ctx context.Context, id string) (*models.AirTaxiBooking, error)
	FindAll(ctx context.Context) ([]models.AirTaxiBooking, error)
	FindByContactEmail(ctx context.Context, email string) ([]models.AirTaxiBooking, error)
	Save(ctx context.Context, booking *models.AirTaxiBooking) error
	Delete(ctx context.Context, id string) error
}

// bookingRepository backs both booking tables; T selects the table.
type bookingRepository[T any] struct {
	db *gorm.DB
}

func NewFlightBookingRepository(db *gorm.DB) FlightBookingRepository {
	return &bookingRepository[models.FlightBooking]{db: db}
}

func NewAirTaxiBookingRepository(db *gorm.DB) AirTaxiBookingRepository {
	return &bookingRepository[models.AirTaxiBooking]{db: db}
}

func (r *bookingRepository[T]) Create(ctx context.Context, booking *T) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	var booking T
	if err := r.db.WithContext(ctx).First(&booking, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	var bookings []T
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindByContactEmail matches the contact address case-insensitively.
func (r *bookingRepository[T]) FindByContactEmail(ctx context.Context, email string) ([]T, error) {
	var bookings []T
	err := r.db.WithContext(ctx).
		Where("LOWER(contact_email) = LOWER(?)", email).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository[T]) Save(ctx context.Context, booking *T) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

func (r *bookingRepository[T]) Delete(ctx context.Context, id string) error {
	var booking T
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&booking)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
