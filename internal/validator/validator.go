package validator

import (
	"github.com/Eursukkul/travel-booking/internal/models"
	"github.com/go-playground/validator/v10"
)

// CustomValidator plugs go-playground/validator into echo's c.Validate.
type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	v := validator.New()
	v.RegisterValidation("passport", validatePassport)
	v.RegisterValidation("calendar_date", validateCalendarDate)
	v.RegisterValidation("booking_type", validateBookingType)
	v.RegisterValidation("request_type", validateRequestType)
	v.RegisterValidation("trip_type", validateTripType)

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func validatePassport(fl validator.FieldLevel) bool {
	return models.ValidPassportNumber(fl.Field().String())
}

func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := models.ParseCalendarDate(fl.Field().String())
	return err == nil
}

func validateBookingType(fl validator.FieldLevel) bool {
	return models.BookingType(fl.Field().String()).Valid()
}

func validateRequestType(fl validator.FieldLevel) bool {
	return models.RequestType(fl.Field().String()).Valid()
}

func validateTripType(fl validator.FieldLevel) bool {
	switch models.TripType(fl.Field().String()) {
	case models.TripOneWay, models.TripRoundTrip:
		return true
	}
	return false
}
