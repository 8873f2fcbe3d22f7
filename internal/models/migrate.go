package models

import "gorm.io/gorm"

// AutoMigrate creates or updates the booking and request tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&FlightBooking{},
		&AirTaxiBooking{},
		&Request{},
	)
}
