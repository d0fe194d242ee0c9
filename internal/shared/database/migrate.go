package database

import (
	"groomglow/internal/bookings"
	"groomglow/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&bookings.Booking{},
	)
}
