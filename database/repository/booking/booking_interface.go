package bookingRepo

import (
	"context"

	"bookassist/models"
)

// BookingRepository defines persistence operations for bookings and the
// customers they belong to.
type BookingRepository interface {
	// CreateBooking upserts the customer by email and inserts the booking
	// atomically.
	CreateBooking(ctx context.Context, record models.BookingRecord) (*models.Booking, error)

	GetByID(id string) (*models.Booking, error)
	GetAll() ([]models.Booking, error)
	GetByDate(date string) ([]models.Booking, error)
	GetByCustomerEmail(email string) ([]models.Booking, error)
	Search(query string) ([]models.Booking, error)
	UpdateStatus(id, status string) error
	Delete(id string) error
	Stats() (*models.BookingStats, error)

	GetCustomerByEmail(email string) (*models.Customer, error)
}
