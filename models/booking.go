package models

import "time"

// Booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Customer is the durable customer entity, keyed by unique email.
type Customer struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone" json:"phone"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Booking represents a persisted booking record. Customer contact fields are
// denormalized into the document so listings need no join.
type Booking struct {
	ID          string    `bson:"id" json:"id"`
	CustomerID  string    `bson:"customer_id" json:"customer_id"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	Phone       string    `bson:"phone" json:"phone"`
	ServiceType string    `bson:"service_type" json:"service_type"`
	Date        string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time        string    `bson:"time" json:"time"` // "HH:MM", 24-hour
	Price       string    `bson:"price" json:"price"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// BookingStats aggregates booking counts for the admin dashboard.
type BookingStats struct {
	Total     int64            `json:"total"`
	ByStatus  map[string]int64 `json:"by_status"`
	ByService map[string]int64 `json:"by_service"`
}
