package handlers

import (
	bookingRepo "bookassist/database/repository/booking"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	BookingRepo bookingRepo.BookingRepository

	// Chat endpoints
	ChatHandler         gin.HandlerFunc
	ResetSessionHandler gin.HandlerFunc

	// Admin booking endpoints
	GetBookingsHandler         gin.HandlerFunc
	GetBookingByIDHandler      gin.HandlerFunc
	UpdateBookingStatusHandler gin.HandlerFunc
	DeleteBookingHandler       gin.HandlerFunc
	GetBookingStatsHandler     gin.HandlerFunc
	GetCustomerHandler         gin.HandlerFunc
}
