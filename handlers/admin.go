package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	bookingRepo "bookassist/database/repository/booking"
	"bookassist/models"
	"bookassist/utils"
)

// GetBookingsHandler lists bookings, optionally filtered by date, customer
// email, or a free-text search query.
func GetBookingsHandler(repo bookingRepo.BookingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			bookings []models.Booking
			err      error
		)
		switch {
		case c.Query("date") != "":
			bookings, err = repo.GetByDate(c.Query("date"))
		case c.Query("email") != "":
			bookings, err = repo.GetByCustomerEmail(c.Query("email"))
		case c.Query("q") != "":
			bookings, err = repo.Search(c.Query("q"))
		default:
			bookings, err = repo.GetAll()
		}
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to fetch bookings", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
	}
}

// GetBookingByIDHandler returns a single booking.
func GetBookingByIDHandler(repo bookingRepo.BookingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		booking, err := repo.GetByID(c.Param("id"))
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to fetch booking", err.Error())
			return
		}
		if booking == nil {
			utils.JSONError(c, http.StatusNotFound, "booking not found", c.Param("id"))
			return
		}
		c.JSON(http.StatusOK, booking)
	}
}

// UpdateBookingStatusHandler moves a booking between statuses.
func UpdateBookingStatusHandler(repo bookingRepo.BookingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Status string `json:"status"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		switch input.Status {
		case models.BookingStatusPending, models.BookingStatusConfirmed, models.BookingStatusCancelled:
		default:
			utils.JSONError(c, http.StatusBadRequest, "invalid status", input.Status)
			return
		}

		if err := repo.UpdateStatus(c.Param("id"), input.Status); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to update booking", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": input.Status})
	}
}

// DeleteBookingHandler removes a booking.
func DeleteBookingHandler(repo bookingRepo.BookingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := repo.Delete(c.Param("id")); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to delete booking", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": "deleted"})
	}
}

// GetBookingStatsHandler returns aggregate counts for the dashboard.
func GetBookingStatsHandler(repo bookingRepo.BookingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := repo.Stats()
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to fetch stats", err.Error())
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

// GetCustomerHandler returns the customer record for an email.
func GetCustomerHandler(repo bookingRepo.BookingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, err := repo.GetCustomerByEmail(c.Param("email"))
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to fetch customer", err.Error())
			return
		}
		if customer == nil {
			utils.JSONError(c, http.StatusNotFound, "customer not found", c.Param("email"))
			return
		}
		c.JSON(http.StatusOK, customer)
	}
}
