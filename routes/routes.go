package routes

import (
	"net/http"
	"time"

	"bookassist/handlers"
	"bookassist/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers the conversation endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.POST("", hb.ChatHandler)
		api.DELETE("/session/:id", hb.ResetSessionHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for booking administration.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.GET("/bookings", hb.GetBookingsHandler)
		adminGroup.GET("/bookings/stats", hb.GetBookingStatsHandler)
		adminGroup.GET("/bookings/:id", hb.GetBookingByIDHandler)
		adminGroup.PATCH("/bookings/:id/status", hb.UpdateBookingStatusHandler)
		adminGroup.DELETE("/bookings/:id", hb.DeleteBookingHandler)
		adminGroup.GET("/customers/:email", hb.GetCustomerHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterChatRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
