package routes

import (
	"net/http"
	"time"

	"serenite/handlers"
	"serenite/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the router needs.
type HandlerBundle struct {
	Schedule     *handlers.ScheduleHandler
	Availability *handlers.AvailabilityHandler
	Booking      *handlers.BookingHandler
}

// RegisterScheduleRoutes registers availability query and schedule management endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.GET("/availability", hb.Schedule.GetAvailabilityHandler)
		api.PUT("/days", hb.Availability.UpsertDayHandler)
		api.DELETE("/days/:professionalId/:date", hb.Availability.DeleteDayHandler)
		api.GET("/days/:professionalId", hb.Availability.ListDaysHandler)
	}
}

// RegisterBookingRoutes registers the appointment lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.CreateBookingHandler)
		api.POST("/:id/cancel", hb.Booking.CancelBookingHandler)
		api.POST("/:id/no-show", hb.Booking.MarkNoShowHandler)
		api.GET("/client/:clientId", hb.Booking.ListClientBookingsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterScheduleRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r)
}
