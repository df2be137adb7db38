package routes

import (
	"net/http"

	"medibook/handlers"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

// RegisterScheduleRoutes registers all endpoints for the scheduling engine.
func RegisterScheduleRoutes(r *gin.Engine, sh *handlers.ScheduleHandler, bh *handlers.BookingHandler) {
	api := r.Group("/api/schedule")
	{
		api.GET("/doctors/:doctorID/slots", sh.GetAvailableSlots)
		api.GET("/doctors/:doctorID/suggestions", sh.GetSuggestions)
		api.POST("/bookings", bh.BookSlot)
		api.PATCH("/bookings/:bookingID/status", bh.UpdateBookingStatus)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}
