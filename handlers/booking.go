package handlers

import (
	"net/http"

	"medibook/services/schedule"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking commit and status-transition endpoints.
type BookingHandler struct {
	Service schedule.ScheduleService
	Logger  *zap.Logger
}

func NewBookingHandler(svc schedule.ScheduleService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// BookSlot commits a reservation. A lost race returns 409 with fresh
// suggestions so the patient can pick again without another round trip.
func (h *BookingHandler) BookSlot(c *gin.Context) {
	var req schedule.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	booking, err := h.Service.Book(ctx, req)
	if err != nil {
		if schedule.ErrCode(err) == schedule.CodeSlotTaken {
			suggestions, sErr := h.Service.Suggestions(ctx, req.DoctorID, req.Date)
			if sErr != nil {
				h.Logger.Warn("failed to fetch suggestions after lost race",
					zap.String("doctorID", req.DoctorID), zap.Error(sErr))
			}
			c.JSON(http.StatusConflict, gin.H{
				"error":       schedule.CodeSlotTaken,
				"message":     "That slot was just taken, please choose another.",
				"suggestions": suggestions,
			})
			return
		}
		respondScheduleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

// UpdateBookingStatus applies a doctor/admin transition to a booking.
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	bookingID := c.Param("bookingID")
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	booking, err := h.Service.UpdateBookingStatus(c.Request.Context(), bookingID, input.Status)
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}
