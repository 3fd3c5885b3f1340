package handlers

import (
	"errors"
	"net/http"
	"time"

	"casavida/models"
	"casavida/services/scheduling"
	"casavida/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler exposes the availability engine and booking service over HTTP.
type ScheduleHandler struct {
	Engine  scheduling.AvailabilityEngine
	Booking scheduling.BookingService
	Logger  *zap.Logger
}

func NewScheduleHandler(engine scheduling.AvailabilityEngine, booking scheduling.BookingService, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{Engine: engine, Booking: booking, Logger: logger}
}

// GetAvailability answers whether the instant in the "at" query parameter
// falls inside a free slot.
func (h *ScheduleHandler) GetAvailability(c *gin.Context) {
	at, err := time.Parse(time.RFC3339, c.Query("at"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "query parameter 'at' must be an RFC3339 timestamp")
		return
	}

	available, err := h.Engine.IsAvailable(c.Request.Context(), at)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "availability check failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": available})
}

// GetNextSlot returns the earliest free slot after the instant in the "after"
// query parameter.
func (h *ScheduleHandler) GetNextSlot(c *gin.Context) {
	after, err := time.Parse(time.RFC3339, c.Query("after"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "query parameter 'after' must be an RFC3339 timestamp")
		return
	}

	slot, err := h.Engine.NextAvailableSlot(c.Request.Context(), after)
	if errors.Is(err, scheduling.ErrNoSlotAvailable) {
		c.JSON(http.StatusNotFound, gin.H{"message": "no available slot within the search horizon"})
		return
	}
	var unavailable *scheduling.CalendarUnavailableError
	if errors.As(err, &unavailable) {
		h.Logger.Error("next-slot: calendar unavailable", zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "calendar unavailable", "the remote calendar could not be reached")
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "next-slot lookup failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, slot)
}

// CreateBooking validates and commits a new booking.
func (h *ScheduleHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Booking.Book(c.Request.Context(), req)
	var invalid *scheduling.InvalidBookingError
	if errors.As(err, &invalid) {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking request", invalid.Reason)
		return
	}
	var failed *scheduling.BookingFailedError
	if errors.As(err, &failed) {
		h.Logger.Error("booking: remote write failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "booking failed", "the event could not be created, nothing was booked")
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "booking failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, result)
}
