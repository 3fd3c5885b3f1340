package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"casavida/services/dateparse"
	"casavida/services/scheduling"
	"casavida/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// User-facing replies on terminal outcomes. The front end relays these
// verbatim, so keep them plain text.
const (
	msgCouldNotDetermineDate = `Sorry, I could not determine a date from your message. Try something like "next Tuesday at 3pm".`
	msgCalendarUnreachable   = "The calendar cannot be reached right now. Please try again in a few minutes."
	msgHorizonExhausted      = "There are no free slots in the upcoming days. Please try a later date."
)

// ScheduleRequestHandler turns one free-text scheduling message into one plain
// text reply: it resolves a date from the message, checks availability and
// suggests the next free slot when the requested one is taken. No conversation
// state is kept here; the front end owns the dialogue.
type ScheduleRequestHandler struct {
	Resolver dateparse.Resolver
	Engine   scheduling.AvailabilityEngine
	Location *time.Location
	Logger   *zap.Logger
}

func NewScheduleRequestHandler(resolver dateparse.Resolver, engine scheduling.AvailabilityEngine, location *time.Location, logger *zap.Logger) *ScheduleRequestHandler {
	return &ScheduleRequestHandler{Resolver: resolver, Engine: engine, Location: location, Logger: logger}
}

// HandleRequest resolves a date from the message and answers with availability.
func (h *ScheduleRequestHandler) HandleRequest(c *gin.Context) {
	var input struct {
		From    string `json:"from"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.Message) == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "body must carry a non-empty 'message'")
		return
	}

	requestID := uuid.New().String()
	ctx := c.Request.Context()
	now := time.Now().In(h.Location)

	h.Logger.Info("request: scheduling message received",
		zap.String("requestID", requestID), zap.String("from", input.From))

	at, found, err := h.Resolver.Resolve(ctx, input.Message, now)
	if err != nil {
		h.Logger.Error("request: date resolution failed",
			zap.String("requestID", requestID), zap.String("from", input.From), zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "date resolution unavailable", "could not reach the date resolver")
		return
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{"reply": msgCouldNotDetermineDate})
		return
	}

	available, err := h.Engine.IsAvailable(ctx, at)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "availability check failed", err.Error())
		return
	}
	if available {
		c.JSON(http.StatusOK, gin.H{
			"reply":         fmt.Sprintf("%s is free. Reply with a title and description to confirm the booking.", utils.FormatInstant(at, h.Location)),
			"resolvedStart": at,
		})
		return
	}

	slot, err := h.Engine.NextAvailableSlot(ctx, at)
	if errors.Is(err, scheduling.ErrNoSlotAvailable) {
		c.JSON(http.StatusOK, gin.H{"reply": msgHorizonExhausted})
		return
	}
	var unavailable *scheduling.CalendarUnavailableError
	if errors.As(err, &unavailable) {
		h.Logger.Error("request: calendar unavailable",
			zap.String("requestID", requestID), zap.String("from", input.From), zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "calendar unavailable", msgCalendarUnreachable)
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "next-slot lookup failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reply": fmt.Sprintf("%s is taken. The next free slot is %s.",
			utils.FormatInstant(at, h.Location), utils.FormatInstant(slot.Start, h.Location)),
		"resolvedStart": at,
		"suggestedSlot": slot,
	})
}
