package scheduling

import (
	"context"
	"errors"
	"strings"
	"time"

	"casavida/models"
	"casavida/services/calendar"
	"casavida/utils"

	"go.uber.org/zap"
)

// eventColorID is the display color the agency calendar uses for events
// created by this service.
const eventColorID = "2"

// DefaultBookingService writes validated bookings through the calendar
// gateway.
type DefaultBookingService struct {
	Policy  TimePolicy
	Gateway calendar.Gateway
}

// Book validates the request and commits the event. It does not re-check
// availability: callers are expected to have consulted the availability engine
// first, and two concurrent callers can still race for the same slot since the
// remote calendar is not under our transactional control. Write failures are
// always surfaced, never retried (a blind retry risks duplicate bookings).
func (s *DefaultBookingService) Book(ctx context.Context, req models.BookingRequest) (models.BookingResult, error) {
	if strings.TrimSpace(req.Title) == "" {
		return models.BookingResult{}, &InvalidBookingError{Reason: "title must not be empty"}
	}
	if strings.TrimSpace(req.Description) == "" {
		return models.BookingResult{}, &InvalidBookingError{Reason: "description must not be empty"}
	}
	if req.Start.IsZero() {
		return models.BookingResult{}, &InvalidBookingError{Reason: "start time must be set"}
	}
	if req.DurationHours < 0 {
		return models.BookingResult{}, &InvalidBookingError{Reason: "duration must be positive"}
	}

	duration := s.Policy.SlotDuration
	if req.DurationHours > 0 {
		duration = time.Duration(req.DurationHours * float64(time.Hour))
	}

	start := req.Start.In(s.Policy.Location)
	payload := models.EventPayload{
		Title:       req.Title,
		Description: req.Description,
		Start:       start,
		End:         start.Add(duration),
		TimeZone:    s.Policy.Location.String(),
		ColorID:     eventColorID,
	}

	id, err := s.Gateway.InsertEvent(ctx, payload)
	if err != nil {
		return models.BookingResult{}, &BookingFailedError{Err: err}
	}
	if id == "" {
		return models.BookingResult{}, &BookingFailedError{Err: errors.New("calendar returned no event id")}
	}

	utils.GetLogger().Info("booking: event created",
		zap.String("eventID", id), zap.Time("start", payload.Start))
	return models.BookingResult{EventID: id}, nil
}
