package models

import "time"

// TimeInterval is a half-open time range [Start, End).
type TimeInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Overlaps reports whether two half-open intervals share any instant.
// Touching endpoints do not overlap, so back-to-back events are allowed.
func (iv TimeInterval) Overlaps(other TimeInterval) bool {
	return iv.Start.Before(other.End) && iv.End.After(other.Start)
}

// Contains reports whether t falls inside the interval.
func (iv TimeInterval) Contains(t time.Time) bool {
	return !t.Before(iv.Start) && t.Before(iv.End)
}

// Slot is a candidate bookable interval derived from the time policy. It has
// the same shape as a busy interval but is transient: generated per query,
// never persisted.
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Interval returns the slot's time range.
func (s Slot) Interval() TimeInterval {
	return TimeInterval{Start: s.Start, End: s.End}
}

// BookingRequest is a caller's proposal for a new calendar event. It is
// consumed once by the booking service and not retained.
type BookingRequest struct {
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Start         time.Time `json:"start"`
	DurationHours float64   `json:"durationHours"` // zero means use the policy default
}

// BookingResult carries the id the remote calendar assigned to a new event.
type BookingResult struct {
	EventID string `json:"eventId"`
}

// EventPayload is what the calendar gateway writes to the remote store.
type EventPayload struct {
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	TimeZone    string
	ColorID     string
}
