package scheduling

import (
	"context"
	"time"

	"casavida/models"
	"casavida/services/calendar"
	"casavida/utils"

	"go.uber.org/zap"
)

// DefaultAvailabilityEngine computes availability from the slot generator, the
// conflict filter and one remote calendar read per query. It keeps no state
// between calls.
type DefaultAvailabilityEngine struct {
	Policy  TimePolicy
	Gateway calendar.Gateway
}

// searchWindow anchors the window at the queried instant. The source anchored
// IsAvailable at "now" instead; that asymmetry looked unintentional, so both
// operations window from the instant being checked.
func (e *DefaultAvailabilityEngine) searchWindow(instant time.Time) (time.Time, time.Time) {
	start := instant.In(e.Policy.Location)
	return start, start.AddDate(0, 0, e.Policy.HorizonDays)
}

// IsAvailable reports whether instant falls inside a free candidate slot.
// A failed calendar read degrades to false: an unknown calendar is treated as
// fully booked rather than risking a double booking.
func (e *DefaultAvailabilityEngine) IsAvailable(ctx context.Context, instant time.Time) (bool, error) {
	from, to := e.searchWindow(instant)
	busy, err := e.Gateway.ListBusyIntervals(ctx, from, to)
	if err != nil {
		utils.GetLogger().Warn("availability: calendar read failed, treating instant as unavailable",
			zap.Time("instant", instant), zap.Error(err))
		return false, nil
	}
	free := FilterConflicts(GenerateSlots(from, to, e.Policy), busy)
	for _, slot := range free {
		if slot.Interval().Contains(from) {
			return true, nil
		}
	}
	return false, nil
}

// NextAvailableSlot returns the earliest free slot starting strictly after
// instant, or ErrNoSlotAvailable when the horizon is exhausted. Unlike
// IsAvailable it does not hide read failures: answering "nothing free" off a
// broken calendar would mislead the caller into thinking the horizon is fully
// booked, so the gateway error surfaces as a CalendarUnavailableError.
func (e *DefaultAvailabilityEngine) NextAvailableSlot(ctx context.Context, instant time.Time) (models.Slot, error) {
	from, to := e.searchWindow(instant)
	busy, err := e.Gateway.ListBusyIntervals(ctx, from, to)
	if err != nil {
		return models.Slot{}, &CalendarUnavailableError{Op: "list events", Err: err}
	}
	for _, slot := range FilterConflicts(GenerateSlots(from, to, e.Policy), busy) {
		if slot.Start.After(from) {
			return slot, nil
		}
	}
	return models.Slot{}, ErrNoSlotAvailable
}
