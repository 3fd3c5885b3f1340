package scheduling

import (
	"errors"
	"fmt"
)

// ErrNoSlotAvailable reports that the search horizon was exhausted without
// finding a free slot. A normal outcome, not a fault.
var ErrNoSlotAvailable = errors.New("no available slot within the search horizon")

// InvalidBookingError rejects a malformed booking request before any remote
// call is made.
type InvalidBookingError struct {
	Reason string
}

func (e *InvalidBookingError) Error() string {
	return fmt.Sprintf("invalid booking request: %s", e.Reason)
}

// CalendarUnavailableError wraps a failed remote calendar read or write.
type CalendarUnavailableError struct {
	Op  string
	Err error
}

func (e *CalendarUnavailableError) Error() string {
	return fmt.Sprintf("calendar unavailable during %s: %v", e.Op, e.Err)
}

func (e *CalendarUnavailableError) Unwrap() error { return e.Err }

// BookingFailedError wraps a remote write that was rejected or returned no
// event id.
type BookingFailedError struct {
	Err error
}

func (e *BookingFailedError) Error() string {
	return fmt.Sprintf("booking failed: %v", e.Err)
}

func (e *BookingFailedError) Unwrap() error { return e.Err }
