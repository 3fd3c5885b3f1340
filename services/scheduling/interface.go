package scheduling

import (
	"context"
	"time"

	"casavida/models"
)

// AvailabilityEngine answers whether an instant is bookable and what the next
// free slot after an instant is.
type AvailabilityEngine interface {
	IsAvailable(ctx context.Context, instant time.Time) (bool, error)
	NextAvailableSlot(ctx context.Context, instant time.Time) (models.Slot, error)
}

// BookingService validates booking requests and commits them to the remote
// calendar.
type BookingService interface {
	Book(ctx context.Context, req models.BookingRequest) (models.BookingResult, error)
}
