package calendar

import (
	"context"
	"time"

	"casavida/models"
)

// Gateway is the narrow contract this service needs from the remote calendar:
// read the busy intervals inside a range and insert one event. Auth and
// credential handling belong to the implementation, not to callers.
type Gateway interface {
	ListBusyIntervals(ctx context.Context, from, to time.Time) ([]models.TimeInterval, error)
	InsertEvent(ctx context.Context, payload models.EventPayload) (string, error)
}
