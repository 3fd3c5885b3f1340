package dateparse

import (
	"context"
	"time"
)

// Resolver extracts a concrete instant from free text such as "next Tuesday
// at 3pm". The boolean reports whether a date was found at all; transport
// errors are returned separately so callers can tell "no date in the text"
// apart from "the resolver is down".
type Resolver interface {
	Resolve(ctx context.Context, text string, reference time.Time) (time.Time, bool, error)
}
