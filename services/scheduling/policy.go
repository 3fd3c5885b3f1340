package scheduling

import (
	"fmt"
	"time"
)

// TimePolicy describes which instants are bookable at all: the weekdays and
// hour-of-day range that count as business hours, the default meeting length,
// and how far ahead the engine searches. Built once at startup, never mutated.
type TimePolicy struct {
	Weekdays     map[time.Weekday]bool
	StartHour    int // inclusive, in [0,24)
	EndHour      int // exclusive, in [0,24)
	SlotDuration time.Duration
	HorizonDays  int
	Location     *time.Location
}

// PolicyOptions are the raw knobs a TimePolicy is built from. Weekdays use
// ISO numbering: 1 is Monday through 7 Sunday.
type PolicyOptions struct {
	Weekdays      []int
	StartHour     int
	EndHour       int
	DurationHours float64
	HorizonDays   int
	Timezone      string
}

// NewTimePolicy validates the options and resolves the timezone.
func NewTimePolicy(opts PolicyOptions) (TimePolicy, error) {
	if len(opts.Weekdays) == 0 {
		return TimePolicy{}, fmt.Errorf("at least one bookable weekday is required")
	}
	weekdays := make(map[time.Weekday]bool, len(opts.Weekdays))
	for _, d := range opts.Weekdays {
		if d < 1 || d > 7 {
			return TimePolicy{}, fmt.Errorf("weekday %d out of range 1..7", d)
		}
		weekdays[time.Weekday(d%7)] = true
	}
	if opts.StartHour < 0 || opts.StartHour > 23 || opts.EndHour < 0 || opts.EndHour > 23 {
		return TimePolicy{}, fmt.Errorf("hours must be in 0..23, got %d..%d", opts.StartHour, opts.EndHour)
	}
	if opts.StartHour >= opts.EndHour {
		return TimePolicy{}, fmt.Errorf("start hour %d must be before end hour %d", opts.StartHour, opts.EndHour)
	}
	if opts.DurationHours <= 0 {
		return TimePolicy{}, fmt.Errorf("slot duration must be positive, got %g", opts.DurationHours)
	}
	if opts.HorizonDays <= 0 {
		return TimePolicy{}, fmt.Errorf("search horizon must be positive, got %d days", opts.HorizonDays)
	}
	location, err := time.LoadLocation(opts.Timezone)
	if err != nil {
		return TimePolicy{}, fmt.Errorf("invalid timezone %q: %w", opts.Timezone, err)
	}
	return TimePolicy{
		Weekdays:     weekdays,
		StartHour:    opts.StartHour,
		EndHour:      opts.EndHour,
		SlotDuration: time.Duration(opts.DurationHours * float64(time.Hour)),
		HorizonDays:  opts.HorizonDays,
		Location:     location,
	}, nil
}
