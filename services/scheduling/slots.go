package scheduling

import (
	"time"

	"casavida/models"
)

// GenerateSlots walks calendar days from the day containing windowStart up to
// and including the day containing windowEnd and anchors one candidate slot at
// every whole business hour on bookable weekdays. Output is strictly
// increasing by start time. Pure: identical inputs yield identical output, and
// every call recomputes from scratch (the policy may differ between calls).
//
// A slot that would run past the end hour is not emitted, so a business day
// shorter than the slot duration yields zero slots for that day.
func GenerateSlots(windowStart, windowEnd time.Time, policy TimePolicy) []models.Slot {
	var slots []models.Slot

	day := startOfDay(windowStart.In(policy.Location))
	last := startOfDay(windowEnd.In(policy.Location))
	for ; !day.After(last); day = day.AddDate(0, 0, 1) {
		if !policy.Weekdays[day.Weekday()] {
			continue
		}
		dayEnd := time.Date(day.Year(), day.Month(), day.Day(), policy.EndHour, 0, 0, 0, policy.Location)
		for hour := policy.StartHour; hour < policy.EndHour; hour++ {
			start := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, policy.Location)
			end := start.Add(policy.SlotDuration)
			if end.After(dayEnd) {
				break
			}
			slots = append(slots, models.Slot{Start: start, End: end})
		}
	}
	return slots
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
