package scheduling

import "casavida/models"

// FilterConflicts returns the slots that overlap no busy interval, preserving
// input order. Overlap is half-open: a slot ending exactly when a busy
// interval starts does not conflict, which keeps back-to-back bookings
// possible. The busy list may be empty, unsorted or self-overlapping.
func FilterConflicts(slots []models.Slot, busy []models.TimeInterval) []models.Slot {
	if len(busy) == 0 {
		return slots
	}
	free := make([]models.Slot, 0, len(slots))
	for _, slot := range slots {
		conflict := false
		for _, b := range busy {
			if slot.Interval().Overlaps(b) {
				conflict = true
				break
			}
		}
		if !conflict {
			free = append(free, slot)
		}
	}
	return free
}
