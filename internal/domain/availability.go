package domain

// StaffAvailability per-staff результат расчета свободного времени.
// Пересчитывается заново на каждый запрос, не кэшируется.
type StaffAvailability struct {
	Identity         StaffIdentity
	DisplayName      string
	FreeIntervals    []Interval // отсортированы по началу, без пересечений
	TotalFreeMinutes int        // точная сумма длин FreeIntervals
}

// HasSlotFor returns true if at least one free interval fits a service
// of the given duration.
func (a *StaffAvailability) HasSlotFor(durationMinutes int) bool {
	for _, interval := range a.FreeIntervals {
		if interval.DurationMinutes() >= durationMinutes {
			return true
		}
	}
	return false
}

// LongestFreeMinutes returns the length of the longest free interval.
func (a *StaffAvailability) LongestFreeMinutes() int {
	longest := 0
	for _, interval := range a.FreeIntervals {
		if d := interval.DurationMinutes(); d > longest {
			longest = d
		}
	}
	return longest
}
