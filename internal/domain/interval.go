package domain

import (
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-StaffAvailabilityService/pkg/types"
)

// ErrInvalidInterval возвращается при попытке создать интервал,
// у которого конец не позже начала
var ErrInvalidInterval = errors.New("domain: invalid interval, end must be after start")

// Interval represents an immutable time interval within one calendar day.
// Invariant: Start is strictly before End.
type Interval struct {
	Start types.TimeString
	End   types.TimeString
}

// NewInterval constructs an Interval, validating that end is after start.
func NewInterval(start, end types.TimeString) (Interval, error) {
	if !start.IsBefore(end) {
		return Interval{}, fmt.Errorf("%w: %s >= %s", ErrInvalidInterval, start, end)
	}
	return Interval{Start: start, End: end}, nil
}

// DurationMinutes returns the interval length in minutes.
func (i Interval) DurationMinutes() int {
	return i.Start.MinutesUntil(i.End)
}

// Overlaps returns true if the two intervals share at least one minute.
// Touching intervals (one ends exactly where the other starts) do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.IsBefore(other.End) && other.Start.IsBefore(i.End)
}

// Touches returns true if the intervals overlap or are directly adjacent.
func (i Interval) Touches(other Interval) bool {
	return !i.End.IsBefore(other.Start) && !other.End.IsBefore(i.Start)
}

// Merge returns the covering interval of two overlapping or touching intervals.
func (i Interval) Merge(other Interval) Interval {
	start := i.Start
	if other.Start.IsBefore(start) {
		start = other.Start
	}
	end := i.End
	if other.End.IsAfter(end) {
		end = other.End
	}
	return Interval{Start: start, End: end}
}

// String returns the interval as "HH:MM-HH:MM".
func (i Interval) String() string {
	return i.Start.String() + "-" + i.End.String()
}

// MergeIntervals нормализует набор интервалов: сортирует по началу и
// объединяет пересекающиеся и соприкасающиеся интервалы в максимальные
// Результат отсортирован и не содержит пересечений
func MergeIntervals(intervals []Interval) []Interval {
	if len(intervals) <= 1 {
		return intervals
	}

	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(a, b int) bool {
		if sorted[a].Start.Equal(sorted[b].Start) {
			return sorted[a].End.IsBefore(sorted[b].End)
		}
		return sorted[a].Start.IsBefore(sorted[b].Start)
	})

	merged := make([]Interval, 0, len(sorted))
	current := sorted[0]

	for _, next := range sorted[1:] {
		if current.Touches(next) {
			current = current.Merge(next)
			continue
		}
		merged = append(merged, current)
		current = next
	}
	merged = append(merged, current)

	return merged
}
