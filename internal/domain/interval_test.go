package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StaffAvailabilityService/pkg/types"
)

func makeTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func makeInterval(t *testing.T, start, end string) Interval {
	t.Helper()
	interval, err := NewInterval(makeTime(t, start), makeTime(t, end))
	require.NoError(t, err)
	return interval
}

func TestNewInterval(t *testing.T) {
	interval, err := NewInterval(makeTime(t, "10:00"), makeTime(t, "11:30"))
	require.NoError(t, err)
	assert.Equal(t, 90, interval.DurationMinutes())

	_, err = NewInterval(makeTime(t, "11:00"), makeTime(t, "11:00"))
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = NewInterval(makeTime(t, "12:00"), makeTime(t, "11:00"))
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestInterval_Overlaps(t *testing.T) {
	cases := []struct {
		name     string
		a, b     Interval
		overlaps bool
	}{
		{"partial overlap", makeInterval(t, "10:00", "11:00"), makeInterval(t, "10:30", "12:00"), true},
		{"containment", makeInterval(t, "10:00", "14:00"), makeInterval(t, "11:00", "12:00"), true},
		{"touching is not overlap", makeInterval(t, "10:00", "11:00"), makeInterval(t, "11:00", "12:00"), false},
		{"disjoint", makeInterval(t, "08:00", "09:00"), makeInterval(t, "10:00", "11:00"), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.overlaps, c.a.Overlaps(c.b))
			assert.Equal(t, c.overlaps, c.b.Overlaps(c.a))
		})
	}
}

func TestInterval_Merge(t *testing.T) {
	merged := makeInterval(t, "10:00", "11:00").Merge(makeInterval(t, "10:30", "12:00"))
	assert.Equal(t, "10:00-12:00", merged.String())
}

func TestMergeIntervals(t *testing.T) {
	cases := []struct {
		name     string
		input    []Interval
		expected []Interval
	}{
		{
			"empty",
			[]Interval{},
			[]Interval{},
		},
		{
			"overlapping pair merged",
			[]Interval{makeInterval(t, "10:00", "11:00"), makeInterval(t, "10:30", "12:00")},
			[]Interval{makeInterval(t, "10:00", "12:00")},
		},
		{
			"touching intervals merged",
			[]Interval{makeInterval(t, "09:00", "10:00"), makeInterval(t, "10:00", "11:00")},
			[]Interval{makeInterval(t, "09:00", "11:00")},
		},
		{
			"unsorted input sorted and kept disjoint",
			[]Interval{makeInterval(t, "14:00", "15:00"), makeInterval(t, "09:00", "10:00")},
			[]Interval{makeInterval(t, "09:00", "10:00"), makeInterval(t, "14:00", "15:00")},
		},
		{
			"contained interval swallowed",
			[]Interval{makeInterval(t, "09:00", "13:00"), makeInterval(t, "10:00", "11:00")},
			[]Interval{makeInterval(t, "09:00", "13:00")},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			merged := MergeIntervals(c.input)
			require.Len(t, merged, len(c.expected))
			for i := range c.expected {
				assert.Equal(t, c.expected[i].String(), merged[i].String())
			}

			// Инвариант: результат отсортирован и без пересечений
			for i := 1; i < len(merged); i++ {
				assert.True(t, merged[i-1].End.IsBefore(merged[i].Start))
			}
		})
	}
}
