package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	cases := []struct {
		input   string
		minutes int
		wantErr bool
	}{
		{"08:00", 480, false},
		{"00:00", 0, false},
		{"23:59", 1439, false},
		{"24:00", 1440, false},
		{"10:30:45", 630, false}, // секунды отбрасываются
		{"8:5", 485, false},
		{"", 0, true},
		{"10", 0, true},
		{"10:60", 0, true},
		{"24:01", 0, true},
		{"25:00", 0, true},
		{"-1:00", 0, true},
		{"ab:cd", 0, true},
		{"10:00:00:00", 0, true},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			ts, err := NewTimeStringFromString(c.input)
			if c.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.minutes, ts.Minutes())
		})
	}
}

func TestTimeString_String(t *testing.T) {
	ts, err := NewTimeStringFromString("09:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05", ts.String())
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := NewTimeStringFromString("10:00")
	require.NoError(t, err)

	shifted, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, "11:30", shifted.String())

	// Выход за пределы суток
	_, err = ts.AddMinutes(15 * 60)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = ts.AddMinutes(-11 * 60)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeString_Comparisons(t *testing.T) {
	early, err := NewTimeStringFromString("08:00")
	require.NoError(t, err)
	late, err := NewTimeStringFromString("20:00")
	require.NoError(t, err)

	assert.True(t, early.IsBefore(late))
	assert.False(t, late.IsBefore(early))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsBefore(early))
	assert.True(t, early.Equal(early))
	assert.Equal(t, 720, early.MinutesUntil(late))
	assert.Equal(t, -720, late.MinutesUntil(early))
	assert.Equal(t, late, Max(early, late))
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 8, 29, 13, 45, 59, 0, time.UTC))
	assert.Equal(t, "13:45", ts.String())
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:15:00"))
	assert.Equal(t, "10:15", ts.String())

	require.NoError(t, ts.Scan([]byte("18:30")))
	assert.Equal(t, "18:30", ts.String())

	require.NoError(t, ts.Scan(time.Date(2026, 8, 29, 7, 5, 0, 0, time.UTC)))
	assert.Equal(t, "07:05", ts.String())

	assert.Error(t, ts.Scan(42))
}
