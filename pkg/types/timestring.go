package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeFormat возвращается, когда строка времени не может быть
// разобрана в формате HH:MM или HH:MM:SS
var ErrInvalidTimeFormat = errors.New("types: invalid time format, expected HH:MM or HH:MM:SS")

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 24 * 60

// TimeString время суток с точностью до минуты (day-local, без таймзоны)
// Хранит значение в диапазоне 0-1440 минут от полуночи
// Значение 1440 ("24:00") допустимо только как верхняя граница интервала
type TimeString struct {
	minutes int
}

// NewTimeString создает TimeString из time.Time (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString{minutes: t.Hour()*60 + t.Minute()}
}

// NewTimeStringFromMinutes создает TimeString из количества минут от полуночи
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes > MinutesPerDay {
		return TimeString{}, fmt.Errorf("%w: %d minutes out of range", ErrInvalidTimeFormat, minutes)
	}
	return TimeString{minutes: minutes}, nil
}

// NewTimeStringFromString разбирает строку "HH:MM" или "HH:MM:SS"
// Секунды допускаются, но отбрасываются
func NewTimeStringFromString(s string) (TimeString, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	// "24:00" допускается как верхняя граница интервала
	if hour == 24 && minute == 0 {
		return TimeString{minutes: MinutesPerDay}, nil
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	return TimeString{minutes: hour*60 + minute}, nil
}

// String возвращает время в формате "HH:MM"
func (t TimeString) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

// Minutes возвращает количество минут от полуночи (0-1439)
func (t TimeString) Minutes() int {
	return t.minutes
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.minutes < other.minutes
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.minutes > other.minutes
}

// Equal возвращает true, если времена совпадают с точностью до минуты
func (t TimeString) Equal(other TimeString) bool {
	return t.minutes == other.minutes
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед
// Возвращает ошибку, если результат выходит за пределы суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	result := t.minutes + minutes
	if result < 0 || result > MinutesPerDay {
		return TimeString{}, fmt.Errorf("%w: %s + %d minutes is outside the day", ErrInvalidTimeFormat, t, minutes)
	}
	return TimeString{minutes: result}, nil
}

// MinutesUntil возвращает количество минут от t до other (может быть отрицательным)
func (t TimeString) MinutesUntil(other TimeString) int {
	return other.minutes - t.minutes
}

// Max возвращает большее из двух времен
func Max(a, b TimeString) TimeString {
	if a.minutes >= b.minutes {
		return a
	}
	return b
}

// MarshalJSON сериализует время как строку "HH:MM"
func (t TimeString) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON разбирает строку "HH:MM" или "HH:MM:SS"
func (t *TimeString) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer для записи в Postgres TIME колонку
func (t TimeString) Value() (driver.Value, error) {
	return t.String(), nil
}

// Scan реализует sql.Scanner для чтения из Postgres TIME колонки
// Поддерживает string, []byte и time.Time представления
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = TimeString{}
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidTimeFormat, src)
	}
}
