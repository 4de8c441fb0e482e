package domain

import (
	"time"

	"github.com/m04kA/SMC-StaffAvailabilityService/pkg/types"
)

// DayWindow окно рабочего дня, в пределах которого считается свободное время
type DayWindow struct {
	Start types.TimeString
	End   types.TimeString
}

// DefaultDayWindow возвращает дефолтное окно рабочего дня (08:00-20:00)
func DefaultDayWindow() DayWindow {
	start, _ := types.NewTimeStringFromString(DefaultDayStart)
	end, _ := types.NewTimeStringFromString(DefaultDayEnd)
	return DayWindow{Start: start, End: end}
}

// DurationMinutes возвращает длину окна в минутах
func (w DayWindow) DurationMinutes() int {
	return w.Start.MinutesUntil(w.End)
}

// Remaining возвращает остаток окна с учетом текущего момента.
// Если запрошенный день - сегодня, нижняя граница поднимается до "now".
// Для будущих дней окно возвращается целиком, для прошедших - пусто.
// Второй результат false, если окна не осталось.
func (w DayWindow) Remaining(day time.Time, now time.Time) (Interval, bool) {
	dayOnly := truncateToDay(day)
	nowOnly := truncateToDay(now)

	// День уже прошел - окна нет
	if dayOnly.Before(nowOnly) {
		return Interval{}, false
	}

	start := w.Start
	// Для сегодняшнего дня поднимаем нижнюю границу до текущего времени
	if dayOnly.Equal(nowOnly) {
		start = types.Max(start, types.NewTimeString(now))
	}

	if !start.IsBefore(w.End) {
		return Interval{}, false
	}

	return Interval{Start: start, End: w.End}, true
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
