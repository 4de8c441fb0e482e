package domain

// Default day window values
const (
	DefaultDayStart = "08:00"
	DefaultDayEnd   = "20:00"
)

// MinUsableGapMinutes минимальная длина свободного интервала, который имеет
// смысл показывать: 15 минут - минимальный шаг бронирования в UI
const MinUsableGapMinutes = 15

// Business validation constants
const (
	MinServiceDurationMinutes = 1
	MaxServiceDurationMinutes = 720 // 12 hours, длина дефолтного окна дня
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов записей, которые не занимают время мастера
// Используется для фильтрации при построении busy-set
var InactiveStatuses = []AppointmentStatus{
	StatusCancelledByClient,
	StatusCancelledBySalon,
	StatusNoShow,
}
