package rank_available_staff

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StaffAvailabilityService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний локаций
type ScheduleRepository interface {
	// GetStaffIDsByLocationAndWeekday получает ID мастеров, работающих
	// на локации в указанный день недели
	GetStaffIDsByLocationAndWeekday(ctx context.Context, locationID int64, weekday time.Weekday) ([]int64, error)
}

// MappingRepository интерфейс репозитория маппинга мастеров на POS ID
type MappingRepository interface {
	// GetByLocation получает все строки маппинга для локации
	GetByLocation(ctx context.Context, locationID int64) ([]*domain.StaffMapping, error)
}

// AppointmentRepository интерфейс репозитория записей клиентов
type AppointmentRepository interface {
	// GetByLocationAndDate получает активные записи локации на дату
	GetByLocationAndDate(ctx context.Context, locationID int64, date time.Time) ([]*domain.Appointment, error)
}

// StaffServiceClient интерфейс клиента для StaffService
type StaffServiceClient interface {
	GetStaffMembers(ctx context.Context, internalIDs []int64) ([]*domain.StaffMember, error)
	GetAllActiveStaff(ctx context.Context) ([]*domain.StaffMember, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
