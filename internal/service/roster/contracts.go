package roster

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StaffAvailabilityService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний локаций
type ScheduleRepository interface {
	GetStaffIDsByLocationAndWeekday(ctx context.Context, locationID int64, weekday time.Weekday) ([]int64, error)
}

// MappingRepository интерфейс репозитория маппинга мастеров на POS ID
type MappingRepository interface {
	GetByLocation(ctx context.Context, locationID int64) ([]*domain.StaffMapping, error)
}

// StaffServiceClient интерфейс клиента для StaffService
type StaffServiceClient interface {
	GetStaffMembers(ctx context.Context, internalIDs []int64) ([]*domain.StaffMember, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
