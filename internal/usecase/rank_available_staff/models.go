package rank_available_staff

import (
	"time"

	"github.com/m04kA/SMC-StaffAvailabilityService/internal/domain"
	"github.com/m04kA/SMC-StaffAvailabilityService/pkg/types"
)

// Request модель запроса на ранжирование доступных мастеров
type Request struct {
	UserID                 int64     // ID пользователя (для логирования, не влияет на результат)
	LocationID             *int64    // ID локации; nil - псевдозапрос "по всем локациям"
	Date                   time.Time // Дата, на которую считается доступность (без времени)
	ServiceDurationMinutes int       // Минимальная длительность услуги
	Limit                  int       // Ограничение размера выдачи; 0 - без ограничения
}

// Response модель ответа с ранжированным списком мастеров
type Response struct {
	Date       time.Time    // Дата, на которую считалась доступность
	LocationID *int64       // ID локации (nil для запроса по всем локациям)
	Staff      []StaffEntry // Мастера, отсортированные по свободному времени (убывание)
}

// StaffEntry один мастер в выдаче
type StaffEntry struct {
	InternalStaffID  int64          // Внутренний ID мастера
	ExternalStaffID  *string        // Внешний ID из POS системы (если есть маппинг)
	DisplayName      string         // Отображаемое имя
	TotalFreeMinutes int            // Суммарное свободное время в минутах
	FreeIntervals    []FreeInterval // Свободные интервалы в хронологическом порядке
}

// FreeInterval свободный интервал мастера
type FreeInterval struct {
	StartTime       types.TimeString // Время начала интервала
	EndTime         types.TimeString // Время конца интервала
	DurationMinutes int              // Длина интервала в минутах
}

// fromDomainAvailability конвертирует domain модель в entry выдачи
func fromDomainAvailability(a *domain.StaffAvailability) StaffEntry {
	intervals := make([]FreeInterval, len(a.FreeIntervals))
	for i, interval := range a.FreeIntervals {
		intervals[i] = FreeInterval{
			StartTime:       interval.Start,
			EndTime:         interval.End,
			DurationMinutes: interval.DurationMinutes(),
		}
	}

	return StaffEntry{
		InternalStaffID:  a.Identity.InternalID,
		ExternalStaffID:  a.Identity.ExternalID,
		DisplayName:      a.DisplayName,
		TotalFreeMinutes: a.TotalFreeMinutes,
		FreeIntervals:    intervals,
	}
}
