package rank_available_staff

import (
	"github.com/m04kA/SMC-StaffAvailabilityService/internal/domain"
)

// buildBusySets разбивает записи дня по мастерам и нормализует интервалы
//
// Запись принадлежит мастеру, если её внутренний ID совпадает с ID мастера
// ИЛИ её внешний ID совпадает с внешним ID мастера. Скан O(мастера × записи) -
// приемлемо на кардинальностях одной локации и одного дня (< 50 мастеров,
// < 200 записей).
//
// Битая запись (конец не позже начала) логируется и пропускается: одна
// кривая строка не должна скрывать доступность мастера целиком.
//
// Результат для каждого мастера отсортирован по началу, пересекающиеся
// и соприкасающиеся интервалы слиты в максимальные.
func buildBusySets(
	appointments []*domain.Appointment,
	identities map[int64]domain.StaffIdentity,
	logger Logger,
) map[int64][]domain.Interval {
	busySets := make(map[int64][]domain.Interval, len(identities))

	for _, appt := range appointments {
		// Репозиторий уже исключил отмененные записи на уровне SQL,
		// но статус проверяем и здесь - контракт busy-set не должен
		// зависеть от деталей выборки
		if !appt.IsActive() {
			continue
		}

		interval, err := appt.Interval()
		if err != nil {
			logger.Warn("buildBusySets: skipping malformed appointment id=%d (%s-%s): %v",
				appt.ID, appt.StartTime, appt.EndTime, err)
			continue
		}

		for staffID, identity := range identities {
			if identity.Matches(appt) {
				busySets[staffID] = append(busySets[staffID], interval)
			}
		}
	}

	for staffID, intervals := range busySets {
		busySets[staffID] = domain.MergeIntervals(intervals)
	}

	return busySets
}
