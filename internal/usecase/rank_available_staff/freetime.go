package rank_available_staff

import (
	"github.com/m04kA/SMC-StaffAvailabilityService/internal/domain"
)

// computeFreeIntervals вычисляет свободные интервалы мастера: дополнение
// отсортированного слитого busy-set до остатка рабочего окна
//
// Однопроходный sweep слева направо:
//  1. cursor стартует с начала окна (окно уже поднято до "now", если нужно)
//  2. Записи, целиком лежащие вне окна, отбрасываются
//  3. Зазор между cursor и началом записи - кандидат в свободные интервалы;
//     берется, только если его длина >= minGapMinutes
//  4. cursor прыгает на конец записи (назад не двигается)
//  5. Хвост от cursor до конца окна - последний кандидат с тем же порогом
//
// Без записей алгоритм вырождается в шаг 5: весь остаток окна - один
// свободный интервал.
//
// Порог minGapMinutes отфильтровывает щели между плотно стоящими записями:
// 5-минутный зазор нельзя забронировать, он только шумит в выдаче.
func computeFreeIntervals(window domain.Interval, busy []domain.Interval, minGapMinutes int) []domain.Interval {
	free := make([]domain.Interval, 0, len(busy)+1)

	cursor := window.Start
	windowEnd := window.End

	if !cursor.IsBefore(windowEnd) {
		return free
	}

	for _, record := range busy {
		// Запись целиком до cursor или целиком после окна - вне игры
		if !record.End.IsAfter(cursor) {
			continue
		}
		if !record.Start.IsBefore(windowEnd) {
			break
		}

		if record.Start.IsAfter(cursor) {
			gap := domain.Interval{Start: cursor, End: record.Start}
			if gap.DurationMinutes() >= minGapMinutes {
				free = append(free, gap)
			}
		}

		if record.End.IsAfter(cursor) {
			cursor = record.End
		}
	}

	if cursor.IsBefore(windowEnd) {
		tail := domain.Interval{Start: cursor, End: windowEnd}
		if tail.DurationMinutes() >= minGapMinutes {
			free = append(free, tail)
		}
	}

	return free
}

// totalMinutes возвращает суммарную длину интервалов
func totalMinutes(intervals []domain.Interval) int {
	total := 0
	for _, interval := range intervals {
		total += interval.DurationMinutes()
	}
	return total
}
