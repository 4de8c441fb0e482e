package rank_available_staff

import "errors"

var (
	// ErrInvalidServiceDuration возвращается при длительности услуги <= 0
	// или больше длины рабочего дня
	ErrInvalidServiceDuration = errors.New("invalid service duration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDataUnavailable возвращается, когда один из источников данных
	// (БД или StaffService) недоступен. Запрос прерывается целиком:
	// частичный результат завысил бы доступность мастеров, чьи записи
	// не удалось загрузить
	ErrDataUnavailable = errors.New("availability data unavailable")
)
