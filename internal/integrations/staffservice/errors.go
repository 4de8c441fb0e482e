package staffservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("staffservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("staffservice client: invalid response")

	// ErrUnavailable возвращается, когда StaffService недоступен
	// Ранжирование не делает graceful degradation: без справочника мастеров
	// частичный результат занизил бы или исказил выдачу
	ErrUnavailable = errors.New("staffservice client: service unavailable")
)
