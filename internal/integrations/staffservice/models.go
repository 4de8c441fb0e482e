package staffservice

import "github.com/m04kA/SMC-StaffAvailabilityService/internal/domain"

// StaffMember модель мастера из StaffService
type StaffMember struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
	Active      bool   `json:"active"`
}

// ToDomain конвертирует модель клиента в domain модель
func (m *StaffMember) ToDomain() *domain.StaffMember {
	return &domain.StaffMember{
		InternalID:  m.ID,
		DisplayName: m.DisplayName,
		Active:      m.Active,
	}
}

// staffListResponse ответ StaffService со списком мастеров
type staffListResponse struct {
	Staff []StaffMember `json:"staff"`
}

// ErrorResponse модель ошибки от StaffService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
