package rank_available_staff

import (
	"fmt"

	"github.com/m04kA/SMC-StaffAvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceDurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %d",
			ErrInvalidServiceDuration, req.ServiceDurationMinutes)
	}

	if req.ServiceDurationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: duration %d exceeds maximum %d",
			ErrInvalidServiceDuration, req.ServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}

	if req.LocationID != nil && *req.LocationID <= 0 {
		return fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Limit < 0 {
		return fmt.Errorf("%w: limit must not be negative", ErrInvalidInput)
	}

	return nil
}
