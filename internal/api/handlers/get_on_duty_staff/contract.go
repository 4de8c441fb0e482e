package get_on_duty_staff

import (
	"context"

	"github.com/m04kA/SMC-StaffAvailabilityService/internal/service/roster/models"
)

type RosterService interface {
	GetOnDutyStaff(ctx context.Context, req *models.GetOnDutyStaffRequest) (*models.OnDutyStaffResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
