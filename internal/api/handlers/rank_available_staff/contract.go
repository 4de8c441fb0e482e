package rank_available_staff

import (
	"context"

	rankAvailableStaff "github.com/m04kA/SMC-StaffAvailabilityService/internal/usecase/rank_available_staff"
)

type RankAvailableStaffUseCase interface {
	Execute(ctx context.Context, req *rankAvailableStaff.Request) (*rankAvailableStaff.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
