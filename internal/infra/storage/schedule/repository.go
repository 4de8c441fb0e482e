package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-StaffAvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StaffAvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий расписаний локаций: кто из мастеров работает
// в какой день недели на какой локации
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetStaffIDsByLocationAndWeekday получает внутренние ID мастеров,
// работающих на локации в указанный день недели
// Пустой результат - валидное состояние (неизвестная локация или выходной)
func (r *Repository) GetStaffIDsByLocationAndWeekday(ctx context.Context, locationID int64, weekday time.Weekday) ([]int64, error) {
	query, args, err := psqlbuilder.Select("internal_staff_id").
		From("location_schedules").
		Where(squirrel.Eq{"location_id": locationID}).
		Where(squirrel.Eq{"weekday": int(weekday)}).
		OrderBy("internal_staff_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffIDsByLocationAndWeekday - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffIDsByLocationAndWeekday - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	staffIDs := make([]int64, 0)
	for rows.Next() {
		var staffID int64
		if err := rows.Scan(&staffID); err != nil {
			return nil, fmt.Errorf("%w: GetStaffIDsByLocationAndWeekday - scan internal_staff_id: %v", ErrScanRow, err)
		}
		staffIDs = append(staffIDs, staffID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetStaffIDsByLocationAndWeekday - rows error: %v", ErrScanRow, err)
	}

	return staffIDs, nil
}
