package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-StaffAvailabilityService/internal/domain"
	"github.com/m04kA/SMC-StaffAvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения записей клиентов
// Сервис read-only: записи создает и изменяет BookingService,
// здесь они только читаются для построения busy-set
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByLocationAndDate получает все активные записи локации на конкретную дату
// Отмененные записи и no-show исключаются на уровне SQL - они не занимают
// время мастера. Результат отсортирован по времени начала.
func (r *Repository) GetByLocationAndDate(ctx context.Context, locationID int64, date time.Time) ([]*domain.Appointment, error) {
	inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
	for i, s := range domain.InactiveStatuses {
		inactiveStatusStrings[i] = string(s)
	}

	query, args, err := psqlbuilder.Select(
		"id",
		"location_id",
		"appointment_date",
		"start_time",
		"end_time",
		"internal_staff_id",
		"external_staff_id",
		"status",
		"created_at",
		"updated_at",
	).
		From("appointments").
		Where(squirrel.Eq{"location_id": locationID}).
		Where(squirrel.Eq{"appointment_date": date}).
		Where(squirrel.NotEq{"status": inactiveStatusStrings}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByLocationAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByLocationAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// scanAppointments сканирует результаты запроса в слайс записей
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var appt domain.Appointment
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&appt.ID,
			&appt.LocationID,
			&appt.Date,
			&appt.StartTime,
			&appt.EndTime,
			&appt.InternalStaffID,
			&appt.ExternalStaffID,
			&appt.Status,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		appt.CreatedAt = createdAt.Time
		appt.UpdatedAt = updatedAt.Time

		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
