package staffmapping

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-StaffAvailabilityService/internal/domain"
	"github.com/m04kA/SMC-StaffAvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StaffAvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий таблицы соответствия внутренних ID мастеров
// внешним ID из POS системы
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория маппинга мастеров
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByLocation получает все строки маппинга для локации
// Фильтрацию по флагу видимости делает identity resolver, а не SQL -
// так резолвер можно тестировать на полных наборах строк
func (r *Repository) GetByLocation(ctx context.Context, locationID int64) ([]*domain.StaffMapping, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"location_id",
		"internal_staff_id",
		"external_staff_id",
		"visible",
		"created_at",
		"updated_at",
	).
		From("staff_location_mappings").
		Where(squirrel.Eq{"location_id": locationID}).
		OrderBy("internal_staff_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByLocation - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByLocation - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	mappings := make([]*domain.StaffMapping, 0)

	for rows.Next() {
		var mapping domain.StaffMapping
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&mapping.ID,
			&mapping.LocationID,
			&mapping.InternalStaffID,
			&mapping.ExternalStaffID,
			&mapping.Visible,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: GetByLocation - scan row: %v", ErrScanRow, err)
		}

		mapping.CreatedAt = createdAt.Time
		mapping.UpdatedAt = updatedAt.Time

		mappings = append(mappings, &mapping)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByLocation - rows error: %v", ErrScanRow, err)
	}

	return mappings, nil
}
