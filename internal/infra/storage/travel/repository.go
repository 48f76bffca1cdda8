package travel

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-StaffPortal/internal/domain"
	"github.com/m04kA/SMC-StaffPortal/pkg/dbmetrics"
	"github.com/m04kA/SMC-StaffPortal/pkg/psqlbuilder"
)

var requestColumns = []string{
	"id",
	"user_id",
	"destination",
	"purpose",
	"transport_mode",
	"vehicle_plate",
	"start_at",
	"end_at",
	"meal_days",
	"allowance_total",
	"status",
	"remarks",
	"created_at",
	"updated_at",
}

// Repository репозиторий заявок на командировку
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет заявку вместе с рассчитанными днями питания (jsonb)
func (r *Repository) Create(ctx context.Context, req *domain.TravelRequest) (*domain.TravelRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	mealDays, err := json.Marshal(req.MealDays)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert("travel_requests").
		Columns(
			"user_id",
			"destination",
			"purpose",
			"transport_mode",
			"vehicle_plate",
			"start_at",
			"end_at",
			"meal_days",
			"allowance_total",
			"status",
		).
		Values(
			req.UserID,
			req.Destination,
			req.Purpose,
			req.TransportMode,
			req.VehiclePlate,
			req.StartAt,
			req.EndAt,
			string(mealDays),
			req.AllowanceTotal,
			req.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&req.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	req.CreatedAt = createdAt.Time
	req.UpdatedAt = updatedAt.Time

	return req, nil
}

// GetByID получает заявку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TravelRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(requestColumns...).
		From("travel_requests").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		req                  domain.TravelRequest
		mealDays             []byte
		createdAt, updatedAt sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&req.ID,
		&req.UserID,
		&req.Destination,
		&req.Purpose,
		&req.TransportMode,
		&req.VehiclePlate,
		&req.StartAt,
		&req.EndAt,
		&mealDays,
		&req.AllowanceTotal,
		&req.Status,
		&req.Remarks,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan request: %v", ErrScanRow, err)
	}

	req.MealDays = make([]domain.MealDay, 0)
	if len(mealDays) > 0 {
		if err := json.Unmarshal(mealDays, &req.MealDays); err != nil {
			return nil, fmt.Errorf("%w: GetByID - %v", ErrEncode, err)
		}
	}

	req.CreatedAt = createdAt.Time
	req.UpdatedAt = updatedAt.Time

	return &req, nil
}

// UpdateStatus обновляет статус заявки
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, remarks *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("travel_requests").
		Set("status", status).
		Set("remarks", remarks).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrRequestNotFound
	}

	return nil
}
