package roombooking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-StaffPortal/internal/domain"
	"github.com/m04kA/SMC-StaffPortal/pkg/dbmetrics"
	"github.com/m04kA/SMC-StaffPortal/pkg/psqlbuilder"
	"github.com/m04kA/SMC-StaffPortal/pkg/txmanager"
)

// pgExclusionViolation SQLSTATE нарушения EXCLUDE constraint
const pgExclusionViolation = "23P01"

var bookingColumns = []string{
	"b.id",
	"b.user_id",
	"b.purpose",
	"b.selected_rooms",
	"b.status",
	"b.remarks",
	"b.cancelled_at",
	"b.created_at",
	"b.updated_at",
}

var scheduleColumns = []string{
	"id",
	"booking_id",
	"date",
	"start_time",
	"end_time",
	"participants",
	"morning_tea",
	"lunch",
	"afternoon_tea",
}

// Repository репозиторий бронирований комнат
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет бронирование, его расписания и строки занятости room_occupancy.
// Должен вызываться в транзакции: при пересечении интервалов exclusion constraint
// отклоняет вставку и возвращается ErrSlotNotAvailable
func (r *Repository) Create(ctx context.Context, booking *domain.RoomBooking) (*domain.RoomBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("room_bookings").
		Columns("user_id", "purpose", "selected_rooms", "status").
		Values(booking.UserID, booking.Purpose, pq.StringArray(roomStrings(booking.SelectedRooms)), booking.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert booking query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&booking.ID, &createdAt, &updatedAt); err != nil {
		return nil, execError("Create - execute insert booking", err)
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	for i := range booking.Schedules {
		schedule := &booking.Schedules[i]
		schedule.BookingID = booking.ID

		query, args, err := psqlbuilder.Insert("room_booking_schedules").
			Columns("booking_id", "date", "start_time", "end_time", "participants", "morning_tea", "lunch", "afternoon_tea").
			Values(
				schedule.BookingID,
				schedule.Date,
				schedule.StartTime,
				schedule.EndTime,
				schedule.Participants,
				schedule.MorningTea,
				schedule.Lunch,
				schedule.AfternoonTea,
			).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - build insert schedule query: %v", ErrBuildQuery, err)
		}

		if err := executor.QueryRowContext(ctx, query, args...).Scan(&schedule.ID); err != nil {
			return nil, execError("Create - execute insert schedule", err)
		}

		for _, room := range booking.SelectedRooms {
			if err := r.occupy(ctx, executor, booking.ID, schedule, room); err != nil {
				return nil, err
			}
		}
	}

	return booking, nil
}

// occupy вставляет строку занятости; пересечение по комнате ловит EXCLUDE USING gist
func (r *Repository) occupy(ctx context.Context, executor DBExecutor, bookingID int64, schedule *domain.Schedule, room domain.RoomType) error {
	query, args, err := psqlbuilder.Insert("room_occupancy").
		Columns("booking_id", "schedule_id", "room_type", "during").
		Values(
			bookingID,
			schedule.ID,
			string(room),
			squirrel.Expr("tsrange(?::date + ?::time, ?::date + ?::time, '[)')",
				schedule.Date, schedule.StartTime, schedule.Date, schedule.EndTime),
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: occupy - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgExclusionViolation {
			return fmt.Errorf("%w: room=%s date=%s %s-%s", ErrSlotNotAvailable,
				room, schedule.Date.Format(domain.DateFormat), schedule.StartTime, schedule.EndTime)
		}
		return execError("occupy - execute insert", err)
	}

	return nil
}

// GetByID получает бронирование по ID вместе с расписаниями
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.RoomBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("room_bookings b").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	if err := r.attachSchedules(ctx, executor, []*domain.RoomBooking{booking}); err != nil {
		return nil, err
	}

	return booking, nil
}

// GetByFilter получает бронирования с расписаниями по фильтру
//
// Примеры:
//
// 1. Занятость всех комнат на дату (для сетки):
//    filter := domain.BookingsFilter{StartDate: &date, EndDate: &date}
//
// 2. История пользователя, включая отменённые:
//    filter := domain.BookingsFilter{UserID: &userID, IncludeInactive: true}
//
// 3. Очередь на согласование:
//    status := domain.StatusPending
//    filter := domain.BookingsFilter{Status: &status}
func (r *Repository) GetByFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.RoomBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).From("room_bookings b")

	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.user_id": *filter.UserID})
	}

	if filter.Room != nil {
		selectBuilder = selectBuilder.Where(squirrel.Expr("? = ANY(b.selected_rooms)", string(*filter.Room)))
	}

	// Период фильтруется по датам расписаний
	if filter.StartDate != nil || filter.EndDate != nil {
		sub := squirrel.Select("1").
			From("room_booking_schedules s").
			Where("s.booking_id = b.id")
		if filter.StartDate != nil {
			sub = sub.Where(squirrel.GtOrEq{"s.date": *filter.StartDate})
		}
		if filter.EndDate != nil {
			sub = sub.Where(squirrel.LtOrEq{"s.date": *filter.EndDate})
		}
		selectBuilder = selectBuilder.Where(squirrel.Expr("EXISTS (?)", sub))
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"b.status": inactive})
	}

	selectBuilder = selectBuilder.OrderBy("b.created_at ASC, b.id ASC")

	// В транзакции создания блокируем строки бронирований на период
	if dbmetrics.IsInTransaction(ctx) && filter.StartDate != nil && filter.EndDate != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF b")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, execError("GetByFilter - execute query", err)
	}
	defer rows.Close()

	bookings := make([]*domain.RoomBooking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByFilter - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		if txmanager.IsSerializationFailure(err) {
			return nil, execError("GetByFilter - rows error", err)
		}
		return nil, fmt.Errorf("%w: GetByFilter - rows error: %v", ErrScanRow, err)
	}

	if err := r.attachSchedules(ctx, executor, bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}

// UpdateStatus обновляет статус и комментарий. Для неактивных статусов освобождает комнаты
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, remarks *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("room_bookings").
		Set("status", status).
		Set("remarks", remarks).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if status == domain.StatusCancelled {
		updateBuilder = updateBuilder.Set("cancelled_at", squirrel.Expr("NOW()"))
	}

	query, args, err := updateBuilder.ToSql()
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
		return ErrBookingNotFound
	}

	if !status.IsOccupying() {
		return r.release(ctx, executor, id)
	}

	return nil
}

// release удаляет строки занятости бронирования
func (r *Repository) release(ctx context.Context, executor DBExecutor, bookingID int64) error {
	query, args, err := psqlbuilder.Delete("room_occupancy").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: release - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: release - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// attachSchedules загружает расписания для списка бронирований одним запросом
func (r *Repository) attachSchedules(ctx context.Context, executor DBExecutor, bookings []*domain.RoomBooking) error {
	if len(bookings) == 0 {
		return nil
	}

	byID := make(map[int64]*domain.RoomBooking, len(bookings))
	ids := make([]int64, 0, len(bookings))
	for _, b := range bookings {
		byID[b.ID] = b
		ids = append(ids, b.ID)
	}

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("room_booking_schedules").
		Where(squirrel.Eq{"booking_id": ids}).
		OrderBy("booking_id ASC", "date ASC", "start_time ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: attachSchedules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return execError("attachSchedules - execute query", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s domain.Schedule
		if err := rows.Scan(
			&s.ID,
			&s.BookingID,
			&s.Date,
			&s.StartTime,
			&s.EndTime,
			&s.Participants,
			&s.MorningTea,
			&s.Lunch,
			&s.AfternoonTea,
		); err != nil {
			return fmt.Errorf("%w: attachSchedules - scan row: %v", ErrScanRow, err)
		}
		if b, ok := byID[s.BookingID]; ok {
			b.Schedules = append(b.Schedules, s)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachSchedules - rows error: %v", ErrScanRow, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.RoomBooking, error) {
	var (
		booking              domain.RoomBooking
		rooms                pq.StringArray
		createdAt, updatedAt sql.NullTime
	)

	if err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.Purpose,
		&rooms,
		&booking.Status,
		&booking.Remarks,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	booking.SelectedRooms = make([]domain.RoomType, len(rooms))
	for i, room := range rooms {
		booking.SelectedRooms[i] = domain.RoomType(room)
	}
	booking.Schedules = make([]domain.Schedule, 0)
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

func roomStrings(rooms []domain.RoomType) []string {
	result := make([]string, len(rooms))
	for i, room := range rooms {
		result[i] = string(room)
	}
	return result
}
