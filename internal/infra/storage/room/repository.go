package room

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-StaffPortal/internal/domain"
	"github.com/m04kA/SMC-StaffPortal/pkg/dbmetrics"
	"github.com/m04kA/SMC-StaffPortal/pkg/psqlbuilder"
)

var roomColumns = []string{"id", "name", "level", "type", "capacity"}

// Repository справочник комнат (только чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория комнат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все комнаты, упорядоченные по этажу и названию
func (r *Repository) List(ctx context.Context) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		OrderBy("level ASC", "name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, executor, query, args, "List")
}

// GetByTypes возвращает комнаты по идентификаторам
func (r *Repository) GetByTypes(ctx context.Context, types []domain.RoomType) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	keys := make([]string, len(types))
	for i, t := range types {
		keys[i] = string(t)
	}

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"type": keys}).
		OrderBy("level ASC", "name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTypes - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, executor, query, args, "GetByTypes")
}

// GetByType возвращает одну комнату
func (r *Repository) GetByType(ctx context.Context, roomType domain.RoomType) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"type": string(roomType)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByType - build select query: %v", ErrBuildQuery, err)
	}

	var room domain.Room
	err = executor.QueryRowContext(ctx, query, args...).Scan(&room.ID, &room.Name, &room.Level, &room.Type, &room.Capacity)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByType - scan room: %v", ErrScanRow, err)
	}

	return &room, nil
}

func (r *Repository) query(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) ([]*domain.Room, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(&room.ID, &room.Name, &room.Level, &room.Type, &room.Capacity); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		rooms = append(rooms, &room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return rooms, nil
}
