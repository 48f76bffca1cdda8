package get_room_grid

import (
	"context"

	"github.com/m04kA/SMC-StaffPortal/internal/domain"
)

// RoomRepository интерфейс справочника комнат
type RoomRepository interface {
	List(ctx context.Context) ([]*domain.Room, error)
	GetByTypes(ctx context.Context, types []domain.RoomType) ([]*domain.Room, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.RoomBooking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
