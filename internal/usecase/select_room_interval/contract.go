package select_room_interval

import (
	"context"

	"github.com/m04kA/SMC-StaffPortal/internal/domain"
)

// RoomRepository интерфейс справочника комнат
type RoomRepository interface {
	GetByType(ctx context.Context, roomType domain.RoomType) (*domain.Room, error)
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
