package bookings

import (
	"context"

	"github.com/m04kA/SMC-StaffPortal/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.RoomBooking, error)
	GetByFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.RoomBooking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, remarks *string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
