package create_room_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StaffPortal/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.RoomBooking) (*domain.RoomBooking, error)
	GetByFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.RoomBooking, error)
}

// RoomRepository интерфейс справочника комнат
type RoomRepository interface {
	GetByTypes(ctx context.Context, types []domain.RoomType) ([]*domain.Room, error)
}

// TransactionManager интерфейс для управления транзакциями.
// DoSerializable сам повторяет fn при конфликте сериализации
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// ConflictCounter счётчик отклонённых из-за пересечения заявок (prometheus.Counter)
type ConflictCounter interface {
	Inc()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

type nopCounter struct{}

func (nopCounter) Inc() {}
