package create_travel_request

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StaffPortal/internal/domain"
)

// TravelRepository интерфейс репозитория заявок на командировку
type TravelRepository interface {
	Create(ctx context.Context, req *domain.TravelRequest) (*domain.TravelRequest, error)
}

// RangeParser разбор дат поездки с явными ошибками (allowance.Calculator)
type RangeParser interface {
	ParseRange(start, end string) (time.Time, time.Time, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
