package get_travel_request

import (
	"context"

	"github.com/m04kA/SMC-StaffPortal/internal/service/travel/models"
)

type TravelService interface {
	GetByID(ctx context.Context, id int64) (*models.TravelRequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
