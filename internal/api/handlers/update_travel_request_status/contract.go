package update_travel_request_status

import (
	"context"

	"github.com/m04kA/SMC-StaffPortal/internal/service/travel/models"
)

type TravelService interface {
	UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
