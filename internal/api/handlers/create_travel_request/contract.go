package create_travel_request

import (
	"context"

	createTravelRequest "github.com/m04kA/SMC-StaffPortal/internal/usecase/create_travel_request"
)

type UseCase interface {
	Execute(ctx context.Context, req *createTravelRequest.Request) (*createTravelRequest.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
