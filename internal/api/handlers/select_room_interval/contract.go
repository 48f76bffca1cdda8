package select_room_interval

import (
	"context"

	selectRoomInterval "github.com/m04kA/SMC-StaffPortal/internal/usecase/select_room_interval"
)

type SelectRoomIntervalUseCase interface {
	Execute(ctx context.Context, req *selectRoomInterval.Request) (*selectRoomInterval.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
