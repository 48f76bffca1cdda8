package get_room_grid

import (
	"context"

	getRoomGrid "github.com/m04kA/SMC-StaffPortal/internal/usecase/get_room_grid"
)

type GetRoomGridUseCase interface {
	Execute(ctx context.Context, req *getRoomGrid.Request) (*getRoomGrid.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
