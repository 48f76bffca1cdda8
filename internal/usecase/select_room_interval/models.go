package select_room_interval

import (
	"time"

	"github.com/m04kA/SMC-StaffPortal/internal/domain"
	"github.com/m04kA/SMC-StaffPortal/internal/service/occupancy"
	"github.com/m04kA/SMC-StaffPortal/pkg/types"
)

// Request клик по слоту сетки. PendingStart - слот первого клика, если он был
type Request struct {
	Date         time.Time
	Room         domain.RoomType
	Slot         types.TimeString
	PendingStart *types.TimeString
}

// Response результат клика
type Response struct {
	Outcome      occupancy.Outcome
	PendingStart *types.TimeString // заполнен при OutcomePending
	Proposal     *occupancy.Proposal
	Conflict     *occupancy.Occupant
}
