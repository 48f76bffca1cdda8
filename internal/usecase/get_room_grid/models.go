package get_room_grid

import (
	"time"

	"github.com/m04kA/SMC-StaffPortal/internal/domain"
	"github.com/m04kA/SMC-StaffPortal/internal/service/occupancy"
	"github.com/m04kA/SMC-StaffPortal/pkg/types"
)

// Request модель запроса сетки занятости
type Request struct {
	Date  time.Time         // Дата (без времени)
	Rooms []domain.RoomType // Ограничить сетку комнатами (пусто - все)

	// Незавершённый выбор (первый клик), подсвечивается как selected
	PendingRoom  *domain.RoomType
	PendingStart *types.TimeString
}

// Response сетка занятости на день
type Response struct {
	Grid           occupancy.Grid
	AmbiguousCells int // ячейки, попавшие сразу в несколько интервалов
}
