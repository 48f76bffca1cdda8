package create_room_booking

import (
	"time"

	"github.com/m04kA/SMC-StaffPortal/internal/domain"
	"github.com/m04kA/SMC-StaffPortal/pkg/types"
)

// Request модель запроса на бронирование комнат
type Request struct {
	UserID    int64             // ID сотрудника (из X-User-ID)
	Purpose   string            // Цель мероприятия
	Rooms     []domain.RoomType // Выбранные комнаты, каждое расписание бронирует их все
	Schedules []ScheduleRequest // Интервалы по датам
}

// ScheduleRequest один интервал [Start, End) в дату Date
type ScheduleRequest struct {
	Date         time.Time
	Start        types.TimeString
	End          types.TimeString
	Participants int
	MorningTea   bool
	Lunch        bool
	AfternoonTea bool
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64
	UserID    int64
	Purpose   string
	Rooms     []domain.RoomType
	Schedules []domain.Schedule
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
