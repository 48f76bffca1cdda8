package create_travel_request

import (
	"time"

	"github.com/m04kA/SMC-StaffPortal/internal/domain"
)

// Request модель заявки на командировку
type Request struct {
	UserID        int64
	Destination   string
	Purpose       string
	TransportMode domain.TransportMode
	VehiclePlate  *string
	Start         string // дата/время начала в формате формы
	End           string
	Provided      []domain.MealDay // отметки "питание предоставлено" по дням
}

// Response созданная заявка
type Response struct {
	ID             int64
	UserID         int64
	Destination    string
	Purpose        string
	TransportMode  domain.TransportMode
	VehiclePlate   *string
	StartAt        time.Time
	EndAt          time.Time
	MealDays       []domain.MealDay
	AllowanceTotal int
	Status         string
	CreatedAt      time.Time
}
