package create_room_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-StaffPortal/internal/domain"
	"github.com/m04kA/SMC-StaffPortal/internal/service/bookings/models"
	createRoomBooking "github.com/m04kA/SMC-StaffPortal/internal/usecase/create_room_booking"
	"github.com/m04kA/SMC-StaffPortal/pkg/types"
)

// CreateRoomBookingRequest HTTP request model
type CreateRoomBookingRequest struct {
	Purpose   string            `json:"purpose"`
	Rooms     []string          `json:"rooms"` // ["ELAIESE", "BOARD"]
	Schedules []ScheduleRequest `json:"schedules"`
}

// ScheduleRequest один интервал бронирования
type ScheduleRequest struct {
	Date         string `json:"date"`      // "2025-10-15"
	StartTime    string `json:"startTime"` // "10:00"
	EndTime      string `json:"endTime"`   // "11:30"
	Participants int    `json:"participants"`
	MorningTea   bool   `json:"morningTea"`
	Lunch        bool   `json:"lunch"`
	AfternoonTea bool   `json:"afternoonTea"`
}

// ConflictResponse тело 409: с каким бронированием пересёкся интервал
type ConflictResponse struct {
	Error      string `json:"error"`
	Room       string `json:"room,omitempty"`
	Date       string `json:"date,omitempty"`
	BookingID  int64  `json:"bookingId,omitempty"`
	ScheduleID int64  `json:"scheduleId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateRoomBookingRequest) ToUseCaseRequest(userID int64) (*createRoomBooking.Request, error) {
	req := &createRoomBooking.Request{
		UserID:    userID,
		Purpose:   r.Purpose,
		Rooms:     make([]domain.RoomType, len(r.Rooms)),
		Schedules: make([]createRoomBooking.ScheduleRequest, len(r.Schedules)),
	}

	for i, room := range r.Rooms {
		req.Rooms[i] = domain.RoomType(room)
	}

	for i, s := range r.Schedules {
		date, err := time.Parse(domain.DateFormat, s.Date)
		if err != nil {
			return nil, fmt.Errorf("schedule %d: date: %w", i, err)
		}
		start, err := types.NewTimeStringFromString(s.StartTime)
		if err != nil {
			return nil, fmt.Errorf("schedule %d: startTime: %w", i, err)
		}
		end, err := types.NewTimeStringFromString(s.EndTime)
		if err != nil {
			return nil, fmt.Errorf("schedule %d: endTime: %w", i, err)
		}

		req.Schedules[i] = createRoomBooking.ScheduleRequest{
			Date:         date,
			Start:        start,
			End:          end,
			Participants: s.Participants,
			MorningTea:   s.MorningTea,
			Lunch:        s.Lunch,
			AfternoonTea: s.AfternoonTea,
		}
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createRoomBooking.Response) *models.BookingResponse {
	booking := &domain.RoomBooking{
		ID:            resp.ID,
		UserID:        resp.UserID,
		Purpose:       resp.Purpose,
		SelectedRooms: resp.Rooms,
		Schedules:     resp.Schedules,
		Status:        domain.BookingStatus(resp.Status),
		CreatedAt:     resp.CreatedAt,
		UpdatedAt:     resp.UpdatedAt,
	}
	return models.FromDomainBooking(booking)
}
