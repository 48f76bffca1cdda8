package select_room_interval

import (
	"time"

	"github.com/m04kA/SMC-StaffPortal/internal/domain"
	selectRoomInterval "github.com/m04kA/SMC-StaffPortal/internal/usecase/select_room_interval"
	"github.com/m04kA/SMC-StaffPortal/pkg/types"
)

// SelectRequest HTTP request model
type SelectRequest struct {
	Date         string  `json:"date"` // "2025-10-15"
	Room         string  `json:"room"`
	Slot         string  `json:"slot"`                   // "10:30"
	PendingStart *string `json:"pendingStart,omitempty"` // слот первого клика
}

// SelectResponse HTTP response model
type SelectResponse struct {
	Outcome      string            `json:"outcome"` // pending | proposed | rejected | cancelled
	PendingStart *string           `json:"pendingStart,omitempty"`
	Proposal     *ProposalResponse `json:"proposal,omitempty"`
	Conflict     *ConflictResponse `json:"conflict,omitempty"`
}

// ProposalResponse интервал для формы бронирования
type ProposalResponse struct {
	Room      string `json:"room"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ConflictResponse с чем пересёкся интервал
type ConflictResponse struct {
	BookingID  int64  `json:"bookingId"`
	ScheduleID int64  `json:"scheduleId"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Purpose    string `json:"purpose"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SelectRequest) ToUseCaseRequest() (*selectRoomInterval.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	slot, err := types.NewTimeStringFromString(r.Slot)
	if err != nil {
		return nil, err
	}

	req := &selectRoomInterval.Request{
		Date: date,
		Room: domain.RoomType(r.Room),
		Slot: slot,
	}

	if r.PendingStart != nil && *r.PendingStart != "" {
		start, err := types.NewTimeStringFromString(*r.PendingStart)
		if err != nil {
			return nil, err
		}
		req.PendingStart = &start
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *selectRoomInterval.Response) *SelectResponse {
	result := &SelectResponse{Outcome: string(resp.Outcome)}

	if resp.PendingStart != nil {
		start := resp.PendingStart.String()
		result.PendingStart = &start
	}

	if p := resp.Proposal; p != nil {
		result.Proposal = &ProposalResponse{
			Room:      string(p.Room),
			Date:      p.Date.Format(domain.DateFormat),
			StartTime: p.Start.String(),
			EndTime:   p.End.String(),
		}
	}

	if c := resp.Conflict; c != nil {
		result.Conflict = &ConflictResponse{
			BookingID:  c.BookingID,
			ScheduleID: c.ScheduleID,
			StartTime:  c.Interval.Start.String(),
			EndTime:    c.Interval.End.String(),
			Purpose:    c.Purpose,
		}
	}

	return result
}
