package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-StaffPortal/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidDate возвращается при некорректной дате фильтра
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID int64   `json:"userId"`
	Reason *string `json:"reason,omitempty"`
}

// UpdateStatusRequest запрос на смену статуса (экран согласования)
type UpdateStatusRequest struct {
	UserID  int64   `json:"userId"`
	Status  string  `json:"status"`
	Remarks *string `json:"remarks,omitempty"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID          int64   `json:"userId"`
	Status          *string `json:"status,omitempty"`
	IncludeInactive bool    `json:"includeInactive,omitempty"`
}

// ListBookingsRequest запрос на выборку бронирований (очередь согласования, календарь)
type ListBookingsRequest struct {
	Room            *string `json:"room,omitempty"`
	StartDate       *string `json:"startDate,omitempty"` // "2025-10-15"
	EndDate         *string `json:"endDate,omitempty"`
	Status          *string `json:"status,omitempty"`
	IncludeInactive bool    `json:"includeInactive,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{IncludeInactive: r.IncludeInactive}

	if r.Room != nil && *r.Room != "" {
		room := domain.RoomType(*r.Room).Normalize()
		filter.Room = &room
	}

	startDate, err := parseDate(r.StartDate)
	if err != nil {
		return filter, err
	}
	filter.StartDate = startDate

	endDate, err := parseDate(r.EndDate)
	if err != nil {
		return filter, err
	}
	filter.EndDate = endDate

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

func parseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	date, err := time.Parse(domain.DateFormat, *value)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &date, nil
}

// Response модели

// ScheduleResponse интервал бронирования
type ScheduleResponse struct {
	ID           int64  `json:"id"`
	Date         string `json:"date"`      // "2025-10-15"
	StartTime    string `json:"startTime"` // "10:00"
	EndTime      string `json:"endTime"`   // "11:30"
	Participants int    `json:"participants"`
	MorningTea   bool   `json:"morningTea"`
	Lunch        bool   `json:"lunch"`
	AfternoonTea bool   `json:"afternoonTea"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64              `json:"id"`
	UserID      int64              `json:"userId"`
	Purpose     string             `json:"purpose"`
	Rooms       []string           `json:"rooms"`
	Schedules   []ScheduleResponse `json:"schedules"`
	Status      string             `json:"status"`
	Remarks     *string            `json:"remarks,omitempty"`
	CancelledAt *string            `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainSchedule конвертирует интервал в DTO
func FromDomainSchedule(s domain.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:           s.ID,
		Date:         s.Date.Format(domain.DateFormat),
		StartTime:    s.StartTime.String(),
		EndTime:      s.EndTime.String(),
		Participants: s.Participants,
		MorningTea:   s.MorningTea,
		Lunch:        s.Lunch,
		AfternoonTea: s.AfternoonTea,
	}
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.RoomBooking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:        b.ID,
		UserID:    b.UserID,
		Purpose:   b.Purpose,
		Rooms:     make([]string, len(b.SelectedRooms)),
		Schedules: make([]ScheduleResponse, len(b.Schedules)),
		Status:    string(b.Status),
		Remarks:   b.Remarks,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}

	for i, room := range b.SelectedRooms {
		resp.Rooms[i] = string(room)
	}
	for i, s := range b.Schedules {
		resp.Schedules[i] = FromDomainSchedule(s)
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.RoomBooking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s, ok := domain.ParseBookingStatus(status)
	if !ok {
		return "", ErrInvalidStatus
	}
	return s, nil
}
