package list_room_bookings

import (
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-StaffPortal/internal/service/bookings/models"
)

// ToServiceRequest собирает фильтр из query параметров
// room, startDate, endDate, date (одна дата), status, includeInactive
func ToServiceRequest(query url.Values) *models.ListBookingsRequest {
	req := &models.ListBookingsRequest{
		Room:      optional(query.Get("room")),
		StartDate: optional(query.Get("startDate")),
		EndDate:   optional(query.Get("endDate")),
		Status:    optional(query.Get("status")),
	}

	// date - сокращение для startDate = endDate
	if date := query.Get("date"); date != "" {
		req.StartDate = &date
		req.EndDate = &date
	}

	req.IncludeInactive, _ = strconv.ParseBool(query.Get("includeInactive"))

	return req
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
