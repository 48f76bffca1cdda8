package list_rooms

import "github.com/m04kA/SMC-StaffPortal/internal/domain"

// RoomResponse HTTP response model
type RoomResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Level    string `json:"level"`
	Type     string `json:"type"`
	Capacity int    `json:"capacity"`
}

// FromDomainRooms конвертирует справочник комнат в HTTP ответ
func FromDomainRooms(rooms []*domain.Room) []RoomResponse {
	resp := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		resp = append(resp, RoomResponse{
			ID:       r.ID,
			Name:     r.Name,
			Level:    r.Level,
			Type:     string(r.Type),
			Capacity: r.Capacity,
		})
	}
	return resp
}
