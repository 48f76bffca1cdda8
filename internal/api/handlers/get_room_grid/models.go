package get_room_grid

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-StaffPortal/internal/domain"
	"github.com/m04kA/SMC-StaffPortal/internal/service/occupancy"
	getRoomGrid "github.com/m04kA/SMC-StaffPortal/internal/usecase/get_room_grid"
	"github.com/m04kA/SMC-StaffPortal/pkg/types"
)

// GridResponse HTTP response model
type GridResponse struct {
	Date           string        `json:"date"`
	Slots          []string      `json:"slots"` // "00:00" ... "23:30"
	Rooms          []RowResponse `json:"rooms"`
	AmbiguousCells int           `json:"ambiguousCells"`
}

// RowResponse строка сетки по комнате
type RowResponse struct {
	Room     string         `json:"room"`
	Name     string         `json:"name"`
	Level    string         `json:"level"`
	Capacity int            `json:"capacity"`
	Cells    []CellResponse `json:"cells"`
}

// CellResponse ячейка сетки
type CellResponse struct {
	Time       string  `json:"time"`
	State      string  `json:"state"` // available | occupied | selected
	IsStart    bool    `json:"isStart,omitempty"`
	Ambiguous  bool    `json:"ambiguous,omitempty"`
	BookingID  *int64  `json:"bookingId,omitempty"`
	ScheduleID *int64  `json:"scheduleId,omitempty"`
	Purpose    *string `json:"purpose,omitempty"`
	Status     *string `json:"status,omitempty"`
	Until      *string `json:"until,omitempty"` // конец занятого интервала
}

// ToUseCaseRequest собирает запрос из query параметров
// date=YYYY-MM-DD (обязательно), rooms=A,B (опционально), pendingRoom + pendingStart (опционально)
func ToUseCaseRequest(dateStr, roomsStr, pendingRoom, pendingStart string) (*getRoomGrid.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	req := &getRoomGrid.Request{Date: date}

	for _, room := range strings.Split(roomsStr, ",") {
		if room = strings.TrimSpace(room); room != "" {
			req.Rooms = append(req.Rooms, domain.RoomType(room))
		}
	}

	if pendingRoom != "" {
		room := domain.RoomType(pendingRoom)
		req.PendingRoom = &room
	}
	if pendingStart != "" {
		start, err := types.NewTimeStringFromString(pendingStart)
		if err != nil {
			return nil, err
		}
		req.PendingStart = &start
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getRoomGrid.Response) *GridResponse {
	slots := occupancy.SlotTimes()
	result := &GridResponse{
		Date:           resp.Grid.Date.Format(domain.DateFormat),
		Slots:          make([]string, len(slots)),
		Rooms:          make([]RowResponse, 0, len(resp.Grid.Rows)),
		AmbiguousCells: resp.AmbiguousCells,
	}
	for i, s := range slots {
		result.Slots[i] = s.String()
	}

	for _, row := range resp.Grid.Rows {
		rowResp := RowResponse{
			Room:     string(row.Room.Type),
			Name:     row.Room.Name,
			Level:    row.Room.Level,
			Capacity: row.Room.Capacity,
			Cells:    make([]CellResponse, len(row.Cells)),
		}
		for i, cell := range row.Cells {
			rowResp.Cells[i] = FromCell(cell)
		}
		result.Rooms = append(result.Rooms, rowResp)
	}

	return result
}

// FromCell конвертирует ячейку сетки
func FromCell(cell occupancy.Cell) CellResponse {
	resp := CellResponse{
		Time:      cell.Time.String(),
		State:     string(cell.State),
		IsStart:   cell.IsStart,
		Ambiguous: cell.Ambiguous,
	}

	if occ := cell.Occupant; occ != nil {
		bookingID, scheduleID := occ.BookingID, occ.ScheduleID
		purpose, status, until := occ.Purpose, string(occ.Status), occ.Interval.End.String()
		resp.BookingID = &bookingID
		resp.ScheduleID = &scheduleID
		resp.Purpose = &purpose
		resp.Status = &status
		resp.Until = &until
	}

	return resp
}
