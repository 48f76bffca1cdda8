package occupancy

import (
	"time"

	"github.com/m04kA/SMC-StaffPortal/internal/domain"
	"github.com/m04kA/SMC-StaffPortal/pkg/types"
)

// CellState состояние ячейки сетки
type CellState string

const (
	CellAvailable CellState = "available"
	CellOccupied  CellState = "occupied"
	CellSelected  CellState = "selected" // первый клик выбора, ожидается второй; важнее occupied
)

// Cell ячейка сетки (комната x 30-минутный слот)
type Cell struct {
	Time      types.TimeString
	State     CellState
	IsStart   bool      // первый слот занятого блока, в нём рисуется подпись
	Ambiguous bool      // слот содержится в нескольких сохранённых интервалах
	Occupant  *Occupant // кем занят слот
}

// Row строка сетки по комнате
type Row struct {
	Room  domain.Room
	Cells []Cell
}

// Grid сетка занятости на день
type Grid struct {
	Date time.Time
	Rows []Row
}

// SlotTimes границы слотов 00:00, 00:30, ... 23:30
func SlotTimes() []types.TimeString {
	slots := make([]types.TimeString, 0, domain.GridSlotsPerDay)
	for i := 0; i < domain.GridSlotsPerDay; i++ {
		slot, _ := types.FromMinutes(i * domain.GridSlotMinutes)
		slots = append(slots, slot)
	}
	return slots
}

// ClassifySlot классифицирует один слот комнаты.
// IsStart выставляется, если предыдущий слот не входит в тот же интервал
func ClassifySlot(slot types.TimeString, occupants []Occupant) Cell {
	instant := slot.Minutes()

	occ, found := IsSlotOccupied(instant, occupants)
	if !found {
		return Cell{Time: slot, State: CellAvailable}
	}

	return Cell{
		Time:      slot,
		State:     CellOccupied,
		IsStart:   !occ.Interval.Contains(instant - domain.GridSlotMinutes),
		Ambiguous: matchCount(instant, occupants) > 1,
		Occupant:  &occ,
	}
}

// BuildRow строит строку сетки для комнаты. selection подсвечивает ожидающий первый клик,
// в том числе на занятом слоте: Occupant и IsStart у такой ячейки сохраняются
func BuildRow(room domain.Room, occupants []Occupant, selection Selection) Row {
	slots := SlotTimes()
	cells := make([]Cell, len(slots))

	pendingStart, pending := selection.PendingFor(room.Type)

	for i, slot := range slots {
		cell := ClassifySlot(slot, occupants)
		if pending && slot == pendingStart {
			cell.State = CellSelected
		}
		cells[i] = cell
	}

	return Row{Room: room, Cells: cells}
}

// BuildGrid строит сетку по всем комнатам на день
func BuildGrid(day time.Time, rooms []*domain.Room, bookings []*domain.RoomBooking, selection Selection) Grid {
	rows := make([]Row, 0, len(rooms))
	for _, room := range rooms {
		if room == nil {
			continue
		}
		occupants := OccupantsFor(room.Type, day, bookings)
		rows = append(rows, BuildRow(*room, occupants, selection))
	}
	return Grid{Date: domain.DateOnly(day), Rows: rows}
}

// AmbiguousCells количество неоднозначных ячеек в сетке
func (g Grid) AmbiguousCells() int {
	count := 0
	for _, row := range g.Rows {
		for _, cell := range row.Cells {
			if cell.Ambiguous {
				count++
			}
		}
	}
	return count
}
