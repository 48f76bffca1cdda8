package get_room_grid

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StaffPortal/internal/domain"
	"github.com/m04kA/SMC-StaffPortal/internal/service/occupancy"
	"github.com/m04kA/SMC-StaffPortal/pkg/logger"
	"github.com/m04kA/SMC-StaffPortal/pkg/ptr"
	"github.com/m04kA/SMC-StaffPortal/pkg/types"
)

type fakeRoomRepo struct {
	rooms []*domain.Room
}

func (f *fakeRoomRepo) List(_ context.Context) ([]*domain.Room, error) {
	return f.rooms, nil
}

func (f *fakeRoomRepo) GetByTypes(_ context.Context, types []domain.RoomType) ([]*domain.Room, error) {
	result := make([]*domain.Room, 0)
	for _, r := range f.rooms {
		for _, t := range types {
			if r.Type == t {
				result = append(result, r)
			}
		}
	}
	return result, nil
}

type fakeBookingRepo struct {
	bookings []*domain.RoomBooking
	err      error
	filter   domain.BookingsFilter
}

func (f *fakeBookingRepo) GetByFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.RoomBooking, error) {
	f.filter = filter
	return f.bookings, f.err
}

var day = time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)

func rooms() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: []*domain.Room{
		{ID: 1, Name: "Elaiese", Type: "ELAIESE", Capacity: 12},
		{ID: 2, Name: "Borneo", Type: "BORNEO", Capacity: 8},
	}}
}

func bookingAt(id int64, start, end types.TimeString) *domain.RoomBooking {
	return &domain.RoomBooking{
		ID:            id,
		UserID:        5,
		Purpose:       "Sync",
		SelectedRooms: []domain.RoomType{"ELAIESE"},
		Status:        domain.StatusApproved,
		Schedules: []domain.Schedule{
			{ID: id * 10, BookingID: id, Date: day, StartTime: start, EndTime: end, Participants: 4},
		},
	}
}

func TestExecute_AllRooms(t *testing.T) {
	bookingRepo := &fakeBookingRepo{bookings: []*domain.RoomBooking{bookingAt(1, "10:00", "11:30")}}
	uc := NewUseCase(rooms(), bookingRepo, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{Date: day.Add(15 * time.Hour)})
	require.NoError(t, err)

	require.Len(t, resp.Grid.Rows, 2)
	assert.Equal(t, 0, resp.AmbiguousCells)

	require.NotNil(t, bookingRepo.filter.StartDate)
	assert.True(t, bookingRepo.filter.StartDate.Equal(day))

	elaiese := resp.Grid.Rows[0]
	require.Len(t, elaiese.Cells, 48)
	assert.Equal(t, occupancy.CellOccupied, elaiese.Cells[20].State) // 10:00
	assert.True(t, elaiese.Cells[20].IsStart)
	assert.False(t, elaiese.Cells[21].IsStart)
	assert.Equal(t, occupancy.CellAvailable, elaiese.Cells[23].State) // 11:30

	borneo := resp.Grid.Rows[1]
	assert.Equal(t, occupancy.CellAvailable, borneo.Cells[20].State)
}

func TestExecute_PendingSelection(t *testing.T) {
	uc := NewUseCase(rooms(), &fakeBookingRepo{}, logger.NewNop())

	room := domain.RoomType("borneo")
	resp, err := uc.Execute(context.Background(), &Request{
		Date:         day,
		Rooms:        []domain.RoomType{"Borneo"},
		PendingRoom:  &room,
		PendingStart: ptr.Ptr(types.TimeString("14:00")),
	})
	require.NoError(t, err)

	require.Len(t, resp.Grid.Rows, 1)
	assert.Equal(t, occupancy.CellSelected, resp.Grid.Rows[0].Cells[28].State)
}

func TestExecute_AmbiguousCells(t *testing.T) {
	bookingRepo := &fakeBookingRepo{bookings: []*domain.RoomBooking{
		bookingAt(1, "10:00", "11:00"),
		bookingAt(2, "10:30", "11:30"),
	}}
	uc := NewUseCase(rooms(), bookingRepo, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{Date: day, Rooms: []domain.RoomType{"ELAIESE"}})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.AmbiguousCells)
	cell := resp.Grid.Rows[0].Cells[21] // 10:30
	assert.True(t, cell.Ambiguous)
	require.NotNil(t, cell.Occupant)
	assert.Equal(t, int64(1), cell.Occupant.BookingID)
}

func TestExecute_Errors(t *testing.T) {
	room := domain.RoomType("ELAIESE")

	tests := []struct {
		name    string
		req     *Request
		repoErr error
		wantErr error
	}{
		{"missing date", &Request{}, nil, ErrInvalidInput},
		{"pending start without room", &Request{Date: day, PendingStart: ptr.Ptr(types.TimeString("10:00"))}, nil, ErrInvalidInput},
		{"malformed pending start", &Request{Date: day, PendingRoom: &room, PendingStart: ptr.Ptr(types.TimeString("25:00"))}, nil, ErrInvalidInput},
		{"unknown room", &Request{Date: day, Rooms: []domain.RoomType{"ATTIC"}}, nil, ErrRoomNotFound},
		{"repository failure", &Request{Date: day}, errors.New("connection reset"), ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(rooms(), &fakeBookingRepo{err: tt.repoErr}, logger.NewNop())
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
