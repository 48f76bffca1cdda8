package create_room_booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StaffPortal/internal/domain"
	roomBookingRepo "github.com/m04kA/SMC-StaffPortal/internal/infra/storage/roombooking"
	"github.com/m04kA/SMC-StaffPortal/pkg/logger"
	"github.com/m04kA/SMC-StaffPortal/pkg/txmanager"
	"github.com/m04kA/SMC-StaffPortal/pkg/types"
)

type fakeBookingRepo struct {
	existing  []*domain.RoomBooking
	getErr    error
	createErr error
	created   *domain.RoomBooking
	filter    domain.BookingsFilter
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.RoomBooking) (*domain.RoomBooking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	b.ID = 100
	f.created = b
	return b, nil
}

func (f *fakeBookingRepo) GetByFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.RoomBooking, error) {
	f.filter = filter
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.existing, nil
}

type fakeRoomRepo struct {
	rooms map[domain.RoomType]*domain.Room
}

func (f *fakeRoomRepo) GetByTypes(_ context.Context, types []domain.RoomType) ([]*domain.Room, error) {
	result := make([]*domain.Room, 0)
	for _, t := range types {
		if r, ok := f.rooms[t]; ok {
			result = append(result, r)
		}
	}
	return result, nil
}

type fakeTxManager struct {
	calls     int
	commitErr error
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if err := fn(ctx); err != nil {
		return err
	}
	return f.commitErr
}

type countingCounter struct {
	n int
}

func (c *countingCounter) Inc() { c.n++ }

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

var day = time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)

func newTestUseCase(repo *fakeBookingRepo, counter *countingCounter) *UseCase {
	return newTestUseCaseWithTx(repo, counter, &fakeTxManager{})
}

func newTestUseCaseWithTx(repo *fakeBookingRepo, counter *countingCounter, tx TransactionManager) *UseCase {
	rooms := &fakeRoomRepo{rooms: map[domain.RoomType]*domain.Room{
		"ELAIESE": {ID: 1, Name: "Elaiese", Type: "ELAIESE", Capacity: 10},
		"BOARD":   {ID: 2, Name: "Board", Type: "BOARD", Capacity: 4},
	}}
	uc := NewUseCase(repo, rooms, tx, counter, time.UTC, logger.NewNop())
	uc.timeProvider = fixedTime{now: day.Add(-24 * time.Hour)}
	return uc
}

func validRequest() *Request {
	return &Request{
		UserID:  7,
		Purpose: "Quarterly review",
		Rooms:   []domain.RoomType{"elaiese"},
		Schedules: []ScheduleRequest{
			{Date: day, Start: "10:00", End: "11:00", Participants: 5},
		},
	}
}

func existingBooking(start, end string) *domain.RoomBooking {
	return &domain.RoomBooking{
		ID:            42,
		UserID:        3,
		Purpose:       "Standup",
		SelectedRooms: []domain.RoomType{"ELAIESE"},
		Status:        domain.StatusApproved,
		Schedules: []domain.Schedule{
			{ID: 420, BookingID: 42, Date: day, StartTime: types.TimeString(start), EndTime: types.TimeString(end)},
		},
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeBookingRepo{existing: []*domain.RoomBooking{existingBooking("09:00", "10:00")}}
	uc := newTestUseCase(repo, &countingCounter{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, []domain.RoomType{"ELAIESE"}, resp.Rooms)
	require.Len(t, repo.created.Schedules, 1)
	assert.Equal(t, "10:00", repo.created.Schedules[0].StartTime.String())
	require.NotNil(t, repo.filter.StartDate)
	assert.True(t, repo.filter.StartDate.Equal(day))
}

func TestExecute_Conflict(t *testing.T) {
	repo := &fakeBookingRepo{existing: []*domain.RoomBooking{existingBooking("10:30", "12:00")}}
	counter := &countingCounter{}
	uc := newTestUseCase(repo, counter)

	_, err := uc.Execute(context.Background(), validRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	var conflict *ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, int64(42), conflict.BookingID)
	assert.Equal(t, int64(420), conflict.ScheduleID)
	assert.Nil(t, repo.created)
	assert.Equal(t, 1, counter.n)
}

func TestExecute_IgnoresCancelledBookings(t *testing.T) {
	cancelled := existingBooking("10:00", "11:00")
	cancelled.Status = domain.StatusCancelled
	repo := &fakeBookingRepo{existing: []*domain.RoomBooking{cancelled}}
	uc := newTestUseCase(repo, &countingCounter{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
}

func TestExecute_ConstraintViolation(t *testing.T) {
	repo := &fakeBookingRepo{createErr: roomBookingRepo.ErrSlotNotAvailable}
	counter := &countingCounter{}
	uc := newTestUseCase(repo, counter)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Equal(t, 1, counter.n)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{
			name:    "empty purpose",
			mutate:  func(r *Request) { r.Purpose = "  " },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "no rooms",
			mutate:  func(r *Request) { r.Rooms = nil },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "zero length interval",
			mutate:  func(r *Request) { r.Schedules[0].End = "10:00" },
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "inverted interval",
			mutate:  func(r *Request) { r.Schedules[0].End = "09:00" },
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "malformed time",
			mutate:  func(r *Request) { r.Schedules[0].Start = "25:00" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "past date",
			mutate:  func(r *Request) { r.Schedules[0].Date = day.AddDate(0, 0, -3) },
			wantErr: ErrDateInPast,
		},
		{
			name: "self overlap",
			mutate: func(r *Request) {
				r.Schedules = append(r.Schedules, ScheduleRequest{Date: day, Start: "10:30", End: "11:30", Participants: 2})
			},
			wantErr: ErrOverlappingSchedules,
		},
		{
			name:    "unknown room",
			mutate:  func(r *Request) { r.Rooms = []domain.RoomType{"ATTIC"} },
			wantErr: ErrRoomNotFound,
		},
		{
			name:    "capacity",
			mutate:  func(r *Request) { r.Rooms = []domain.RoomType{"BOARD"} },
			wantErr: ErrCapacityExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeBookingRepo{}
			uc := newTestUseCase(repo, &countingCounter{})
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, repo.created)
		})
	}
}

func TestExecute_AdjacentSchedulesAllowed(t *testing.T) {
	repo := &fakeBookingRepo{existing: []*domain.RoomBooking{existingBooking("11:00", "12:00")}}
	uc := newTestUseCase(repo, &countingCounter{})
	req := validRequest()
	req.Schedules = append(req.Schedules, ScheduleRequest{Date: day, Start: "12:00", End: "13:00", Participants: 3})

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Len(t, repo.created.Schedules, 2)
}

func TestExecute_SerializationFailureIsConflict(t *testing.T) {
	serializationErr := fmt.Errorf("%w: could not serialize access", txmanager.ErrSerialization)

	tests := []struct {
		name string
		repo *fakeBookingRepo
		tx   *fakeTxManager
	}{
		{
			name: "on read",
			repo: &fakeBookingRepo{getErr: serializationErr},
			tx:   &fakeTxManager{},
		},
		{
			name: "on insert",
			repo: &fakeBookingRepo{createErr: serializationErr},
			tx:   &fakeTxManager{},
		},
		{
			name: "on commit",
			repo: &fakeBookingRepo{},
			tx:   &fakeTxManager{commitErr: fmt.Errorf("%w: %w", txmanager.ErrCommitTx, txmanager.ErrSerialization)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := &countingCounter{}
			uc := newTestUseCaseWithTx(tt.repo, counter, tt.tx)

			_, err := uc.Execute(context.Background(), validRequest())

			assert.ErrorIs(t, err, ErrSlotNotAvailable)
			assert.NotErrorIs(t, err, ErrInternal)
			assert.Equal(t, 1, counter.n)
		})
	}
}

func TestExecute_RepositoryErrorIsInternal(t *testing.T) {
	counter := &countingCounter{}
	uc := newTestUseCase(&fakeBookingRepo{getErr: roomBookingRepo.ErrExecQuery}, counter)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, 0, counter.n)
}

func TestValidateDates_PortalTimezone(t *testing.T) {
	kualaLumpur := time.FixedZone("MYT", 8*60*60)
	newYork := time.FixedZone("EST", -5*60*60)
	nov20 := time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    time.Time
		now     time.Time
		loc     *time.Location
		wantErr bool
	}{
		{
			name: "today on a server west of UTC",
			date: nov20,
			now:  time.Date(2025, 11, 20, 9, 0, 0, 0, newYork),
			loc:  newYork,
		},
		{
			name:    "portal yesterday while UTC clock is still on it",
			date:    nov20.AddDate(0, 0, -1),
			now:     time.Date(2025, 11, 19, 23, 0, 0, 0, time.UTC),
			loc:     kualaLumpur,
			wantErr: true,
		},
		{
			name: "portal today late in the evening",
			date: nov20,
			now:  time.Date(2025, 11, 20, 15, 30, 0, 0, time.UTC),
			loc:  kualaLumpur,
		},
		{
			name: "future date",
			date: nov20.AddDate(0, 0, 1),
			now:  time.Date(2025, 11, 20, 23, 59, 0, 0, kualaLumpur),
			loc:  kualaLumpur,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDates([]ScheduleRequest{{Date: tt.date}}, tt.now, tt.loc)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrDateInPast)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestExecute_PastDateInPortalTimezone(t *testing.T) {
	rooms := &fakeRoomRepo{rooms: map[domain.RoomType]*domain.Room{
		"ELAIESE": {ID: 1, Name: "Elaiese", Type: "ELAIESE", Capacity: 10},
	}}
	uc := NewUseCase(&fakeBookingRepo{}, rooms, &fakeTxManager{}, nil, time.FixedZone("MYT", 8*60*60), logger.NewNop())
	// 2026-11-01 17:00 UTC = 2026-11-02 01:00 MYT
	uc.timeProvider = fixedTime{now: time.Date(2026, 11, 1, 17, 0, 0, 0, time.UTC)}

	req := validRequest()
	req.Schedules[0].Date = day.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrDateInPast)
}
