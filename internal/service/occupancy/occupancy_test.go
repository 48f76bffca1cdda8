package occupancy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StaffPortal/internal/domain"
	"github.com/m04kA/SMC-StaffPortal/pkg/types"
)

const elaiese domain.RoomType = "ELAIESE"

var day = time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)

func schedule(id int64, date time.Time, start, end string) domain.Schedule {
	return domain.Schedule{ID: id, Date: date, StartTime: types.TimeString(start), EndTime: types.TimeString(end)}
}

func booking(id int64, status domain.BookingStatus, rooms []domain.RoomType, schedules ...domain.Schedule) *domain.RoomBooking {
	return &domain.RoomBooking{ID: id, Status: status, SelectedRooms: rooms, Schedules: schedules, Purpose: "weekly sync"}
}

func occupant(bookingID int64, start, end string) Occupant {
	return Occupant{
		BookingID: bookingID,
		Room:      elaiese,
		Interval:  domain.TimeInterval{Date: day, Start: types.TimeString(start), End: types.TimeString(end)},
	}
}

func TestTimeToMinutes(t *testing.T) {
	assert.Equal(t, 0, TimeToMinutes("00:00"))
	assert.Equal(t, 690, TimeToMinutes("11:30"))
	assert.Equal(t, types.InvalidMinutes, TimeToMinutes("11h30"))
	assert.Equal(t, types.InvalidMinutes, TimeToMinutes(""))
}

func TestOccupantsFor(t *testing.T) {
	other := domain.RoomType("CEMPAKA")
	nextDay := day.AddDate(0, 0, 1)

	bookings := []*domain.RoomBooking{
		booking(1, domain.StatusApproved, []domain.RoomType{elaiese}, schedule(11, day, "10:00", "11:30"), schedule(12, nextDay, "10:00", "11:00")),
		booking(2, domain.StatusCancelled, []domain.RoomType{elaiese}, schedule(21, day, "13:00", "14:00")),
		booking(3, domain.StatusRejected, []domain.RoomType{elaiese}, schedule(31, day, "15:00", "16:00")),
		booking(4, domain.StatusPending, []domain.RoomType{other}, schedule(41, day, "09:00", "10:00")),
		booking(5, domain.StatusPending, []domain.RoomType{other, elaiese}, schedule(51, day, "16:00", "17:00")),
		nil,
	}

	got := OccupantsFor(elaiese, day, bookings)

	require.Len(t, got, 2)
	assert.Equal(t, int64(11), got[0].ScheduleID)
	assert.Equal(t, int64(1), got[0].BookingID)
	assert.Equal(t, int64(51), got[1].ScheduleID)
	assert.Equal(t, elaiese, got[1].Room)
}

func TestIsSlotOccupied_FirstMatchWins(t *testing.T) {
	occupants := []Occupant{occupant(1, "10:00", "11:00"), occupant(2, "10:30", "12:00")}

	occ, found := IsSlotOccupied(TimeToMinutes("10:30"), occupants)
	require.True(t, found)
	assert.Equal(t, int64(1), occ.BookingID)

	_, found = IsSlotOccupied(TimeToMinutes("12:00"), occupants)
	assert.False(t, found, "end instant is excluded")
}

func TestIntervalsOverlap(t *testing.T) {
	a := domain.TimeInterval{Start: "09:00", End: "10:00"}
	b := domain.TimeInterval{Start: "10:00", End: "11:00"}
	c := domain.TimeInterval{Start: "09:00", End: "10:30"}

	assert.False(t, IntervalsOverlap(a, b))
	assert.True(t, IntervalsOverlap(c, b))
	assert.Equal(t, IntervalsOverlap(b, c), IntervalsOverlap(c, b))
	assert.True(t, IntervalsOverlap(a, a))
}

func TestValidateProposedInterval(t *testing.T) {
	existing := []Occupant{occupant(7, "10:00", "11:30")}

	tests := []struct {
		name        string
		start, end  types.TimeString
		want        Verdict
		wantBooking int64
	}{
		{name: "free before", start: "08:00", end: "10:00", want: VerdictOK},
		{name: "free after", start: "11:30", end: "12:00", want: VerdictOK},
		{name: "overlap start", start: "09:30", end: "10:30", want: VerdictConflict, wantBooking: 7},
		{name: "inside", start: "10:30", end: "11:00", want: VerdictConflict, wantBooking: 7},
		{name: "covers", start: "09:00", end: "12:00", want: VerdictConflict, wantBooking: 7},
		{name: "zero duration", start: "09:00", end: "09:00", want: VerdictInvalidRange},
		{name: "negative duration", start: "12:00", end: "09:00", want: VerdictInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateProposedInterval(elaiese, day, tt.start, tt.end, existing)
			assert.Equal(t, tt.want, got.Verdict)
			if tt.want == VerdictConflict {
				require.NotNil(t, got.Conflict)
				assert.Equal(t, tt.wantBooking, got.Conflict.BookingID)
			} else {
				assert.Nil(t, got.Conflict)
			}
		})
	}
}

func TestValidateProposedInterval_ZeroDurationRejectedWithoutBookings(t *testing.T) {
	got := ValidateProposedInterval(elaiese, day, "14:00", "14:00", nil)
	assert.Equal(t, VerdictInvalidRange, got.Verdict)
	assert.False(t, got.OK())
}

func TestValidateProposedInterval_IgnoresOtherRoomsAndDays(t *testing.T) {
	otherRoom := occupant(1, "10:00", "11:00")
	otherRoom.Room = "CEMPAKA"
	otherDay := occupant(2, "10:00", "11:00")
	otherDay.Interval.Date = day.AddDate(0, 0, 1)

	got := ValidateProposedInterval(elaiese, day, "10:00", "11:00", []Occupant{otherRoom, otherDay})
	assert.True(t, got.OK())
}
