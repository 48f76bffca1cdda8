package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:30", want: 570},
		{in: "9:30", want: 570},
		{in: "23:59", want: 1439},
		{in: "10:00:00", want: 600},
		{in: "24:00", wantErr: true},
		{in: "10:60", wantErr: true},
		{in: "10:5", wantErr: true},
		{in: "10:00:30", wantErr: true},
		{in: "", wantErr: true},
		{in: "ab:cd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMinutes(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				assert.Equal(t, InvalidMinutes, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Minutes_FailsClosed(t *testing.T) {
	assert.Equal(t, 600, TimeString("10:00").Minutes())
	assert.Equal(t, InvalidMinutes, TimeString("bogus").Minutes())
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("10:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), got)

	_, err = TimeString("23:30").AddMinutes(30)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.False(t, TimeString("09:30").IsBefore("09:30"))
	assert.True(t, TimeString("12:00").IsAfter("11:59"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan([]byte("14:30:00")))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 8, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("08:15"), ts)

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_On(t *testing.T) {
	date := time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 11, 20, 10, 30, 0, 0, time.UTC), TimeString("10:30").On(date))
}
