package calculate_meal_allowance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StaffPortal/internal/domain"
	"github.com/m04kA/SMC-StaffPortal/internal/service/allowance"
	"github.com/m04kA/SMC-StaffPortal/pkg/logger"
)

func newTestUseCase() *UseCase {
	return NewUseCase(allowance.NewCalculator(time.UTC), logger.NewNop())
}

func TestExecute_TwoDayTrip(t *testing.T) {
	uc := newTestUseCase()

	resp, err := uc.Execute(context.Background(), &Request{
		Start: "2026-03-10T08:00",
		End:   "2026-03-11T13:00",
	})

	require.NoError(t, err)
	require.Len(t, resp.Days, 2)
	assert.Equal(t, domain.MealFlags{Breakfast: true, Lunch: true, Dinner: true}, resp.Days[0].Eligible)
	assert.Equal(t, domain.MealFlags{Breakfast: true, Lunch: true}, resp.Days[1].Eligible)
	assert.Equal(t, 80+50, resp.Total)
}

func TestExecute_ToggleProvided(t *testing.T) {
	uc := newTestUseCase()

	resp, err := uc.Execute(context.Background(), &Request{
		Start:  "2026-03-10T08:00",
		End:    "2026-03-10T20:00",
		Toggle: &Toggle{Date: "2026-03-10", Meal: domain.MealLunch, Provided: true},
	})

	require.NoError(t, err)
	require.Len(t, resp.Days, 1)
	assert.True(t, resp.Days[0].Provided.Lunch)
	assert.Equal(t, 50, resp.Total)
}

func TestExecute_KeepsPreviousFlags(t *testing.T) {
	uc := newTestUseCase()
	previous := []domain.MealDay{
		{Date: "2026-03-11", Provided: domain.MealFlags{Dinner: true}},
	}

	resp, err := uc.Execute(context.Background(), &Request{
		Start:    "2026-03-10T08:00",
		End:      "2026-03-12T08:00",
		Previous: previous,
	})

	require.NoError(t, err)
	require.Len(t, resp.Days, 3)
	assert.True(t, resp.Days[1].Provided.Dinner)
	assert.False(t, resp.Days[0].Provided.Dinner)
}

func TestExecute_SilentOnBadInput(t *testing.T) {
	uc := newTestUseCase()

	tests := []struct {
		name       string
		start, end string
	}{
		{name: "empty", start: "", end: ""},
		{name: "garbage", start: "tomorrow-ish", end: "2026-03-10T08:00"},
		{name: "inverted", start: "2026-03-10T08:00", end: "2026-03-09T08:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(context.Background(), &Request{Start: tt.start, End: tt.end})

			require.NoError(t, err)
			assert.Empty(t, resp.Days)
			assert.Zero(t, resp.Total)
		})
	}
}

func TestExecute_ToggleUnknownDay(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{
		Start:  "2026-03-10T08:00",
		End:    "2026-03-10T20:00",
		Toggle: &Toggle{Date: "2026-04-01", Meal: domain.MealLunch, Provided: true},
	})

	assert.ErrorIs(t, err, ErrInvalidToggle)
}
