package create_travel_request

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StaffPortal/internal/api/middleware"
	"github.com/m04kA/SMC-StaffPortal/internal/domain"
	"github.com/m04kA/SMC-StaffPortal/internal/service/travel/models"
	createTravelRequest "github.com/m04kA/SMC-StaffPortal/internal/usecase/create_travel_request"
	"github.com/m04kA/SMC-StaffPortal/pkg/logger"
)

type fakeUseCase struct {
	got  *createTravelRequest.Request
	resp *createTravelRequest.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createTravelRequest.Request) (*createTravelRequest.Response, error) {
	f.got = req
	return f.resp, f.err
}

const body = `{
	"destination": "Kuching",
	"purpose": "Site audit",
	"transportMode": "OWN_VEHICLE",
	"vehiclePlate": "WXY 1234",
	"start": "2026-11-02T08:00",
	"end": "03/11/2026 18:00",
	"mealDays": [{"date": "2026-11-02", "provided": {"lunch": true}}]
}`

func doRequest(h *Handler, userID int64, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/travel-requests", strings.NewReader(payload))
	if userID > 0 {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	plate := "WXY 1234"
	start := time.Date(2026, 11, 2, 8, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &createTravelRequest.Response{
		ID:            11,
		UserID:        3,
		Destination:   "Kuching",
		Purpose:       "Site audit",
		TransportMode: domain.TransportOwnVehicle,
		VehiclePlate:  &plate,
		StartAt:       start,
		EndAt:         start.Add(34 * time.Hour),
		MealDays: []domain.MealDay{
			{Date: "2026-11-02", Eligible: domain.MealFlags{Lunch: true, Dinner: true}, Provided: domain.MealFlags{Lunch: true}},
			{Date: "2026-11-03", Eligible: domain.MealFlags{Breakfast: true, Lunch: true}},
		},
		AllowanceTotal: 80,
		Status:         string(domain.StatusPending),
		CreatedAt:      start,
	}}
	h := NewHandler(uc, logger.NewNop())

	rec := doRequest(h, 3, body)

	require.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, uc.got)
	assert.Equal(t, int64(3), uc.got.UserID)
	assert.Equal(t, domain.TransportOwnVehicle, uc.got.TransportMode)
	require.NotNil(t, uc.got.VehiclePlate)
	assert.Equal(t, "WXY 1234", *uc.got.VehiclePlate)
	assert.Equal(t, "2026-11-02T08:00", uc.got.Start)
	assert.Equal(t, "03/11/2026 18:00", uc.got.End)
	require.Len(t, uc.got.Provided, 1)
	assert.True(t, uc.got.Provided[0].Provided.Lunch)

	var resp models.TravelRequestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, 80, resp.AllowanceTotal)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Len(t, resp.MealDays, 2)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		userID     int64
		body       string
		ucErr      error
		wantStatus int
		wantCalled bool
	}{
		{
			name:       "missing user",
			body:       body,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed json",
			userID:     3,
			body:       `{"destination":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown field",
			userID:     3,
			body:       `{"destination": "Kuching", "total": 500}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unparseable dates",
			userID:     3,
			body:       body,
			ucErr:      fmt.Errorf("%w: start: unparseable", createTravelRequest.ErrInvalidRange),
			wantStatus: http.StatusBadRequest,
			wantCalled: true,
		},
		{
			name:       "invalid input",
			userID:     3,
			body:       body,
			ucErr:      fmt.Errorf("%w: destination is required", createTravelRequest.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
			wantCalled: true,
		},
		{
			name:       "internal",
			userID:     3,
			body:       body,
			ucErr:      errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
			wantCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tt.ucErr}
			h := NewHandler(uc, logger.NewNop())

			rec := doRequest(h, tt.userID, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, uc.got != nil)
		})
	}
}
