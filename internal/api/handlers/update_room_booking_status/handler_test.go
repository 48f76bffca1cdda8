package update_room_booking_status

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-StaffPortal/internal/api/middleware"
	"github.com/m04kA/SMC-StaffPortal/internal/service/bookings"
	"github.com/m04kA/SMC-StaffPortal/internal/service/bookings/models"
	"github.com/m04kA/SMC-StaffPortal/pkg/logger"
)

type fakeService struct {
	got *models.UpdateStatusRequest
	err error
}

func (f *fakeService) UpdateStatus(_ context.Context, _ int64, req *models.UpdateStatusRequest) error {
	f.got = req
	return f.err
}

func serve(svc BookingService, payload string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/room-bookings/{bookingId}/status", NewHandler(svc, logger.NewNop()).Handle)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/room-bookings/9/status", strings.NewReader(payload))
	req.Header.Set(middleware.UserIDHeader, "11")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		err     error
		want    int
	}{
		{"approved", `{"status": "APPROVED"}`, nil, http.StatusNoContent},
		{"unknown field", `{"state": "APPROVED"}`, nil, http.StatusBadRequest},
		{"invalid transition", `{"status": "PENDING"}`, fmt.Errorf("%w: APPROVED -> PENDING", bookings.ErrInvalidTransition), http.StatusConflict},
		{"invalid status", `{"status": "DONE"}`, bookings.ErrInvalidInput, http.StatusBadRequest},
		{"not found", `{"status": "APPROVED"}`, bookings.ErrBookingNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			rec := serve(svc, tt.payload)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHandle_PassesRemarks(t *testing.T) {
	svc := &fakeService{}
	serve(svc, `{"status": "REJECTED", "remarks": "room under renovation"}`)

	if assert.NotNil(t, svc.got) && assert.NotNil(t, svc.got.Remarks) {
		assert.Equal(t, int64(11), svc.got.UserID)
		assert.Equal(t, "REJECTED", svc.got.Status)
		assert.Equal(t, "room under renovation", *svc.got.Remarks)
	}
}
