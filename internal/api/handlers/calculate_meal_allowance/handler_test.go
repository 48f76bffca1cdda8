package calculate_meal_allowance

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StaffPortal/internal/service/allowance"
	calculateMealAllowance "github.com/m04kA/SMC-StaffPortal/internal/usecase/calculate_meal_allowance"
	"github.com/m04kA/SMC-StaffPortal/pkg/logger"
)

func newHandler() *Handler {
	uc := calculateMealAllowance.NewUseCase(allowance.NewCalculator(time.UTC), logger.NewNop())
	return NewHandler(uc, logger.NewNop())
}

func post(h *Handler, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/travel/meal-allowance", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_SingleDay(t *testing.T) {
	rec := post(newHandler(), `{"start": "2025-11-20T08:00", "end": "2025-11-20T20:00"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AllowanceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Days, 1)
	assert.Equal(t, "2025-11-20", resp.Days[0].Date)
	assert.Equal(t, 80, resp.Total)
}

func TestHandle_ToggleProvided(t *testing.T) {
	rec := post(newHandler(), `{
		"start": "20/11/2025 08:00",
		"end": "20/11/2025 8:00 PM",
		"toggle": {"date": "2025-11-20", "meal": "lunch", "provided": true}
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AllowanceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 50, resp.Total)
	assert.True(t, resp.Days[0].Provided.Lunch)
}

func TestHandle_UnparseableIsSilent(t *testing.T) {
	rec := post(newHandler(), `{"start": "someday", "end": ""}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"days": [], "total": 0}`, rec.Body.String())
}

func TestHandle_ToggleOutsideTrip(t *testing.T) {
	rec := post(newHandler(), `{
		"start": "2025-11-20T08:00",
		"end": "2025-11-20T20:00",
		"toggle": {"date": "2025-11-21", "meal": "lunch", "provided": true}
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
