package get_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarRentalService/internal/api/middleware"
	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/internal/service/reservations"
	"github.com/m04kA/SMC-CarRentalService/internal/service/reservations/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	err error
}

func (f fakeService) GetByID(_ context.Context, id int64, _ domain.Caller, view string) (*models.ReservationResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	summary := models.ReservationSummary{ID: id, CarID: 1, UserID: 10, Status: "pending"}
	if view == "detail" {
		return &models.ReservationResult{
			View:   domain.ProjectionDetail,
			Detail: &models.ReservationDetail{ReservationSummary: summary, Car: &models.CarResponse{ID: 1, Name: "Dacia Logan"}},
		}, nil
	}
	return &models.ReservationResult{View: domain.ProjectionSummary, Summary: &summary}, nil
}

func serve(svc ReservationService, target string, withCaller bool) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/reservations/{reservationId}", NewHandler(svc, nopLogger{}).Handle)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if withCaller {
		req = req.WithContext(middleware.WithCaller(req.Context(), domain.Caller{UserID: 10, Role: domain.RoleUser}))
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle_Projections(t *testing.T) {
	rec := serve(fakeService{}, "/api/v1/reservations/5", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var summary map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&summary))
	assert.EqualValues(t, 1, summary["carId"])
	assert.NotContains(t, summary, "car")

	rec = serve(fakeService{}, "/api/v1/reservations/5?view=detail", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var detail map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&detail))
	car, ok := detail["car"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Dacia Logan", car["name"])
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		svc        fakeService
		target     string
		withCaller bool
		wantStatus int
	}{
		{name: "bad id", target: "/api/v1/reservations/abc", withCaller: true, wantStatus: http.StatusBadRequest},
		{name: "no identity", target: "/api/v1/reservations/5", wantStatus: http.StatusUnauthorized},
		{name: "not found", svc: fakeService{err: reservations.ErrReservationNotFound}, target: "/api/v1/reservations/5", withCaller: true, wantStatus: http.StatusNotFound},
		{name: "forbidden", svc: fakeService{err: reservations.ErrForbidden}, target: "/api/v1/reservations/5", withCaller: true, wantStatus: http.StatusForbidden},
		{name: "bad view", svc: fakeService{err: reservations.ErrInvalidInput}, target: "/api/v1/reservations/5?view=x", withCaller: true, wantStatus: http.StatusBadRequest},
		{name: "internal", svc: fakeService{err: reservations.ErrInternal}, target: "/api/v1/reservations/5", withCaller: true, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, serve(tt.svc, tt.target, tt.withCaller).Code)
		})
	}
}
