package list_reservations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

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
	got *models.ListReservationsRequest
	err error
}

func (f *fakeService) List(_ context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.ReservationListResponse{View: "summary", Reservations: []models.ReservationSummary{}}, nil
}

func newRequest(target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return req.WithContext(middleware.WithCaller(req.Context(), domain.Caller{UserID: 1, Role: domain.RoleAdmin}))
}

func TestHandler_Handle(t *testing.T) {
	svc := &fakeService{}
	rec := httptest.NewRecorder()

	NewHandler(svc, nopLogger{}).Handle(rec, newRequest("/api/v1/reservations?userId=10&carId=3&status=pending&view=detail"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(10), *svc.got.UserID)
	assert.Equal(t, int64(3), *svc.got.CarID)
	assert.Equal(t, "pending", *svc.got.Status)
	assert.Equal(t, "detail", svc.got.View)
	assert.True(t, svc.got.Caller.IsAdmin())
}

func TestHandler_Handle_Errors(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(&fakeService{}, nopLogger{}).Handle(rec, newRequest("/api/v1/reservations?carId=x"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	NewHandler(&fakeService{err: reservations.ErrInvalidInput}, nopLogger{}).Handle(rec, newRequest("/api/v1/reservations?status=x"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	NewHandler(&fakeService{}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
