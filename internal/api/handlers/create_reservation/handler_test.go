package create_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers"
	"github.com/m04kA/SMC-CarRentalService/internal/api/middleware"
	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	createReservation "github.com/m04kA/SMC-CarRentalService/internal/usecase/create_reservation"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got *createReservation.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &createReservation.Response{
		Reservation: &domain.Reservation{
			ID:         7,
			UserID:     req.UserID,
			CarID:      req.CarID,
			StartDate:  req.StartDate,
			EndDate:    req.EndDate,
			TotalPrice: 300,
			Status:     domain.StatusPending,
		},
		Days: 3,
	}, nil
}

const validBody = `{"carId":1,"startDate":"2024-06-01","endDate":"2024-06-03","pickupLocation":"Casablanca","dropoffLocation":"Rabat"}`

func newRequest(body string, userID int64) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	if userID > 0 {
		req = req.WithContext(middleware.WithCaller(req.Context(), domain.Caller{UserID: userID, Role: domain.RoleUser}))
	}
	return req
}

func TestHandler_Handle_Created(t *testing.T) {
	uc := &fakeUseCase{}
	rec := httptest.NewRecorder()

	NewHandler(uc, nopLogger{}).Handle(rec, newRequest(validBody, 10))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(10), uc.got.UserID)

	var body ReservationResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, int64(7), body.ID)
	assert.Equal(t, "pending", body.Status)
	assert.Equal(t, "2024-06-03", body.EndDate)
	assert.Equal(t, 3, body.Days)
}

func TestHandler_Handle_ClientPriceIgnored(t *testing.T) {
	uc := &fakeUseCase{}
	rec := httptest.NewRecorder()
	body := `{"carId":1,"startDate":"2024-06-01","endDate":"2024-06-03","pickupLocation":"Casablanca","dropoffLocation":"Rabat","totalPrice":1}`

	NewHandler(uc, nopLogger{}).Handle(rec, newRequest(body, 10))

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp ReservationResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.InDelta(t, 300, resp.TotalPrice, 1e-9)

	rec = httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, newRequest(`{"carId":1,"userId":99}`, 10))
	assert.Equal(t, http.StatusBadRequest, rec.Code, "other unknown fields are still rejected")
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		userID      int64
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "no identity", body: validBody, wantStatus: http.StatusUnauthorized},
		{name: "broken json", body: `{"carId":`, userID: 10, wantStatus: http.StatusBadRequest},
		{name: "bad date", body: `{"carId":1,"startDate":"June 1","endDate":"2024-06-03"}`, userID: 10, wantStatus: http.StatusBadRequest},
		{name: "conflict", body: validBody, userID: 10, err: createReservation.ErrConflict, wantStatus: http.StatusConflict, wantMessage: msgConflict},
		{name: "retry", body: validBody, userID: 10, err: createReservation.ErrConflictRetry, wantStatus: http.StatusConflict, wantMessage: msgConflictRetry},
		{name: "car not found", body: validBody, userID: 10, err: createReservation.ErrCarNotFound, wantStatus: http.StatusNotFound},
		{name: "date range", body: validBody, userID: 10, err: createReservation.ErrInvalidDateRange, wantStatus: http.StatusBadRequest},
		{name: "invalid input", body: validBody, userID: 10, err: createReservation.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", body: validBody, userID: 10, err: createReservation.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(&fakeUseCase{err: tt.err}, nopLogger{}).Handle(rec, newRequest(tt.body, tt.userID))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMessage != "" {
				var body handlers.ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.Equal(t, tt.wantMessage, body.Message)
			}
		})
	}
}
