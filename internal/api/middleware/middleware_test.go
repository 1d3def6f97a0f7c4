package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/internal/integrations/userservice"
	"github.com/m04kA/SMC-CarRentalService/pkg/metrics"
	"github.com/m04kA/SMC-CarRentalService/pkg/requestid"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUsers map[int64]*domain.User

func (f fakeUsers) GetUser(_ context.Context, id int64) (*domain.User, error) {
	if id == 500 {
		return nil, errors.New("user service unavailable")
	}
	user, ok := f[id]
	if !ok {
		return nil, userservice.ErrUserNotFound
	}
	return user, nil
}

func TestAuth(t *testing.T) {
	users := fakeUsers{
		1: {ID: 1, Role: domain.RoleAdmin, IsActive: true},
		2: {ID: 2, Role: domain.RoleUser, IsActive: false},
	}

	var got domain.Caller
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, ok := GetCaller(r.Context())
		require.True(t, ok)
		got = caller
		w.WriteHeader(http.StatusNoContent)
	})
	handler := Auth(users, nopLogger{})(next)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "active admin", header: "1", wantStatus: http.StatusNoContent},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "not a number", header: "abc", wantStatus: http.StatusUnauthorized},
		{name: "unknown user", header: "3", wantStatus: http.StatusUnauthorized},
		{name: "inactive user", header: "2", wantStatus: http.StatusForbidden},
		{name: "directory failure", header: "500", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil)
			if tt.header != "" {
				req.Header.Set(HeaderUserID, tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}

	assert.Equal(t, domain.Caller{UserID: 1, Role: domain.RoleAdmin}, got)
}

func TestGetUserID_Empty(t *testing.T) {
	_, ok := GetUserID(context.Background())
	assert.False(t, ok)

	id, ok := GetUserID(WithCaller(context.Background(), domain.Caller{UserID: 5, Role: domain.RoleUser}))
	assert.True(t, ok)
	assert.Equal(t, int64(5), id)
}

func TestRequestID(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(HeaderRequestID))

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, incoming)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, incoming, seen)
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := metrics.NewWithRegistry("test", prometheus.NewRegistry())

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/cars/{carId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	for _, path := range []string{"/cars/1", "/cars/2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	var metric dto.Metric
	require.NoError(t, m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/cars/{carId}", "404").Write(&metric))
	assert.Equal(t, 2.0, metric.GetCounter().GetValue())
}
