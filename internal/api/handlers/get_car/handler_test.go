package get_car

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarRentalService/internal/service/cars"
	"github.com/m04kA/SMC-CarRentalService/internal/service/cars/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	cars map[int64]*models.CarResponse
	err  error
}

func (f *fakeService) GetByID(_ context.Context, id int64) (*models.CarResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	car, ok := f.cars[id]
	if !ok {
		return nil, cars.ErrCarNotFound
	}
	return car, nil
}

func serve(svc CarService, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/cars/{carId}", NewHandler(svc, nopLogger{}).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_Handle(t *testing.T) {
	svc := &fakeService{cars: map[int64]*models.CarResponse{
		3: {ID: 3, Brand: "Renault", Model: "Clio", PricePerDay: 300},
	}}

	rec := serve(svc, "/api/v1/cars/3")
	require.Equal(t, http.StatusOK, rec.Code)

	var body models.CarResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Clio", body.Model)

	assert.Equal(t, http.StatusNotFound, serve(svc, "/api/v1/cars/4").Code)
	assert.Equal(t, http.StatusBadRequest, serve(svc, "/api/v1/cars/abc").Code)
	assert.Equal(t, http.StatusBadRequest, serve(svc, "/api/v1/cars/0").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: errors.New("db down")}, "/api/v1/cars/3").Code)
}
