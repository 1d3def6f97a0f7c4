package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/reservation"
)

func date(s string) time.Time {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

type testEnv struct {
	reservations *fakeReservationRepo
	cars         *fakeCarRepo
	tx           *fakeTxManager
	metrics      *fakeMetrics
	uc           *UseCase
}

func newTestEnv() *testEnv {
	env := &testEnv{
		reservations: &fakeReservationRepo{},
		cars: &fakeCarRepo{cars: map[int64]*domain.Car{
			1: {ID: 1, Name: "Dacia Logan", PricePerDay: 100, Availability: true},
			2: {ID: 2, Name: "Renault Clio", PricePerDay: 250, Availability: false},
		}},
		tx:      &fakeTxManager{},
		metrics: &fakeMetrics{},
	}
	env.uc = NewUseCase(env.reservations, env.cars, env.tx, env.metrics, nopLogger{})
	return env
}

func validRequest(start, end string) *Request {
	return &Request{
		UserID:          10,
		CarID:           1,
		StartDate:       date(start),
		EndDate:         date(end),
		PickupLocation:  "Casablanca",
		DropoffLocation: "Rabat",
	}
}

func TestUseCase_Execute_PricesInclusiveDays(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		wantDays  int
		wantTotal float64
	}{
		{name: "same day", start: "2024-06-01", end: "2024-06-01", wantDays: 1, wantTotal: 100},
		{name: "three days", start: "2024-06-01", end: "2024-06-03", wantDays: 3, wantTotal: 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()

			resp, err := env.uc.Execute(context.Background(), validRequest(tt.start, tt.end))
			require.NoError(t, err)

			assert.Equal(t, tt.wantDays, resp.Days)
			assert.InDelta(t, tt.wantTotal, resp.Reservation.TotalPrice, 1e-9)
			assert.Equal(t, domain.StatusPending, resp.Reservation.Status)
			assert.Equal(t, int64(10), resp.Reservation.UserID)
			assert.Equal(t, 1, env.metrics.created)
			assert.Equal(t, 1, env.tx.calls)
		})
	}
}

func TestUseCase_Execute_OverlapWithActiveReservationConflicts(t *testing.T) {
	env := newTestEnv()

	first, err := env.uc.Execute(context.Background(), validRequest("2024-07-01", "2024-07-05"))
	require.NoError(t, err)

	_, err = env.uc.Execute(context.Background(), validRequest("2024-07-04", "2024-07-06"))
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, 1, env.metrics.conflicts[conflictStageCheck])

	// Отмененное бронирование больше не блокирует даты
	first.Reservation.Status = domain.StatusCancelled

	second, err := env.uc.Execute(context.Background(), validRequest("2024-07-04", "2024-07-06"))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, second.Reservation.Status)
}

func TestUseCase_Execute_SameDayTurnoverConflicts(t *testing.T) {
	env := newTestEnv()

	_, err := env.uc.Execute(context.Background(), validRequest("2024-07-01", "2024-07-05"))
	require.NoError(t, err)

	_, err = env.uc.Execute(context.Background(), validRequest("2024-07-05", "2024-07-08"))
	assert.ErrorIs(t, err, ErrConflict)

	_, err = env.uc.Execute(context.Background(), validRequest("2024-07-06", "2024-07-08"))
	assert.NoError(t, err)
}

func TestUseCase_Execute_OtherCarIsIndependent(t *testing.T) {
	env := newTestEnv()

	_, err := env.uc.Execute(context.Background(), validRequest("2024-07-01", "2024-07-05"))
	require.NoError(t, err)

	req := validRequest("2024-07-01", "2024-07-05")
	req.CarID = 2

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err, "availability flag is advisory")
	assert.InDelta(t, 1250, resp.Reservation.TotalPrice, 1e-9)
}

func TestUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{name: "no user", mutate: func(r *Request) { r.UserID = 0 }, wantErr: ErrInvalidInput},
		{name: "no car", mutate: func(r *Request) { r.CarID = -1 }, wantErr: ErrInvalidInput},
		{name: "no dates", mutate: func(r *Request) { r.StartDate = time.Time{} }, wantErr: ErrInvalidInput},
		{name: "blank pickup", mutate: func(r *Request) { r.PickupLocation = "  " }, wantErr: ErrInvalidInput},
		{name: "long dropoff", mutate: func(r *Request) { r.DropoffLocation = strings.Repeat("x", 256) }, wantErr: ErrInvalidInput},
		{
			name:    "bad customer email",
			mutate:  func(r *Request) { r.CustomerInfo = &domain.CustomerInfo{Email: "not-an-email"} },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "end before start",
			mutate:  func(r *Request) { r.StartDate, r.EndDate = date("2024-06-03"), date("2024-06-01") },
			wantErr: ErrInvalidDateRange,
		},
		{name: "unknown car", mutate: func(r *Request) { r.CarID = 404 }, wantErr: ErrCarNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			req := validRequest("2024-06-01", "2024-06-02")
			tt.mutate(req)

			_, err := env.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, env.reservations.reservations)
		})
	}
}

func TestUseCase_Execute_CustomerInfoIsStored(t *testing.T) {
	env := newTestEnv()
	req := validRequest("2024-06-01", "2024-06-02")
	req.CustomerInfo = &domain.CustomerInfo{Name: "Youssef", Email: "youssef@example.com", Phone: "+212600000000"}

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.Reservation.CustomerInfo)
	assert.Equal(t, "Youssef", resp.Reservation.CustomerInfo.Name)
}

func TestUseCase_Execute_StorageErrors(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(env *testEnv)
		wantErr   error
		wantStage string
	}{
		{
			name: "exclusion constraint",
			setup: func(env *testEnv) {
				env.reservations.createErr = fmt.Errorf("%w: Create - execute insert: boom", reservationRepo.ErrConflict)
			},
			wantErr:   ErrConflict,
			wantStage: conflictStageConstraint,
		},
		{
			name: "serialization failure on commit",
			setup: func(env *testEnv) {
				env.tx.commitErr = fmt.Errorf("commit: %w", &pq.Error{Code: "40001"})
			},
			wantErr:   ErrConflictRetry,
			wantStage: conflictStageSerialize,
		},
		{
			name: "conflict query fails",
			setup: func(env *testEnv) {
				env.reservations.conflictErr = errors.New("connection reset")
			},
			wantErr: ErrInternal,
		},
		{
			name: "car lookup fails",
			setup: func(env *testEnv) {
				env.cars.err = errors.New("connection reset")
			},
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			tt.setup(env)

			_, err := env.uc.Execute(context.Background(), validRequest("2024-06-01", "2024-06-02"))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, env.metrics.created)
			if tt.wantStage != "" {
				assert.Equal(t, 1, env.metrics.conflicts[tt.wantStage])
			}
		})
	}
}
