package create_reservation

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	carRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/car"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeReservationRepo хранит бронирования в памяти
type fakeReservationRepo struct {
	mu           sync.Mutex
	nextID       int64
	reservations []*domain.Reservation
	createErr    error
	conflictErr  error
}

func (r *fakeReservationRepo) Create(_ context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return nil, r.createErr
	}

	r.nextID++
	created := *reservation
	created.ID = r.nextID
	created.CreatedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	created.UpdatedAt = created.CreatedAt
	r.reservations = append(r.reservations, &created)

	return &created, nil
}

func (r *fakeReservationRepo) HasConflict(_ context.Context, carID int64, period domain.DateRange, excludeID *int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conflictErr != nil {
		return false, r.conflictErr
	}

	for _, existing := range r.reservations {
		if existing.CarID != carID || !existing.IsActive() {
			continue
		}
		if excludeID != nil && existing.ID == *excludeID {
			continue
		}
		if existing.Period().Overlaps(period) {
			return true, nil
		}
	}
	return false, nil
}

type fakeCarRepo struct {
	cars map[int64]*domain.Car
	err  error
}

func (r *fakeCarRepo) GetByID(_ context.Context, id int64) (*domain.Car, error) {
	if r.err != nil {
		return nil, r.err
	}
	car, ok := r.cars[id]
	if !ok {
		return nil, carRepo.ErrCarNotFound
	}
	return car, nil
}

// fakeTxManager выполняет fn без транзакции, commitErr имитирует ошибку COMMIT
type fakeTxManager struct {
	calls     int
	commitErr error
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	if err := fn(ctx); err != nil {
		return err
	}
	return m.commitErr
}

type fakeMetrics struct {
	created   int
	conflicts map[string]int
}

func (m *fakeMetrics) RecordReservationCreated() {
	m.created++
}

func (m *fakeMetrics) RecordConflict(stage string) {
	if m.conflicts == nil {
		m.conflicts = make(map[string]int)
	}
	m.conflicts[stage]++
}
