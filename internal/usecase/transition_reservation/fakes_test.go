package transition_reservation

import (
	"context"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/reservation"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeReservationRepo struct {
	reservations map[int64]*domain.Reservation
	// beforeUpdate вызывается перед условной записью, имитирует параллельный запрос
	beforeUpdate func()
	getErr       error
}

func newFakeRepo(reservations ...*domain.Reservation) *fakeReservationRepo {
	repo := &fakeReservationRepo{reservations: make(map[int64]*domain.Reservation)}
	for _, r := range reservations {
		repo.reservations[r.ID] = r
	}
	return repo
}

func (r *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	reservation, ok := r.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copied := *reservation
	return &copied, nil
}

func (r *fakeReservationRepo) HasConflict(_ context.Context, carID int64, period domain.DateRange, excludeID *int64) (bool, error) {
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

func (r *fakeReservationRepo) UpdateStatus(_ context.Context, id int64, from, to domain.ReservationStatus) (*domain.Reservation, error) {
	if r.beforeUpdate != nil {
		r.beforeUpdate()
	}

	reservation, ok := r.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	if reservation.Status != from {
		return nil, reservationRepo.ErrStatusChanged
	}

	reservation.Status = to
	copied := *reservation
	return &copied, nil
}

type fakeTxManager struct {
	commitErr error
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return m.commitErr
}

type fakeMetrics struct {
	transitions map[string]int
	conflicts   map[string]int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{transitions: map[string]int{}, conflicts: map[string]int{}}
}

func (m *fakeMetrics) RecordTransition(status string) { m.transitions[status]++ }
func (m *fakeMetrics) RecordConflict(stage string)    { m.conflicts[stage]++ }
