package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	reservations := []*Reservation{
		{ID: 1, Status: StatusPending, TotalPrice: 100},
		{ID: 2, Status: StatusConfirmed, TotalPrice: 300},
		{ID: 3, Status: StatusConfirmed, TotalPrice: 50.5},
		{ID: 4, Status: StatusCancelled, TotalPrice: 700},
		{ID: 5, Status: StatusCompleted, TotalPrice: 200},
		nil,
	}

	stats := ComputeStats(reservations)

	assert.Equal(t, 5, stats.TotalReservations)
	assert.Equal(t, 1, stats.PendingReservations)
	assert.Equal(t, 2, stats.ConfirmedReservations)
	assert.Equal(t, 1, stats.CancelledReservations)
	assert.Equal(t, 1, stats.CompletedReservations)
	assert.InDelta(t, 550.5, stats.TotalRevenue, 1e-9)
}

func TestComputeStats_Empty(t *testing.T) {
	assert.Equal(t, Stats{}, ComputeStats(nil))
}

func TestComputeStats_RevenueMatchesConfirmedAndCompleted(t *testing.T) {
	var (
		reservations []*Reservation
		want         float64
	)
	for i := 0; i < 40; i++ {
		status := AllStatuses[i%len(AllStatuses)]
		price := float64(i*17%230 + 1)
		reservations = append(reservations, &Reservation{ID: int64(i), Status: status, TotalPrice: price})
		if status == StatusConfirmed || status == StatusCompleted {
			want += price
		}
	}

	assert.InDelta(t, want, ComputeStats(reservations).TotalRevenue, 1e-9)
}
