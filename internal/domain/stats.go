package domain

// Stats aggregated reservation figures for admin views
type Stats struct {
	TotalReservations     int
	PendingReservations   int
	ConfirmedReservations int
	CancelledReservations int
	CompletedReservations int
	TotalRevenue          float64
}

// ComputeStats folds reservations into Stats.
// Revenue counts only confirmed and completed reservations.
func ComputeStats(reservations []*Reservation) Stats {
	var stats Stats

	for _, r := range reservations {
		if r == nil {
			continue
		}

		stats.TotalReservations++

		switch r.Status {
		case StatusPending:
			stats.PendingReservations++
		case StatusConfirmed:
			stats.ConfirmedReservations++
			stats.TotalRevenue += r.TotalPrice
		case StatusCancelled:
			stats.CancelledReservations++
		case StatusCompleted:
			stats.CompletedReservations++
			stats.TotalRevenue += r.TotalPrice
		}
	}

	return stats
}
