package dbmetrics

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CarRentalService/pkg/metrics"
)

// Queryer чтение со сканированием в структуры (*sqlx.DB, *sqlx.Tx)
type Queryer interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// InstrumentedQueryer Queryer, запросы которого попадают в те же метрики, что и запросы DB
type InstrumentedQueryer struct {
	q       Queryer
	metrics *metrics.Metrics
}

// WrapQueryer оборачивает Queryer. При m == nil работает как прозрачный прокси.
func WrapQueryer(q Queryer, m *metrics.Metrics) *InstrumentedQueryer {
	return &InstrumentedQueryer{q: q, metrics: m}
}

func (i *InstrumentedQueryer) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	start := time.Now()
	err := i.q.GetContext(ctx, dest, query, args...)
	observeQuery(i.metrics, query, start, err)
	return err
}

func (i *InstrumentedQueryer) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	start := time.Now()
	err := i.q.SelectContext(ctx, dest, query, args...)
	observeQuery(i.metrics, query, start, err)
	return err
}
