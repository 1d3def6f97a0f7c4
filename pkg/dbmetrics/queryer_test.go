package dbmetrics

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarRentalService/pkg/metrics"
)

type stubQueryer struct{ err error }

func (s stubQueryer) GetContext(context.Context, interface{}, string, ...interface{}) error {
	return s.err
}

func (s stubQueryer) SelectContext(context.Context, interface{}, string, ...interface{}) error {
	return s.err
}

func counterValue(t *testing.T, m *metrics.Metrics, op, status string) float64 {
	t.Helper()
	var metric dto.Metric
	require.NoError(t, m.DBQueriesTotal.WithLabelValues(op, status).Write(&metric))
	return metric.GetCounter().GetValue()
}

func TestInstrumentedQueryer_RecordsQueries(t *testing.T) {
	m := metrics.NewWithRegistry("test", prometheus.NewRegistry())

	var dest []int
	require.NoError(t, WrapQueryer(stubQueryer{}, m).SelectContext(context.Background(), &dest, "SELECT id FROM cars"))

	err := WrapQueryer(stubQueryer{err: sql.ErrNoRows}, m).GetContext(context.Background(), &dest, "SELECT id FROM cars WHERE id = $1", 1)
	require.ErrorIs(t, err, sql.ErrNoRows)

	err = WrapQueryer(stubQueryer{err: errors.New("conn reset")}, m).GetContext(context.Background(), &dest, "SELECT id FROM cars")
	require.Error(t, err)

	assert.Equal(t, 2.0, counterValue(t, m, "select", "ok"), "not found is not a query failure")
	assert.Equal(t, 1.0, counterValue(t, m, "select", "error"))
}

func TestInstrumentedQueryer_NilMetrics(t *testing.T) {
	var dest int
	assert.NoError(t, WrapQueryer(stubQueryer{}, nil).GetContext(context.Background(), &dest, "SELECT 1"))
}
