package reservation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"exclusion violation", &pq.Error{Code: "23P01"}, ErrConflict},
		{"serialization failure", &pq.Error{Code: "40001"}, ErrSerialization},
		{"deadlock", &pq.Error{Code: "40P01"}, ErrSerialization},
		{"wrapped serialization failure", fmt.Errorf("commit: %w", &pq.Error{Code: "40001"}), ErrSerialization},
		{"unique violation is not translated", &pq.Error{Code: "23505"}, nil},
		{"plain error", errors.New("boom"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, translateError(tt.err))
		})
	}
}

func TestIsSerializationFailureAndIsConflict(t *testing.T) {
	assert.True(t, IsSerializationFailure(fmt.Errorf("%w: x", ErrSerialization)))
	assert.True(t, IsSerializationFailure(fmt.Errorf("tx: %w", &pq.Error{Code: "40001"})))
	assert.False(t, IsSerializationFailure(ErrConflict))

	assert.True(t, IsConflict(fmt.Errorf("%w: insert", ErrConflict)))
	assert.True(t, IsConflict(&pq.Error{Code: "23P01"}))
	assert.False(t, IsConflict(errors.New("boom")))
}
