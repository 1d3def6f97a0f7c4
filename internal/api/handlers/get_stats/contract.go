package get_stats

import (
	"context"

	"github.com/m04kA/SMC-CarRentalService/internal/service/reservations/models"
)

type StatsService interface {
	Stats(ctx context.Context, req *models.StatsRequest) (*models.StatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
