package middleware

import (
	"context"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// UserDirectory источник ролей и статуса пользователей
type UserDirectory interface {
	GetUser(ctx context.Context, userID int64) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
