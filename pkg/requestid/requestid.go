package requestid

import (
	"context"

	"github.com/google/uuid"
)

// Header заголовок, в котором ID запроса приходит от клиента и уходит во внешние сервисы
const Header = "X-Request-ID"

type ctxKey struct{}

// Normalize возвращает входящий ID, если это UUID, иначе генерирует новый
func Normalize(incoming string) string {
	if _, err := uuid.Parse(incoming); err != nil {
		return uuid.NewString()
	}
	return incoming
}

// WithID кладет ID запроса в контекст
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext извлекает ID запроса, пустая строка если его нет
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
