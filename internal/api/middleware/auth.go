package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers"
	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/internal/integrations/userservice"
	"github.com/m04kA/SMC-CarRentalService/pkg/requestid"
)

// HeaderUserID заголовок с ID пользователя
const HeaderUserID = "X-User-ID"

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidUserID = "некорректный ID пользователя"
	msgUnknownUser   = "пользователь не найден"
	msgInactiveUser  = "учетная запись пользователя деактивирована"
)

type callerKey struct{}

// Auth проверяет X-User-ID, получает роль и статус пользователя из UserService
// и кладет domain.Caller в контекст запроса
func Auth(users UserDirectory, log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(HeaderUserID)
			if raw == "" {
				log.Warn("%s %s - Missing %s header", r.Method, r.URL.Path, HeaderUserID)
				handlers.RespondUnauthorized(w, msgMissingUserID)
				return
			}

			userID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || userID <= 0 {
				log.Warn("%s %s - Invalid %s header: %q", r.Method, r.URL.Path, HeaderUserID, raw)
				handlers.RespondUnauthorized(w, msgInvalidUserID)
				return
			}

			user, err := users.GetUser(r.Context(), userID)
			if err != nil {
				if errors.Is(err, userservice.ErrUserNotFound) {
					log.Warn("%s %s - Unknown user: user_id=%d", r.Method, r.URL.Path, userID)
					handlers.RespondUnauthorized(w, msgUnknownUser)
					return
				}
				log.Error("%s %s - Failed to resolve user: user_id=%d, request_id=%s, error=%v",
					r.Method, r.URL.Path, userID, requestid.FromContext(r.Context()), err)
				handlers.RespondInternalError(w)
				return
			}

			if !user.IsActive {
				log.Warn("%s %s - Inactive user: user_id=%d", r.Method, r.URL.Path, userID)
				handlers.RespondForbidden(w, msgInactiveUser)
				return
			}

			ctx := WithCaller(r.Context(), domain.CallerFromUser(user))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithCaller возвращает контекст с аутентифицированным пользователем
func WithCaller(ctx context.Context, caller domain.Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

// GetCaller извлекает аутентифицированного пользователя из контекста
func GetCaller(ctx context.Context) (domain.Caller, bool) {
	caller, ok := ctx.Value(callerKey{}).(domain.Caller)
	return caller, ok
}

// GetUserID извлекает ID аутентифицированного пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	caller, ok := GetCaller(ctx)
	if !ok {
		return 0, false
	}
	return caller.UserID, true
}
