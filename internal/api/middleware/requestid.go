package middleware

import (
	"net/http"

	"github.com/m04kA/SMC-CarRentalService/pkg/requestid"
)

// HeaderRequestID заголовок с ID запроса
const HeaderRequestID = requestid.Header

// RequestID принимает X-Request-ID от клиента или генерирует новый,
// возвращает его в заголовке ответа и кладет в контекст для исходящих вызовов
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := requestid.Normalize(r.Header.Get(HeaderRequestID))

		w.Header().Set(HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(requestid.WithID(r.Context(), id)))
	})
}
