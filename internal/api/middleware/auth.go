package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/VetClinic-VisitService/internal/api/handlers"
)

// userIDHeader заголовок с ID аутентифицированного пользователя
// Проставляется API gateway после аутентификации
const userIDHeader = "X-User-ID"

// userIDContextKey ключ для передачи ID пользователя через context
type userIDContextKey struct{}

// Auth middleware, требующий заголовок X-User-ID
// Сама аутентификация и ролевая фильтрация видимости - зона ответственности
// вызывающей стороны; сервис только прокидывает идентификатор дальше
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(userIDHeader)
		if header == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "требуется заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(header, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "некорректный заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext возвращает ID пользователя из context
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDContextKey{}).(int64)
	return userID, ok
}
