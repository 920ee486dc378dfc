package middleware

import (
	"context"
	"net/http"

	"github.com/TheMidnightCodeGuild/turfujn/internal/api/handlers"
)

type userIDContextKey struct{}

// UserIDHeader заголовок с идентификатором аутентифицированного пользователя
// Аутентификация выполняется внешним шлюзом, сервис доверяет заголовку
const UserIDHeader = "X-User-ID"

const msgMissingUserID = "отсутствует заголовок X-User-ID"

// Auth middleware проверяет наличие X-User-ID и кладет его в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(UserIDHeader)
		if userID == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя, установленный Auth middleware
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDContextKey{}).(string)
	return userID, ok
}
