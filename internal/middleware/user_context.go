package middleware

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const userIDKey ctxKey = "user_id"

// UserContext:
// - Si viene header X-User-Id => lo setea en el contexto.
// - Si no, el request sigue igual; los handlers deciden si exigen usuario.
// No hay verificación de identidad: la API confía en el gateway de adelante.
func UserContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if uid := strings.TrimSpace(r.Header.Get("X-User-Id")); uid != "" {
			ctx := context.WithValue(r.Context(), userIDKey, uid)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func GetUserID(ctx context.Context) (string, bool) {
	v := ctx.Value(userIDKey)
	if v == nil {
		return "", false
	}
	uid, ok := v.(string)
	if !ok || strings.TrimSpace(uid) == "" {
		return "", false
	}
	return uid, true
}
