package middleware

import (
	"net/http"

	"nightcare/pkg/utils"

	"github.com/google/uuid"
)

// RequestID middleware attaches a fresh UUID to every request so a single
// request can be traced through the access log and handler logs.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := uuid.NewString()

			ctx := utils.SetRequestIDContext(r.Context(), id)
			w.Header().Set("X-Request-Id", id)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
