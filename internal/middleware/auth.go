package middleware

import (
	"net/http"

	"dudhiya-app/internal/auth"

	"github.com/google/uuid"
)

// AuthMiddleware resolves the caller's auth state for this one request and
// stores it in the context. A valid bearer token makes the session
// authenticated; anything else is a guest tied to the client device id.
// State is never cached across requests, so login/logout takes effect on the
// very next call.
func AuthMiddleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if token := auth.ExtractAccessToken(r); token != "" {
				if userID, err := auth.ParseToken(token, secret); err == nil {
					ctx = auth.WithState(ctx, auth.Authenticated(userID))
					ctx = auth.WithAccessToken(ctx, token)
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
			}

			deviceID := r.Header.Get("X-Device-ID")
			if deviceID == "" {
				// Hand the generated id back so the client can persist it
				// and keep reaching the same guest cart on later requests.
				deviceID = uuid.New().String()
				w.Header().Set("X-Device-ID", deviceID)
			}
			ctx = auth.WithState(ctx, auth.Guest(deviceID))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
