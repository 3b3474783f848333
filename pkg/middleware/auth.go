package middleware

import (
	"net/http"

	"flight-booking/internal/session"
	"flight-booking/pkg/utils"

	"go.uber.org/zap"
)

// LoginPath is where unauthenticated requests to guarded routes are sent
const LoginPath = "/login"

// RequireAuth lets a request through only when its session holds an authenticated
// user, and redirects to the login page otherwise.
func RequireAuth(sessions *session.Sessions, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := sessions.User(r.Context())
			if !ok {
				logger.Debug("Unauthenticated access redirected",
					zap.String("path", r.URL.Path),
					zap.String("method", r.Method),
				)
				http.Redirect(w, r, LoginPath, http.StatusFound)
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
