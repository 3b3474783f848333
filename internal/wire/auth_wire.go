package wire

import (
	"flight-booking/internal/adaptor"
	"flight-booking/internal/session"
	"flight-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	sessions *session.Sessions,
	log *zap.Logger,
) {
	r.Post("/signup", authHandler.Signup)
	r.Get("/registered", authHandler.Registered)
	r.Post("/login", authHandler.Login)
	r.Post("/logout", authHandler.Logout)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(sessions, log))

		r.Get("/profile", authHandler.Profile)
		r.Get("/protected", authHandler.Protected)
	})
}
