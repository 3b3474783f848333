package wire

import (
	"flight-booking/internal/adaptor"
	"flight-booking/internal/session"
	"flight-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireContact(
	r chi.Router,
	contactHandler *adaptor.ContactHandler,
	sessions *session.Sessions,
	log *zap.Logger,
) {
	r.Post("/contact", contactHandler.SubmitContact)
	r.With(middleware.RequireAuth(sessions, log)).Get("/contacts", contactHandler.ListContacts)
}
