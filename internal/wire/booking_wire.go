package wire

import (
	"flight-booking/internal/adaptor"
	"flight-booking/internal/session"
	"flight-booking/pkg/middleware"
	"flight-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	sessions *session.Sessions,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Post("/booking", bookingHandler.CreateBooking)
	r.Get("/confirmation", bookingHandler.Confirmation)
	r.Get("/updatesuccess", bookingHandler.UpdateSuccess)

	// Lookup and mutation by id, optionally behind login
	r.Group(func(r chi.Router) {
		if config.Booking.RequireAuth {
			r.Use(middleware.RequireAuth(sessions, log))
		}

		r.Get("/editsearch", bookingHandler.EditSearch)
		r.Post("/updateBooking", bookingHandler.UpdateBooking)
		r.Delete("/deleteBooking/{bookingId}", bookingHandler.DeleteBooking)
		r.Get("/search", bookingHandler.Search)
	})
}
