package wire

import (
	"net/http"

	"flight-booking/internal/adaptor"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/events"
	"flight-booking/internal/session"
	"flight-booking/internal/usecase"
	"flight-booking/pkg/middleware"
	"flight-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the assembled router
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and routes from the given dependencies
func Wiring(
	repo *repository.Repository,
	sessions *session.Sessions,
	publisher events.Publisher,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, publisher, config, logger)
	handler := adaptor.NewHandler(service, sessions, config, logger)

	router := setupRouter(handler, sessions, middleware.NewMetrics(), config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	sessions *session.Sessions,
	metrics *middleware.Metrics,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(metrics.Middleware)
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteText(w, http.StatusOK, "OK")
	})
	r.Handle("/metrics", metrics.Handler())

	// Everything below reads or writes the session
	r.Group(func(r chi.Router) {
		r.Use(sessions.LoadAndSave)

		wireAuth(r, handler.Auth, sessions, logger)
		wireBooking(r, handler.Booking, sessions, config, logger)
		wireContact(r, handler.Contact, sessions, logger)
	})

	return r
}
