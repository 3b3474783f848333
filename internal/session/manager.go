package session

import (
	"context"
	"net/http"

	"flight-booking/internal/data/entity"
	"flight-booking/pkg/utils"

	"github.com/alexedwards/scs/v2"
	"go.uber.org/zap"
)

const (
	userKey    = "user"
	bookingKey = "bookingData"
)

// Sessions wraps an scs manager with typed accessors for the values this app stores
type Sessions struct {
	manager *scs.SessionManager
	log     *zap.Logger
}

// New builds the scs manager from config. The cookie is always HttpOnly and SameSite=Strict.
func New(cfg utils.SessionConfig, store scs.Store, log *zap.Logger) *Sessions {
	log = log.With(zap.String("component", "session"))

	manager := scs.New()
	manager.Store = store
	manager.IdleTimeout = cfg.IdleTimeout
	if cfg.Lifetime > 0 {
		manager.Lifetime = cfg.Lifetime
	}
	if cfg.CookieName != "" {
		manager.Cookie.Name = cfg.CookieName
	}
	manager.Cookie.HttpOnly = true
	manager.Cookie.SameSite = http.SameSiteStrictMode
	manager.Cookie.Secure = cfg.CookieSecure
	manager.ErrorFunc = func(w http.ResponseWriter, r *http.Request, err error) {
		log.Error("Session store failure",
			zap.Error(err),
			zap.String("path", r.URL.Path),
		)
		utils.ResponseInternalError(w, "Internal server error")
	}

	return &Sessions{manager: manager, log: log}
}

// LoadAndSave loads the session for each request and commits it afterwards
func (s *Sessions) LoadAndSave(next http.Handler) http.Handler {
	return s.manager.LoadAndSave(next)
}

// User returns the authenticated user, ok is false for anonymous sessions
func (s *Sessions) User(ctx context.Context) (entity.AuthenticatedUser, bool) {
	user, ok := s.manager.Get(ctx, userKey).(entity.AuthenticatedUser)
	if !ok || user.Empty() {
		return entity.AuthenticatedUser{}, false
	}
	return user, true
}

// SignIn renews the token before storing the user so a session id is never
// carried across a privilege change. A pending booking left by a different
// signed-in user is dropped.
func (s *Sessions) SignIn(ctx context.Context, user entity.AuthenticatedUser) error {
	if previous, ok := s.User(ctx); ok && previous.Email != user.Email {
		s.manager.Remove(ctx, bookingKey)
	}
	if err := s.manager.RenewToken(ctx); err != nil {
		return err
	}
	s.manager.Put(ctx, userKey, user)
	return nil
}

// SetPendingBooking keeps the last created booking for the confirmation view
func (s *Sessions) SetPendingBooking(ctx context.Context, booking entity.Booking) {
	s.manager.Put(ctx, bookingKey, entity.PendingBookingConfirmation{Booking: booking})
}

func (s *Sessions) PendingBooking(ctx context.Context) (entity.Booking, bool) {
	pending, ok := s.manager.Get(ctx, bookingKey).(entity.PendingBookingConfirmation)
	if !ok {
		return entity.Booking{}, false
	}
	return pending.Booking, true
}

// Destroy removes the session from the store and expires the cookie
func (s *Sessions) Destroy(ctx context.Context) error {
	return s.manager.Destroy(ctx)
}
