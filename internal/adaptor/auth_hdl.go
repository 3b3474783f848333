package adaptor

import (
	"errors"
	"net/http"

	"flight-booking/internal/dto/request"
	"flight-booking/internal/dto/response"
	"flight-booking/internal/session"
	"flight-booking/internal/usecase"
	"flight-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service  usecase.AuthService
	sessions *session.Sessions
	config   utils.AuthConfig
	log      *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, sessions *session.Sessions, config utils.AuthConfig, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service:  service,
		sessions: sessions,
		config:   config,
		log:      log.With(zap.String("handler", "auth")),
	}
}

// Signup handles POST /signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.SignupRequest
	if err := request.Bind(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, err := h.service.Signup(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "signup")
		return
	}

	if err := h.sessions.SignIn(r.Context(), *user); err != nil {
		internalError(w, h.log, err, "start session")
		return
	}

	http.Redirect(w, r, "/registered", http.StatusFound)
}

// Registered handles GET /registered
func (h *AuthHandler) Registered(w http.ResponseWriter, r *http.Request) {
	user, _ := h.sessions.User(r.Context())
	utils.ResponseSuccess(w, "Registration successful", response.ProfileResponse{User: user})
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := request.Bind(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, err := h.service.Login(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "login")
		return
	}

	if err := h.sessions.SignIn(r.Context(), *user); err != nil {
		internalError(w, h.log, err, "start session")
		return
	}

	http.Redirect(w, r, "/profile", http.StatusFound)
}

// Logout handles POST /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Destroy(r.Context()); err != nil {
		internalError(w, h.log, err, "destroy session")
		return
	}

	http.Redirect(w, r, "/login", http.StatusFound)
}

// Profile handles GET /profile
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, ok := h.sessions.User(r.Context())
	if !ok || user.FirstName == "" || user.LastName == "" {
		h.log.Error("Session user incomplete", zap.String("email", user.Email))
		utils.ResponseInternalError(w, "Error: User data incomplete.")
		return
	}

	utils.ResponseSuccess(w, "Profile retrieved successfully", response.WelcomeProfile(user))
}

// Protected handles GET /protected
func (h *AuthHandler) Protected(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, http.StatusOK, "This is a protected route")
}

func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	if badRequest(w, h.log, err, operation) {
		return
	}

	switch {
	case errors.Is(err, utils.ErrConflict):
		h.log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseConflict(w, "User already exists")

	case errors.Is(err, utils.ErrNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "User not found. Please check your email.")

	case errors.Is(err, utils.ErrInvalidCredentials):
		h.log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		if h.config.LegacyLoginStatus {
			utils.WriteText(w, http.StatusOK, "Invalid password")
			return
		}
		utils.ResponseUnauthorized(w, "Invalid password")

	case errors.Is(err, utils.ErrIntegrity):
		h.log.Error(operation+" failed - incomplete user data", zap.Error(err))
		utils.ResponseInternalError(w, "Error: User data incomplete.")

	default:
		internalError(w, h.log, err, operation)
	}
}
