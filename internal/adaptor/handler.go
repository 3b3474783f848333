package adaptor

import (
	"errors"
	"net/http"

	"flight-booking/internal/session"
	"flight-booking/internal/usecase"
	"flight-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Booking *BookingHandler
	Contact *ContactHandler
}

func NewHandler(service *usecase.Service, sessions *session.Sessions, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, sessions, config.Auth, log),
		Booking: NewBookingHandler(service.Booking, sessions, log),
		Contact: NewContactHandler(service.Contact, log),
	}
}

// badRequest writes a ValidationError as 400 with its per-field messages
func badRequest(w http.ResponseWriter, log *zap.Logger, err error, operation string) bool {
	var verr *utils.ValidationError
	if !errors.As(err, &verr) {
		return false
	}

	log.Warn(operation+" validation failed", zap.Error(err))
	if len(verr.Fields) == 0 {
		utils.ResponseBadRequest(w, verr.Message, nil)
	} else {
		utils.ResponseBadRequest(w, verr.Message, verr.Fields)
	}
	return true
}

// internalError logs the detail and answers with a generic body
func internalError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
	utils.ResponseInternalError(w, "Internal server error")
}
