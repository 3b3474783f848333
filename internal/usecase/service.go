package usecase

import (
	"context"
	"time"

	"flight-booking/internal/data/repository"
	"flight-booking/internal/events"
	"flight-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Booking BookingService
	Contact ContactService
}

func NewService(repo *repository.Repository, publisher events.Publisher, config *utils.Config, log *zap.Logger) *Service {
	hasher := utils.NewPasswordHasher(config.Auth.BcryptCost)

	return &Service{
		Auth:    NewAuthService(repo.User, hasher, publisher, log),
		Booking: NewBookingService(repo.Booking, publisher, log),
		Contact: NewContactService(repo.Contact, publisher, log),
	}
}

// publishTimeout bounds how long a request waits on the broker after its write succeeded
var publishTimeout = 2 * time.Second

// publish sends a domain event. A broker failure is logged and never fails the caller.
func publish(ctx context.Context, publisher events.Publisher, log *zap.Logger, key, eventType string, payload any) {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	event := events.NewEvent(eventType, payload)
	if err := publisher.Publish(ctx, key, event); err != nil {
		log.Warn("Failed to publish event",
			zap.Error(err),
			zap.String("type", eventType),
			zap.String("event_id", event.ID),
		)
	}
}

func validationFailed(log *zap.Logger, operation string, errs map[string]string) error {
	log.Warn(operation+" validation failed", zap.Any("errors", errs))
	return utils.NewValidationError("Validation failed", errs)
}
