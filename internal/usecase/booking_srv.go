package usecase

import (
	"context"
	"fmt"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/dto/request"
	"flight-booking/internal/events"
	"flight-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	Create(ctx context.Context, req *request.CreateBookingRequest) (*entity.Booking, error)
	GetByID(ctx context.Context, rawID string) (*entity.Booking, error)
	Update(ctx context.Context, req *request.UpdateBookingRequest) error
	Delete(ctx context.Context, rawID string) error
	Search(ctx context.Context, req *request.SearchBookingRequest) ([]*entity.Booking, error)
}

type bookingService struct {
	bookings  repository.BookingRepository
	publisher events.Publisher
	log       *zap.Logger
}

func NewBookingService(bookings repository.BookingRepository, publisher events.Publisher, log *zap.Logger) BookingService {
	return &bookingService{
		bookings:  bookings,
		publisher: publisher,
		log:       log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) Create(ctx context.Context, req *request.CreateBookingRequest) (*entity.Booking, error) {
	req.Normalize()
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationFailed(s.log, "Create booking", errs)
	}

	booking := req.ToEntity()
	if _, err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	publish(ctx, s.publisher, s.log, bookingKey(booking.ID), events.BookingCreated, booking)
	s.log.Info("Booking created", zap.Int64("booking_id", booking.ID))

	return booking, nil
}

func (s *bookingService) GetByID(ctx context.Context, rawID string) (*entity.Booking, error) {
	id, err := s.parseID(rawID)
	if err != nil {
		return nil, err
	}
	return s.bookings.FindByID(ctx, id)
}

func (s *bookingService) Update(ctx context.Context, req *request.UpdateBookingRequest) error {
	req.Normalize()
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return validationFailed(s.log, "Update booking", errs)
	}

	id, err := s.parseID(string(req.BookingID))
	if err != nil {
		return err
	}

	patch := req.ToPatch()
	if patch.Empty() {
		return utils.NewValidationError("At least one field for updating is required", nil)
	}

	if err := s.bookings.Update(ctx, id, patch); err != nil {
		return err
	}

	publish(ctx, s.publisher, s.log, bookingKey(id), events.BookingUpdated, map[string]any{"booking_id": id})
	s.log.Info("Booking updated", zap.Int64("booking_id", id))

	return nil
}

func (s *bookingService) Delete(ctx context.Context, rawID string) error {
	id, err := s.parseID(rawID)
	if err != nil {
		return err
	}

	if err := s.bookings.Delete(ctx, id); err != nil {
		return err
	}

	publish(ctx, s.publisher, s.log, bookingKey(id), events.BookingDeleted, map[string]any{"booking_id": id})
	s.log.Info("Booking deleted", zap.Int64("booking_id", id))

	return nil
}

func (s *bookingService) Search(ctx context.Context, req *request.SearchBookingRequest) ([]*entity.Booking, error) {
	filter := entity.BookingFilter{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	if req.BookingID != "" {
		id, err := s.parseID(req.BookingID)
		if err != nil {
			return nil, err
		}
		filter.BookingID = &id
	}

	if filter.Empty() {
		return nil, utils.NewValidationError("At least one search parameter is required", nil)
	}

	return s.bookings.Search(ctx, filter)
}

// parseID rejects anything but a digit string before the store is touched
func (s *bookingService) parseID(raw string) (int64, error) {
	id, ok := utils.ParseID(raw)
	if !ok {
		s.log.Warn("Invalid booking ID", zap.String("booking_id", raw))
		return 0, utils.NewValidationError("Invalid booking ID", map[string]string{
			"booking_id": "Must contain digits only",
		})
	}
	return id, nil
}

func bookingKey(id int64) string {
	return fmt.Sprintf("booking-%d", id)
}
