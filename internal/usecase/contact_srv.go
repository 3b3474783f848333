package usecase

import (
	"context"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/dto/request"
	"flight-booking/internal/dto/response"
	"flight-booking/internal/events"
	"flight-booking/pkg/utils"

	"go.uber.org/zap"
)

type ContactService interface {
	Create(ctx context.Context, req *request.ContactRequest) (*response.ContactResponse, error)
	List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ContactResponse], error)
}

type contactService struct {
	contacts  repository.ContactRepository
	publisher events.Publisher
	log       *zap.Logger
}

func NewContactService(contacts repository.ContactRepository, publisher events.Publisher, log *zap.Logger) ContactService {
	return &contactService{
		contacts:  contacts,
		publisher: publisher,
		log:       log.With(zap.String("service", "contact")),
	}
}

func (s *contactService) Create(ctx context.Context, req *request.ContactRequest) (*response.ContactResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationFailed(s.log, "Contact", errs)
	}

	contact := &entity.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, err
	}

	resp := response.ContactToResponse(contact)
	publish(ctx, s.publisher, s.log, contact.Email, events.ContactReceived, resp)

	return &resp, nil
}

func (s *contactService) List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ContactResponse], error) {
	contacts, err := s.contacts.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.contacts.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	return response.NewPaginatedResponse(response.ContactsToResponse(contacts), req.Page, req.Limit(), total), nil
}
