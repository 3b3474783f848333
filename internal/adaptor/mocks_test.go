package adaptor

import (
	"context"
	"time"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/dto/request"
	"flight-booking/internal/dto/response"
	"flight-booking/internal/session"
	"flight-booking/pkg/utils"

	"github.com/alexedwards/scs/v2/memstore"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newTestSessions() *session.Sessions {
	return session.New(utils.SessionConfig{
		CookieName:  "flight_session",
		IdleTimeout: 30 * time.Minute,
		Lifetime:    time.Hour,
	}, memstore.New(), zap.NewNop())
}

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Signup(ctx context.Context, req *request.SignupRequest) (*entity.AuthenticatedUser, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(0).(*entity.AuthenticatedUser)
	return user, args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, req *request.LoginRequest) (*entity.AuthenticatedUser, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(0).(*entity.AuthenticatedUser)
	return user, args.Error(1)
}

type mockBookingService struct{ mock.Mock }

func (m *mockBookingService) Create(ctx context.Context, req *request.CreateBookingRequest) (*entity.Booking, error) {
	args := m.Called(ctx, req)
	booking, _ := args.Get(0).(*entity.Booking)
	return booking, args.Error(1)
}

func (m *mockBookingService) GetByID(ctx context.Context, rawID string) (*entity.Booking, error) {
	args := m.Called(ctx, rawID)
	booking, _ := args.Get(0).(*entity.Booking)
	return booking, args.Error(1)
}

func (m *mockBookingService) Update(ctx context.Context, req *request.UpdateBookingRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockBookingService) Delete(ctx context.Context, rawID string) error {
	return m.Called(ctx, rawID).Error(0)
}

func (m *mockBookingService) Search(ctx context.Context, req *request.SearchBookingRequest) ([]*entity.Booking, error) {
	args := m.Called(ctx, req)
	bookings, _ := args.Get(0).([]*entity.Booking)
	return bookings, args.Error(1)
}

type mockContactService struct{ mock.Mock }

func (m *mockContactService) Create(ctx context.Context, req *request.ContactRequest) (*response.ContactResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*response.ContactResponse)
	return resp, args.Error(1)
}

func (m *mockContactService) List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ContactResponse], error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*response.PaginatedResponse[response.ContactResponse])
	return resp, args.Error(1)
}
