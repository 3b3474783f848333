package usecase

import (
	"context"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/events"

	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *entity.RegisteredUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.RegisteredUser, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.RegisteredUser)
	return user, args.Error(1)
}

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) Create(ctx context.Context, booking *entity.Booking) (int64, error) {
	args := m.Called(ctx, booking)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id int64) (*entity.Booking, error) {
	args := m.Called(ctx, id)
	booking, _ := args.Get(0).(*entity.Booking)
	return booking, args.Error(1)
}

func (m *mockBookingRepo) Update(ctx context.Context, id int64, patch entity.BookingPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *mockBookingRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockBookingRepo) Search(ctx context.Context, filter entity.BookingFilter) ([]*entity.Booking, error) {
	args := m.Called(ctx, filter)
	bookings, _ := args.Get(0).([]*entity.Booking)
	return bookings, args.Error(1)
}

type mockContactRepo struct{ mock.Mock }

func (m *mockContactRepo) Create(ctx context.Context, contact *entity.ContactMessage) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *mockContactRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.ContactMessage, error) {
	args := m.Called(ctx, limit, offset)
	contacts, _ := args.Get(0).([]*entity.ContactMessage)
	return contacts, args.Error(1)
}

func (m *mockContactRepo) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// recordingPublisher keeps every event it is given
type recordingPublisher struct {
	events []events.Event
	keys   []string
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, key string, event events.Event) error {
	p.keys = append(p.keys, key)
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	types := make([]string, 0, len(p.events))
	for _, e := range p.events {
		types = append(types, e.Type)
	}
	return types
}

// stalledPublisher never answers and only returns once ctx is done
type stalledPublisher struct {
	hadDeadline bool
}

func (p *stalledPublisher) Publish(ctx context.Context, _ string, _ events.Event) error {
	_, p.hadDeadline = ctx.Deadline()
	<-ctx.Done()
	return ctx.Err()
}

func (p *stalledPublisher) Close() error { return nil }
