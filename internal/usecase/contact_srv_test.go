package usecase

import (
	"context"
	"testing"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/dto/request"
	"flight-booking/internal/events"
	"flight-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestContactService_Create(t *testing.T) {
	repo := &mockContactRepo{}
	publisher := &recordingPublisher{}
	svc := NewContactService(repo, publisher, zap.NewNop())

	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.ContactMessage")).
		Return(nil).
		Run(func(args mock.Arguments) { args.Get(1).(*entity.ContactMessage).ID = 3 })

	resp, err := svc.Create(context.Background(), &request.ContactRequest{Name: "Ann", Email: "ann@example.com", Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, []string{events.ContactReceived}, publisher.types())
}

func TestContactService_Create_InvalidEmail(t *testing.T) {
	repo := &mockContactRepo{}
	svc := NewContactService(repo, &recordingPublisher{}, zap.NewNop())

	_, err := svc.Create(context.Background(), &request.ContactRequest{Name: "Ann", Email: "ann", Message: "hi"})
	assert.ErrorIs(t, err, utils.ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestContactService_List(t *testing.T) {
	repo := &mockContactRepo{}
	svc := NewContactService(repo, &recordingPublisher{}, zap.NewNop())

	repo.On("FindAll", mock.Anything, 10, 10).Return([]*entity.ContactMessage{
		{Base: entity.Base{ID: 12}, Name: "Bo"},
	}, nil)
	repo.On("CountAll", mock.Anything).Return(int64(21), nil)

	page, err := svc.List(context.Background(), &request.PaginatedRequest{Page: 2, PerPage: 10})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, int64(12), page.Data[0].ID)
	assert.Equal(t, 3, page.Pagination.TotalPages)
	assert.Equal(t, int64(21), page.Pagination.Total)
}
