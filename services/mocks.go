package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tagsweep/models"
)

// MockReminderService is a mock implementation of ReminderService
type MockReminderService struct {
	mock.Mock
}

func (m *MockReminderService) Detect(ctx context.Context, msg *models.InboundMessage) models.ReminderDetection {
	args := m.Called(ctx, msg)
	return args.Get(0).(models.ReminderDetection)
}

// MockOrderClearService is a mock implementation of OrderClearService
type MockOrderClearService struct {
	mock.Mock
}

func (m *MockOrderClearService) ClearFollowUp(ctx context.Context, orderName string) (*models.ClearResult, error) {
	args := m.Called(ctx, orderName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ClearResult), args.Error(1)
}

// MockEscalationService is a mock implementation of EscalationService
type MockEscalationService struct {
	mock.Mock
}

func (m *MockEscalationService) ResolveBoardList(ctx context.Context) (models.BoardListIdentity, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.BoardListIdentity), args.Error(1)
}

func (m *MockEscalationService) EscalateOrder(ctx context.Context, orderName string) (*models.TrelloCard, error) {
	args := m.Called(ctx, orderName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TrelloCard), args.Error(1)
}
