package slack

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tagsweep/models"
)

// MockSlackUseCase is a mock implementation of SlackUseCaseInterface
type MockSlackUseCase struct {
	mock.Mock
}

func (m *MockSlackUseCase) ProcessMessageEvent(ctx context.Context, msg *models.InboundMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockSlackUseCase) ProcessBlockAction(ctx context.Context, interaction models.Interaction) error {
	args := m.Called(ctx, interaction)
	return args.Error(0)
}
