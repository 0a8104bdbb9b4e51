package trello

import (
	"context"

	"tagsweep/models"
)

// MockTrelloClient implements the clients.TrelloClient interface for testing
type MockTrelloClient struct {
	MockListOpenBoards func(ctx context.Context) ([]models.TrelloBoard, error)
	MockListOpenLists  func(ctx context.Context, boardID string) ([]models.TrelloList, error)
	MockCreateCard     func(ctx context.Context, listID, name, description string) (*models.TrelloCard, error)
}

// NewMockTrelloClient creates a new mock Trello client
func NewMockTrelloClient() *MockTrelloClient {
	return &MockTrelloClient{}
}

// ListOpenBoards implements the TrelloClient interface for testing
func (m *MockTrelloClient) ListOpenBoards(ctx context.Context) ([]models.TrelloBoard, error) {
	if m.MockListOpenBoards != nil {
		return m.MockListOpenBoards(ctx)
	}
	return nil, nil
}

// ListOpenLists implements the TrelloClient interface for testing
func (m *MockTrelloClient) ListOpenLists(ctx context.Context, boardID string) ([]models.TrelloList, error) {
	if m.MockListOpenLists != nil {
		return m.MockListOpenLists(ctx, boardID)
	}
	return nil, nil
}

// CreateCard implements the TrelloClient interface for testing
func (m *MockTrelloClient) CreateCard(ctx context.Context, listID, name, description string) (*models.TrelloCard, error) {
	if m.MockCreateCard != nil {
		return m.MockCreateCard(ctx, listID, name, description)
	}
	return &models.TrelloCard{ID: "card123", Name: name}, nil
}
