package slack

import (
	"context"

	"tagsweep/clients"
)

// MockSlackClient implements the clients.SlackClient interface for testing
type MockSlackClient struct {
	MockAuthTest     func() (*clients.SlackAuthTestResponse, error)
	MockPostMessage  func(channelID string, options ...clients.SlackMessageOption) (*clients.SlackPostMessageResponse, error)
	MockAddReaction  func(name string, item clients.SlackItemRef) error
	MockDownloadFile func(ctx context.Context, downloadURL string) (string, error)
}

// NewMockSlackClient creates a new mock Slack client
func NewMockSlackClient() *MockSlackClient {
	return &MockSlackClient{}
}

// AuthTest implements the SlackClient interface for testing
func (m *MockSlackClient) AuthTest() (*clients.SlackAuthTestResponse, error) {
	if m.MockAuthTest != nil {
		return m.MockAuthTest()
	}

	// Default mock response
	return &clients.SlackAuthTestResponse{
		UserID: "U123456789",
		TeamID: "T123456789",
	}, nil
}

// PostMessage implements the SlackClient interface for testing
func (m *MockSlackClient) PostMessage(
	channelID string,
	options ...clients.SlackMessageOption,
) (*clients.SlackPostMessageResponse, error) {
	if m.MockPostMessage != nil {
		return m.MockPostMessage(channelID, options...)
	}

	// Default mock response
	return &clients.SlackPostMessageResponse{
		Channel:   channelID,
		Timestamp: "1234567890.123456",
	}, nil
}

// AddReaction implements the SlackClient interface for testing
func (m *MockSlackClient) AddReaction(name string, item clients.SlackItemRef) error {
	if m.MockAddReaction != nil {
		return m.MockAddReaction(name, item)
	}
	return nil
}

// DownloadFile implements the SlackClient interface for testing
func (m *MockSlackClient) DownloadFile(ctx context.Context, downloadURL string) (string, error) {
	if m.MockDownloadFile != nil {
		return m.MockDownloadFile(ctx, downloadURL)
	}
	return "", nil
}
