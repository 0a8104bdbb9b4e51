package slack

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tagsweep/clients"
	slackclient "tagsweep/clients/slack"
	"tagsweep/core"
	"tagsweep/models"
	"tagsweep/services"
)

func clearInteraction(order string) models.Interaction {
	return models.Interaction{
		Type:      "block_actions",
		UserID:    "U123",
		ChannelID: testChannelID,
		MessageTS: "2222.3333",
		ThreadTS:  "1111.2222",
		Actions: []models.InteractionAction{
			{ActionID: models.ActionClearFollowUp, Value: order},
		},
	}
}

func TestSlackUseCase_ProcessBlockAction(t *testing.T) {
	ctx := context.Background()

	t.Run("clear success posts the before/after summary into the thread", func(t *testing.T) {
		var posted clients.SlackMessageConfig
		mockSlack := slackclient.NewMockSlackClient()
		mockSlack.MockPostMessage = func(channelID string, options ...clients.SlackMessageOption) (*clients.SlackPostMessageResponse, error) {
			assert.Equal(t, testChannelID, channelID)
			posted = applyOptions(options)
			return &clients.SlackPostMessageResponse{Channel: channelID}, nil
		}

		mockClear := new(services.MockOrderClearService)
		mockClear.On("ClearFollowUp", ctx, "C#12345").Return(&models.ClearResult{
			OrderName:   "C#12345",
			FlagBefore:  "true",
			FlagAfter:   "false",
			NotesBefore: "call customer",
			HadNotes:    true,
			TagsRemoved: []string{"NeedPhotoNoShip", "NeedPhoto"},
			AdminURL:    "https://example.myshopify.com/admin/orders/450789469",
		}, nil)

		useCase := NewSlackUseCase(mockSlack, nil, mockClear, nil, testChannelID)
		err := useCase.ProcessBlockAction(ctx, clearInteraction("C#12345"))

		require.NoError(t, err)
		assert.Contains(t, posted.Text, "Follow-up cleared for *C#12345*")
		assert.Contains(t, posted.Text, "`true` → `false`")
		assert.Contains(t, posted.Text, "`call customer` → deleted")
		assert.Contains(t, posted.Text, "NeedPhotoNoShip, NeedPhoto")
		assert.Contains(t, posted.Text, "https://example.myshopify.com/admin/orders/450789469")

		threadTS, ok := posted.ThreadTS.Get()
		require.True(t, ok)
		assert.Equal(t, "1111.2222", threadTS)

		mockClear.AssertExpectations(t)
	})

	t.Run("scenario: order not found posts the exact miss message", func(t *testing.T) {
		var postedText string
		mockSlack := slackclient.NewMockSlackClient()
		mockSlack.MockPostMessage = func(channelID string, options ...clients.SlackMessageOption) (*clients.SlackPostMessageResponse, error) {
			postedText = applyOptions(options).Text
			return &clients.SlackPostMessageResponse{Channel: channelID}, nil
		}

		mockClear := new(services.MockOrderClearService)
		mockClear.On("ClearFollowUp", ctx, "C#99999").
			Return(nil, fmt.Errorf("%w: C#99999", core.ErrOrderNotFound))

		useCase := NewSlackUseCase(mockSlack, nil, mockClear, nil, testChannelID)
		err := useCase.ProcessBlockAction(ctx, clearInteraction("C#99999"))

		require.NoError(t, err)
		assert.Equal(t, "Order not found: C#99999", postedText)
	})

	t.Run("clear step failure is surfaced with a failure indicator", func(t *testing.T) {
		var postedText string
		mockSlack := slackclient.NewMockSlackClient()
		mockSlack.MockPostMessage = func(channelID string, options ...clients.SlackMessageOption) (*clients.SlackPostMessageResponse, error) {
			postedText = applyOptions(options).Text
			return &clients.SlackPostMessageResponse{Channel: channelID}, nil
		}

		mockClear := new(services.MockOrderClearService)
		mockClear.On("ClearFollowUp", ctx, "C#12345").
			Return(nil, core.NewStepError("tag removal", errors.New("throttled")))

		useCase := NewSlackUseCase(mockSlack, nil, mockClear, nil, testChannelID)
		err := useCase.ProcessBlockAction(ctx, clearInteraction("C#12345"))

		require.NoError(t, err)
		assert.Contains(t, postedText, "❌")
		assert.Contains(t, postedText, "tag removal failed")
		assert.Contains(t, postedText, "throttled")
	})

	t.Run("escalate posts the card link", func(t *testing.T) {
		var postedText string
		mockSlack := slackclient.NewMockSlackClient()
		mockSlack.MockPostMessage = func(channelID string, options ...clients.SlackMessageOption) (*clients.SlackPostMessageResponse, error) {
			postedText = applyOptions(options).Text
			return &clients.SlackPostMessageResponse{Channel: channelID}, nil
		}

		mockEscalation := new(services.MockEscalationService)
		mockEscalation.On("EscalateOrder", ctx, "C#12345").Return(&models.TrelloCard{
			ID:       "card1",
			Name:     "C#12345 - NeedPhotoNoShip follow-up",
			ShortURL: "https://trello.com/c/abc",
		}, nil)

		useCase := NewSlackUseCase(mockSlack, nil, nil, mockEscalation, testChannelID)
		interaction := clearInteraction("C#12345")
		interaction.Actions[0].ActionID = models.ActionEscalateOrder

		err := useCase.ProcessBlockAction(ctx, interaction)

		require.NoError(t, err)
		assert.Contains(t, postedText, "Escalated *C#12345*")
		assert.Contains(t, postedText, "https://trello.com/c/abc")
		mockEscalation.AssertExpectations(t)
	})

	t.Run("escalate failure is surfaced", func(t *testing.T) {
		var postedText string
		mockSlack := slackclient.NewMockSlackClient()
		mockSlack.MockPostMessage = func(channelID string, options ...clients.SlackMessageOption) (*clients.SlackPostMessageResponse, error) {
			postedText = applyOptions(options).Text
			return &clients.SlackPostMessageResponse{Channel: channelID}, nil
		}

		mockEscalation := new(services.MockEscalationService)
		mockEscalation.On("EscalateOrder", ctx, "C#12345").
			Return(nil, errors.New("failed to resolve Trello destination: board not found"))

		useCase := NewSlackUseCase(mockSlack, nil, nil, mockEscalation, testChannelID)
		interaction := clearInteraction("C#12345")
		interaction.Actions[0].ActionID = models.ActionEscalateOrder

		err := useCase.ProcessBlockAction(ctx, interaction)

		require.NoError(t, err)
		assert.Contains(t, postedText, "❌")
		assert.Contains(t, postedText, "board not found")
	})

	t.Run("malformed payload degrades to an empty order identifier", func(t *testing.T) {
		mockClear := new(services.MockOrderClearService)
		mockClear.On("ClearFollowUp", ctx, "").
			Return(nil, fmt.Errorf("%w: ", core.ErrOrderNotFound))

		var postedText string
		mockSlack := slackclient.NewMockSlackClient()
		mockSlack.MockPostMessage = func(channelID string, options ...clients.SlackMessageOption) (*clients.SlackPostMessageResponse, error) {
			postedText = applyOptions(options).Text
			return &clients.SlackPostMessageResponse{Channel: channelID}, nil
		}

		useCase := NewSlackUseCase(mockSlack, nil, mockClear, nil, testChannelID)
		err := useCase.ProcessBlockAction(ctx, clearInteraction("   "))

		require.NoError(t, err)
		assert.Equal(t, "Order not found: ", postedText)
		mockClear.AssertExpectations(t)
	})

	t.Run("interaction without actions is ignored", func(t *testing.T) {
		useCase := NewSlackUseCase(slackclient.NewMockSlackClient(), nil, nil, nil, testChannelID)
		err := useCase.ProcessBlockAction(ctx, models.Interaction{Type: "block_actions", UserID: "U123"})
		require.NoError(t, err)
	})

	t.Run("unknown action id is ignored", func(t *testing.T) {
		useCase := NewSlackUseCase(slackclient.NewMockSlackClient(), nil, nil, nil, testChannelID)
		interaction := clearInteraction("C#12345")
		interaction.Actions[0].ActionID = "something_else"
		err := useCase.ProcessBlockAction(ctx, interaction)
		require.NoError(t, err)
	})

	t.Run("falls back to message ts when no thread ts", func(t *testing.T) {
		var posted clients.SlackMessageConfig
		mockSlack := slackclient.NewMockSlackClient()
		mockSlack.MockPostMessage = func(channelID string, options ...clients.SlackMessageOption) (*clients.SlackPostMessageResponse, error) {
			posted = applyOptions(options)
			return &clients.SlackPostMessageResponse{Channel: channelID}, nil
		}

		mockClear := new(services.MockOrderClearService)
		mockClear.On("ClearFollowUp", ctx, "C#12345").
			Return(nil, fmt.Errorf("%w: C#12345", core.ErrOrderNotFound))

		useCase := NewSlackUseCase(mockSlack, nil, mockClear, nil, testChannelID)
		interaction := clearInteraction("C#12345")
		interaction.ThreadTS = ""

		err := useCase.ProcessBlockAction(ctx, interaction)

		require.NoError(t, err)
		threadTS, ok := posted.ThreadTS.Get()
		require.True(t, ok)
		assert.Equal(t, "2222.3333", threadTS)
	})
}
