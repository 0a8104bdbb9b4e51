package slack

import (
	"bytes"
	"context"

	"github.com/slack-go/slack"

	"tagsweep/clients"
)

// SlackClient implements the clients.SlackClient interface using the slack-go/slack SDK
type SlackClient struct {
	*slack.Client
}

// NewSlackClient creates a new Slack client with the provided auth token
func NewSlackClient(authToken string) clients.SlackClient {
	return &SlackClient{
		Client: slack.New(authToken),
	}
}

// AuthTest verifies the bot token and returns information about the bot
func (c *SlackClient) AuthTest() (*clients.SlackAuthTestResponse, error) {
	response, err := c.Client.AuthTest()
	if err != nil {
		return nil, err
	}

	return &clients.SlackAuthTestResponse{
		UserID: response.UserID,
		TeamID: response.TeamID,
	}, nil
}

// PostMessage sends a message to a Slack channel
func (c *SlackClient) PostMessage(
	channelID string,
	options ...clients.SlackMessageOption,
) (*clients.SlackPostMessageResponse, error) {
	// Convert our custom options to SDK options
	var config clients.SlackMessageConfig
	for _, opt := range options {
		opt.Apply(&config)
	}

	var sdkOptions []slack.MsgOption
	if config.Text != "" && len(config.Buttons) == 0 {
		sdkOptions = append(sdkOptions, slack.MsgOptionText(config.Text, false))
	}
	if threadTS, ok := config.ThreadTS.Get(); ok {
		sdkOptions = append(sdkOptions, slack.MsgOptionTS(threadTS))
	}
	if len(config.Buttons) > 0 {
		sdkOptions = append(sdkOptions, slack.MsgOptionBlocks(buildBlocks(&config)...))
		// Fallback text for notifications and clients without block support
		if config.Text != "" {
			sdkOptions = append(sdkOptions, slack.MsgOptionText(config.Text, false))
		}
	}

	channel, timestamp, err := c.Client.PostMessage(channelID, sdkOptions...)
	if err != nil {
		return nil, err
	}

	return &clients.SlackPostMessageResponse{
		Channel:   channel,
		Timestamp: timestamp,
	}, nil
}

// buildBlocks assembles the block kit layout for a message with buttons:
// a markdown section followed by one actions block
func buildBlocks(config *clients.SlackMessageConfig) []slack.Block {
	var blocks []slack.Block
	if config.Text != "" {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, config.Text, false, false),
			nil, nil,
		))
	}

	var elements []slack.BlockElement
	for _, button := range config.Buttons {
		element := slack.NewButtonBlockElement(
			button.ActionID,
			button.Value,
			slack.NewTextBlockObject(slack.PlainTextType, button.Text, false, false),
		)
		switch button.Style {
		case "primary":
			element = element.WithStyle(slack.StylePrimary)
		case "danger":
			element = element.WithStyle(slack.StyleDanger)
		}
		elements = append(elements, element)
	}
	blocks = append(blocks, slack.NewActionBlock("", elements...))

	return blocks
}

// AddReaction adds a reaction to a message
func (c *SlackClient) AddReaction(name string, item clients.SlackItemRef) error {
	sdkItem := slack.ItemRef{
		Channel:   item.Channel,
		Timestamp: item.Timestamp,
	}
	return c.Client.AddReaction(name, sdkItem)
}

// DownloadFile fetches the body of an uploaded file using the bot token
func (c *SlackClient) DownloadFile(ctx context.Context, downloadURL string) (string, error) {
	var buf bytes.Buffer
	if err := c.Client.GetFileContext(ctx, downloadURL, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
