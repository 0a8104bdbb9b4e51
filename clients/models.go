package clients

import "github.com/samber/mo"

// SlackAuthTestResponse represents the response from Slack's auth.test API
type SlackAuthTestResponse struct {
	UserID string
	TeamID string
}

// SlackPostMessageResponse represents the response from posting a message to Slack
type SlackPostMessageResponse struct {
	Channel   string
	Timestamp string
}

// SlackItemRef represents a reference to a Slack message item
type SlackItemRef struct {
	Channel   string
	Timestamp string
}

// SlackActionButton describes one interactive button attached to a message.
// Value is opaque serialized data round-tripped through the click payload.
type SlackActionButton struct {
	ActionID string
	Text     string
	Value    string
	Style    string
}

// SlackMessageConfig holds the assembled parameters for sending a Slack message
type SlackMessageConfig struct {
	Text     string
	ThreadTS mo.Option[string]
	Buttons  []SlackActionButton
}

// SlackMessageOption configures a message before it is posted
type SlackMessageOption interface {
	Apply(*SlackMessageConfig)
}

type slackMessageOptionFunc func(*SlackMessageConfig)

func (f slackMessageOptionFunc) Apply(c *SlackMessageConfig) { f(c) }

// WithText sets the message text
func WithText(text string) SlackMessageOption {
	return slackMessageOptionFunc(func(c *SlackMessageConfig) {
		c.Text = text
	})
}

// WithThreadTS posts the message as a reply in the given thread
func WithThreadTS(ts string) SlackMessageOption {
	return slackMessageOptionFunc(func(c *SlackMessageConfig) {
		c.ThreadTS = mo.Some(ts)
	})
}

// WithButtons attaches an actions block with the given buttons
func WithButtons(buttons ...SlackActionButton) SlackMessageOption {
	return slackMessageOptionFunc(func(c *SlackMessageConfig) {
		c.Buttons = append(c.Buttons, buttons...)
	})
}
