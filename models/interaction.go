package models

// Action IDs embedded in the prompt buttons. The order identifier rides in
// the button value - there is no server-side session to correlate against.
const (
	ActionClearFollowUp = "clear_followup"
	ActionEscalateOrder = "escalate_order"
)

// ReminderDetection is the outcome of classifying and scanning one message
type ReminderDetection struct {
	IsReminder bool
	Orders     []string
	Preview    string
}

// Interaction is the decoded shape of a Slack block-action payload
type Interaction struct {
	Type      string
	UserID    string
	ChannelID string
	MessageTS string
	ThreadTS  string
	Actions   []InteractionAction
}

// InteractionAction is one button press within an interaction
type InteractionAction struct {
	ActionID string
	Value    string
}
