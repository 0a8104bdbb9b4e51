package slack

import (
	"context"
	"fmt"
	"log"

	"tagsweep/clients"
	"tagsweep/models"
)

// Message subtypes that can never be the daily reminder
var ignoredSubtypes = map[string]bool{
	"message_changed": true,
	"message_deleted": true,
	"channel_join":    true,
	"channel_leave":   true,
}

// ProcessMessageEvent handles one inbound channel message: classify it,
// extract order mentions, and post one action prompt per order. Messages
// outside the watched channel - or all messages, when no watched channel
// is configured - are silently ignored.
func (u *SlackUseCase) ProcessMessageEvent(ctx context.Context, msg *models.InboundMessage) error {
	if u.watchChannelID == "" {
		return nil
	}
	if msg.Channel != u.watchChannelID {
		return nil
	}
	if ignoredSubtypes[msg.Subtype] {
		return nil
	}

	detection := u.reminderService.Detect(ctx, msg)
	if !detection.IsReminder {
		return nil
	}
	if len(detection.Orders) == 0 {
		log.Printf("📋 Daily reminder recognized but no order mentions found, ignoring message %s", msg.TS)
		return nil
	}

	log.Printf("📨 Daily reminder detected in %s with %d order(s): %v", msg.Channel, len(detection.Orders), detection.Orders)

	// Operator feedback that the reminder was picked up; best effort
	if err := u.slackClient.AddReaction("eyes", clients.SlackItemRef{
		Channel:   msg.Channel,
		Timestamp: msg.TS,
	}); err != nil {
		log.Printf("⚠️ Failed to add reaction to reminder message: %v", err)
	}

	// One independent prompt per order - a human may clear some orders
	// and escalate others, so they never share a prompt
	for _, order := range detection.Orders {
		if err := u.postOrderPrompt(msg, order, detection.Preview); err != nil {
			log.Printf("❌ Failed to post prompt for order %s: %v", order, err)
		}
	}
	return nil
}

// postOrderPrompt posts one prompt with the two action buttons for an order.
// The order identifier rides in each button's value so the click can be
// handled without any server-side correlation state.
func (u *SlackUseCase) postOrderPrompt(msg *models.InboundMessage, order, preview string) error {
	text := fmt.Sprintf("Order *%s* needs its NeedPhotoNoShip follow-up reviewed.", order)
	if preview != "" {
		text += fmt.Sprintf("\n> %s", preview)
	}

	_, err := u.slackClient.PostMessage(msg.Channel,
		clients.WithText(text),
		clients.WithThreadTS(msg.TS),
		clients.WithButtons(
			clients.SlackActionButton{
				ActionID: models.ActionClearFollowUp,
				Text:     "Clear follow-up",
				Value:    order,
				Style:    "primary",
			},
			clients.SlackActionButton{
				ActionID: models.ActionEscalateOrder,
				Text:     "Escalate to Trello",
				Value:    order,
			},
		),
	)
	if err != nil {
		return fmt.Errorf("failed to post prompt: %w", err)
	}
	return nil
}
