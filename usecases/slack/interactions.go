package slack

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"tagsweep/clients"
	"tagsweep/core"
	"tagsweep/models"
)

// ProcessBlockAction handles one button click from an action prompt. The
// order identifier is recovered from the button value; a malformed payload
// degrades to an empty identifier rather than aborting the interaction.
func (u *SlackUseCase) ProcessBlockAction(ctx context.Context, interaction models.Interaction) error {
	if len(interaction.Actions) == 0 {
		log.Printf("⚠️ Interaction without actions from user %s, ignoring", interaction.UserID)
		return nil
	}

	action := interaction.Actions[0]
	orderName := strings.TrimSpace(action.Value)

	threadTS := interaction.ThreadTS
	if threadTS == "" {
		threadTS = interaction.MessageTS
	}

	log.Printf("⚡ Block action %s for order %q from user %s", action.ActionID, orderName, interaction.UserID)

	switch action.ActionID {
	case models.ActionClearFollowUp:
		return u.handleClearAction(ctx, interaction.ChannelID, threadTS, orderName)
	case models.ActionEscalateOrder:
		return u.handleEscalateAction(ctx, interaction.ChannelID, threadTS, orderName)
	default:
		log.Printf("⚠️ Unknown action ID: %s", action.ActionID)
		return nil
	}
}

func (u *SlackUseCase) handleClearAction(ctx context.Context, channelID, threadTS, orderName string) error {
	result, err := u.orderClearService.ClearFollowUp(ctx, orderName)
	if err != nil {
		if errors.Is(err, core.ErrOrderNotFound) {
			return u.postReply(channelID, threadTS, fmt.Sprintf("Order not found: %s", orderName))
		}
		log.Printf("❌ Clear workflow failed for %s: %v", orderName, err)
		return u.postReply(channelID, threadTS, fmt.Sprintf("❌ Failed to clear follow-up for %s: %v", orderName, err))
	}

	return u.postReply(channelID, threadTS, formatClearResult(result))
}

func (u *SlackUseCase) handleEscalateAction(ctx context.Context, channelID, threadTS, orderName string) error {
	card, err := u.escalationService.EscalateOrder(ctx, orderName)
	if err != nil {
		log.Printf("❌ Escalation failed for %s: %v", orderName, err)
		return u.postReply(channelID, threadTS, fmt.Sprintf("❌ Failed to escalate %s: %v", orderName, err))
	}

	text := fmt.Sprintf("📌 Escalated *%s* to Trello", orderName)
	if card.ShortURL != "" {
		text += fmt.Sprintf(": <%s|%s>", card.ShortURL, card.Name)
	}
	return u.postReply(channelID, threadTS, text)
}

// formatClearResult builds the before/after summary posted on success
func formatClearResult(result *models.ClearResult) string {
	notesLine := "(none)"
	if result.HadNotes {
		notesLine = fmt.Sprintf("`%s` → deleted", result.NotesBefore)
	}

	return fmt.Sprintf(
		"✅ Follow-up cleared for *%s*\n"+
			"• needs_follow_up: `%s` → `%s`\n"+
			"• follow_up_notes: %s\n"+
			"• tags removed: %s\n"+
			"• audit note prepended to the order note\n"+
			"• <%s|Open in Shopify admin>",
		result.OrderName,
		result.FlagBefore, result.FlagAfter,
		notesLine,
		strings.Join(result.TagsRemoved, ", "),
		result.AdminURL,
	)
}

func (u *SlackUseCase) postReply(channelID, threadTS, text string) error {
	_, err := u.slackClient.PostMessage(channelID,
		clients.WithText(text),
		clients.WithThreadTS(threadTS),
	)
	if err != nil {
		return fmt.Errorf("failed to post reply: %w", err)
	}
	return nil
}
