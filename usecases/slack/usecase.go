package slack

import (
	"context"

	"tagsweep/clients"
	"tagsweep/models"
	"tagsweep/services"
)

// SlackUseCaseInterface is what the webhook handlers depend on
type SlackUseCaseInterface interface {
	ProcessMessageEvent(ctx context.Context, msg *models.InboundMessage) error
	ProcessBlockAction(ctx context.Context, interaction models.Interaction) error
}

// SlackUseCase ties message detection, the clear workflow, and escalation
// together around one watched channel
type SlackUseCase struct {
	slackClient       clients.SlackClient
	reminderService   services.ReminderService
	orderClearService services.OrderClearService
	escalationService services.EscalationService
	watchChannelID    string
}

// NewSlackUseCase creates a new instance of SlackUseCase
func NewSlackUseCase(
	slackClient clients.SlackClient,
	reminderService services.ReminderService,
	orderClearService services.OrderClearService,
	escalationService services.EscalationService,
	watchChannelID string,
) *SlackUseCase {
	return &SlackUseCase{
		slackClient:       slackClient,
		reminderService:   reminderService,
		orderClearService: orderClearService,
		escalationService: escalationService,
		watchChannelID:    watchChannelID,
	}
}
