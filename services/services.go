package services

import (
	"context"

	"tagsweep/models"
)

// ReminderService classifies inbound messages and extracts order mentions
type ReminderService interface {
	Detect(ctx context.Context, msg *models.InboundMessage) models.ReminderDetection
}

// OrderClearService runs the multi-step follow-up clearing sequence against Shopify
type OrderClearService interface {
	ClearFollowUp(ctx context.Context, orderName string) (*models.ClearResult, error)
}

// EscalationService creates Trello cards for escalated orders and resolves
// the destination board/list
type EscalationService interface {
	ResolveBoardList(ctx context.Context) (models.BoardListIdentity, error)
	EscalateOrder(ctx context.Context, orderName string) (*models.TrelloCard, error)
}
