package clients

import (
	"context"

	"github.com/samber/mo"

	"tagsweep/models"
)

// SlackClient defines the interface for Slack API operations
type SlackClient interface {
	// Bot operations
	AuthTest() (*SlackAuthTestResponse, error)

	// Message operations
	PostMessage(channelID string, options ...SlackMessageOption) (*SlackPostMessageResponse, error)

	// Reaction operations
	AddReaction(name string, item SlackItemRef) error

	// File operations - authenticated download of an uploaded file's body
	DownloadFile(ctx context.Context, downloadURL string) (string, error)
}

// ShopifyClient defines the interface for the Shopify Admin GraphQL operations
// the clear workflow needs. Every call either succeeds fully or returns an
// error; a non-empty userErrors list from the API is a hard failure.
type ShopifyClient interface {
	LookupOrderByName(ctx context.Context, name string) (mo.Option[*models.OrderRecord], error)
	SetMetafield(ctx context.Context, ownerID, namespace, key, value string) error
	DeleteMetafield(ctx context.Context, metafieldID string) error
	RemoveTags(ctx context.Context, ownerID string, tags []string) error
	GetOrderNote(ctx context.Context, orderID string) (string, error)
	UpdateOrderNote(ctx context.Context, orderID, note string) error
}

// TrelloClient defines the interface for Trello REST operations
type TrelloClient interface {
	ListOpenBoards(ctx context.Context) ([]models.TrelloBoard, error)
	ListOpenLists(ctx context.Context, boardID string) ([]models.TrelloList, error)
	CreateCard(ctx context.Context, listID, name, description string) (*models.TrelloCard, error)
}
